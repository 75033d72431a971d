// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - the default `.env` file (if any) is loaded once per process;
//   - `LoadEnv` loads additional `.env` files on demand;
//   - `Load` parses the environment into any struct annotated with `env` tags.
//
// Values are never cached. Serverless functions read their configuration on
// every invocation, and tests can change variables with `t.Setenv` between
// calls.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a file passed to `LoadEnv` could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
