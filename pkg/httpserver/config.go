package httpserver

import "time"

// Config holds the development server settings.
type Config struct {
	Addr            string        `env:"DEV_SERVER_ADDR" envDefault:"127.0.0.1:8888"`
	ReadTimeout     time.Duration `env:"DEV_SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"DEV_SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"DEV_SERVER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Options converts cfg into server options. Zero values are skipped.
func (cfg Config) Options() []Option {
	var opts []Option
	if cfg.Addr != "" {
		opts = append(opts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		opts = append(opts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		opts = append(opts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		opts = append(opts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	return opts
}
