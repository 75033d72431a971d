// Package command defines the sessioncookie CLI.
package command

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/logger"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/requestid"
)

// Version is set via ldflags.
var Version = "dev"

const serviceName = "sessioncookie"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    serviceName,
		Usage:   "signed session cookies for stateless functions",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Usage:   "environment preset for logging: development, staging, production",
				EnvVars: []string{"APP_ENV"},
				Value:   "development",
			},
		},
		Commands: []*cli.Command{
			KeygenCommand(),
			InspectCommand(),
			ServeCommand(),
		},
	}
}

// newLogger builds the command logger, writing to the app's error stream.
func newLogger(c *cli.Context) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(c.String("env"), serviceName),
		logger.WithOutput(c.App.ErrWriter),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}
