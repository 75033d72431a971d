package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/secrets"
)

// KeygenCommand prints random secrets suitable for SESSION_COOKIE_SECRET.
func KeygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "generate signing secrets",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of secrets to generate",
				Value:   1,
			},
			&cli.BoolFlag{
				Name:  "export",
				Usage: "print as a SESSION_COOKIE_SECRET assignment",
			},
		},
		Action: runKeygen,
	}
}

func runKeygen(c *cli.Context) error {
	count := c.Int("count")
	if count < 1 {
		return cli.Exit("count must be at least 1", 2)
	}

	for i := 0; i < count; i++ {
		key, err := secrets.GenerateKey()
		if err != nil {
			return err
		}
		if c.Bool("export") {
			fmt.Fprintf(c.App.Writer, "SESSION_COOKIE_SECRET=%s\n", key)
			continue
		}
		fmt.Fprintln(c.App.Writer, key)
	}
	return nil
}
