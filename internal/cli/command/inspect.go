package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/cookie"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/session"
)

// InspectCommand verifies a session cookie against the configured secrets
// and prints its data.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "verify a session cookie and print its data",
		ArgsUsage: "<value>",
		Description: "The value is either the bare cookie value or, with --header,\n" +
			"a full Cookie request header. Secrets are read from the environment.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "header",
				Usage: "treat the argument as a Cookie header",
			},
		},
		Action: runInspect,
	}
}

func runInspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one cookie value", 2)
	}
	value := strings.TrimSpace(c.Args().First())

	cfg, err := session.LoadConfig()
	if err != nil {
		return err
	}
	name, err := cfg.CookieName()
	if err != nil {
		return err
	}
	keyring, err := cfg.Keyring()
	if err != nil {
		return err
	}

	if c.Bool("header") {
		v, ok := cookie.ParseHeader(value)[name]
		if !ok {
			return cli.Exit(fmt.Sprintf("no %q cookie in header", name), 1)
		}
		value = v
	}

	payload, err := cookie.DecodeValue(value, keyring)
	if err != nil {
		return cli.Exit(describe(err), 1)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, payload, "", "  "); err != nil {
		return cli.Exit("cookie payload is not JSON", 1)
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(c.App.Writer)
	return err
}

func describe(err error) string {
	switch {
	case errors.Is(err, cookie.ErrInvalidSignature):
		return "invalid: signature does not match any configured secret"
	case errors.Is(err, cookie.ErrInvalidFormat):
		return "invalid: malformed cookie value"
	default:
		return "invalid: " + err.Error()
	}
}
