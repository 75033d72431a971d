// Command sessioncookie generates signing secrets, inspects session cookies
// and runs a local development server for session-wrapped functions.
package main

import (
	"fmt"
	"os"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/internal/cli/command"
)

func main() {
	if err := command.App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
