// Command dotenv is a CLI for inspecting and loading dotenv-dialect files,
// built on go.dotenv.dev/pkg/dotenv.
package main

import (
	"fmt"
	"os"

	"go.dotenv.dev/cmd/dotenv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
