package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.dotenv.dev/pkg/dotenv"
)

var evalOverride bool

var evalCmd = &cobra.Command{
	Use:   "eval <file>...",
	Short: "Evaluate one or more .env files and print the resolved scope",
	Long: `Evaluate one or more .env files in order and print the resulting
NAME=VALUE bindings, without touching the process environment.

Later files override earlier ones for names they both define.`,
	Args: cobra.MinimumNArgs(1),
	RunE: evalFiles,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalOverride, "override-env", true, "let file values win over the real process environment when looked up")
}

func evalFiles(_ *cobra.Command, args []string) error {
	loader := dotenv.New(dotenv.NewOSProvider(), evalOverride)

	scope, err := loader.Evaluate(args...)
	if err != nil {
		return errors.Wrap(err, "evaluate")
	}

	for _, name := range scope.Keys() {
		value, _ := scope.Get(name)
		fmt.Fprintf(os.Stdout, "%s=%s\n", name, value)
	}

	return nil
}
