package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.dotenv.dev/pkg/dotenv"
)

var loadOverride bool

var loadCmd = &cobra.Command{
	Use:   "load [file]...",
	Short: "Load .env files and print shell export statements",
	Long: `Load one or more .env files and print "export NAME='VALUE'" lines
to stdout, suitable for "eval "$(dotenv load)"".

With no file arguments, load falls back to ".env" in the working
directory, then "$XDG_CONFIG_HOME/dotenv/.env".`,
	RunE: loadFiles,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().BoolVar(&loadOverride, "override-env", false, "let file values win over names already present in the environment")
}

func loadFiles(_ *cobra.Command, args []string) error {
	files, err := resolveLoadFiles(args)
	if err != nil {
		return err
	}

	loader := dotenv.New(dotenv.NewOSProvider(), loadOverride)

	scope, err := loader.Load(files...)
	if err != nil {
		return errors.Wrap(err, "load")
	}

	for _, name := range scope.Keys() {
		value, _ := scope.Get(name)
		quoted := "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
		fmt.Fprintf(os.Stdout, "export %s=%s\n", name, quoted)
	}

	return nil
}

// resolveLoadFiles returns args unmodified if non-empty, otherwise falls
// back to "./.env" and then the XDG config file "dotenv/.env".
func resolveLoadFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if _, err := os.Stat(".env"); err == nil {
		return []string{".env"}, nil
	}

	path, err := xdg.ConfigFile(filepath.Join("dotenv", ".env"))
	if err != nil {
		return nil, errors.Wrap(err, "resolve default .env path")
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Errorf("no .env file found (tried ./.env and %s)", path)
	}

	return []string{path}, nil
}
