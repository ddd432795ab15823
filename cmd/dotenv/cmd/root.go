package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dotenv",
	Short: "Parse, inspect, and load POSIX-shell-flavored .env files",
	Long: `dotenv implements a small, strict dialect of shell quoting
and parameter expansion for NAME=VALUE files.

It supports single- and double-quoted strings, backslash escapes, simple
($NAME) and complex (${NAME op word}) parameter expansion with the eight
standard shell default/assign/error operators, and leaves command
substitution, arithmetic expansion, and word-splitting unsupported by
design.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
