package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go.dotenv.dev/pkg/dotenv"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a .env file and print its assignment AST",
	Args:  cobra.ExactArgs(1),
	RunE:  parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseFile(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	tok := dotenv.NewTokenizer(string(content))
	tok.SetFilename(filename)

	p := dotenv.NewParser(tok, filename)

	assignments, err := p.ParseFile()
	if err != nil {
		if r, ok := err.(interface{ Render(string) string }); ok {
			fmt.Fprintln(os.Stderr, r.Render(string(content)))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}

		return fmt.Errorf("parsing %s failed", filename)
	}

	for _, a := range assignments {
		fmt.Printf("%s = %s\n", a.Name, formatExpressions(a.Value))
	}

	return nil
}

func formatExpressions(exprs []dotenv.Expression) string {
	var parts []string

	for _, e := range exprs {
		parts = append(parts, formatExpression(e))
	}

	if len(parts) == 0 {
		return "<empty>"
	}

	return strings.Join(parts, "")
}

func formatExpression(e dotenv.Expression) string {
	switch v := e.(type) {
	case dotenv.Characters:
		return fmt.Sprintf("%q", v.Text)
	case dotenv.Expansion:
		if len(v.RHS) == 0 {
			return fmt.Sprintf("${%s}", v.Name)
		}

		return fmt.Sprintf("${%s op=%v %s}", v.Name, v.Operator, formatExpressions(v.RHS))
	default:
		return "<unknown>"
	}
}
