package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.dotenv.dev/pkg/dotenv"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a .env file and print the resulting tokens",
	Long: `Tokenize a .env file and print the resulting tokens, one per line.

Useful for debugging the tokenizer and understanding how a particular
file's quoting and expansions are broken down.

Example:
  dotenv lex --show-pos .env`,
	Args: cobra.ExactArgs(1),
	RunE: lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's line:column")
}

func lexFile(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	tok := dotenv.NewTokenizer(string(content))
	tok.SetFilename(filename)

	count := 0

	for {
		tk, err := tok.Next()
		if err != nil {
			if se, ok := err.(*dotenv.SyntaxError); ok {
				fmt.Fprintln(os.Stderr, se.Render(string(content)))
			} else {
				fmt.Fprintln(os.Stderr, err)
			}

			return fmt.Errorf("tokenizing %s failed", filename)
		}

		count++
		printToken(tk)

		if tk.Kind == dotenv.TokenEOF {
			break
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%d token(s)\n", count)
	}

	return nil
}

func printToken(tk dotenv.Token) {
	output := tk.String()

	if showPos {
		output += fmt.Sprintf(" @%s", tk.Pos)
	}

	fmt.Println(output)
}
