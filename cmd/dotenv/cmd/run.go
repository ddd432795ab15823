package cmd

import (
	"os"
	"os/exec"

	"github.com/google/shlex"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.dotenv.dev/pkg/dotenv"
)

var (
	runFiles    []string
	runCmdLine  string
	runOverride bool
)

var runCmd = &cobra.Command{
	Use:   "run [-- command args...]",
	Short: "Run a command with the environment resolved from .env files",
	Long: `Evaluate one or more .env files and run a command with the
resulting bindings layered onto the process environment.

The command is either everything after "--", or a single shell-style
string passed via --cmd.

Examples:
  dotenv run --file .env -- printenv API_KEY
  dotenv run --cmd "printenv API_KEY"`,
	Args: cobra.ArbitraryArgs,
	RunE: runCommand,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceVarP(&runFiles, "file", "f", []string{".env"}, "path to a .env file (repeatable)")
	runCmd.Flags().StringVar(&runCmdLine, "cmd", "", "shell-style command string to split and run instead of trailing args")
	runCmd.Flags().BoolVar(&runOverride, "override-env", false, "let file values win over names already present in the environment")
}

func runCommand(cmd *cobra.Command, args []string) error {
	argv, err := resolveArgv(args)
	if err != nil {
		return err
	}

	if len(argv) == 0 {
		return errors.New("no command given: pass args after -- or use --cmd")
	}

	loader := dotenv.New(dotenv.NewOSProvider(), runOverride)

	if _, err := loader.Load(runFiles...); err != nil {
		return errors.Wrap(err, "load")
	}

	sub := exec.Command(argv[0], argv[1:]...)
	sub.Env = os.Environ()
	sub.Stdin = os.Stdin
	sub.Stdout = os.Stdout
	sub.Stderr = os.Stderr

	if err := sub.Run(); err != nil {
		return errors.Wrapf(err, "run %s", argv[0])
	}

	return nil
}

func resolveArgv(args []string) ([]string, error) {
	if runCmdLine != "" {
		parts, err := shlex.Split(runCmdLine)
		if err != nil {
			return nil, errors.Wrap(err, "shlex.Split")
		}

		return parts, nil
	}

	return args, nil
}
