package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// errNotAccepted is returned after the dispatcher has already reported why.
var errNotAccepted = errors.New("command not accepted")

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(shell Shell) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [--] COMMAND [ARGS...]",
		Short: "Run a single command line given as separate words.",
		Long: `Dispatches one already-split command line, exactly as the interactive shell
would after tokenizing it. The delimiters '&', '|' and '>>' must be separate words.`,
		Example: `  minish run -- printf hello '|' tr a-z A-Z
  minish run -- date '>>' log.txt`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shell.Dispatcher.Dispatch(args); err != nil {
				return errNotAccepted
			}
			return nil
		},
	}
	// Everything from the program name on belongs to the program.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// IsReported tells whether err was already shown to the user.
func IsReported(err error) bool {
	return errors.Is(err, errNotAccepted)
}
