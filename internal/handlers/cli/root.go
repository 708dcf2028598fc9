package cli

import (
	"log/slog"

	"github.com/AntonioJCosta/minish/internal/core/domain/settings"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/spf13/cobra"
)

// Shell bundles the collaborators shared by the commands.
type Shell struct {
	Dispatcher ports.Dispatcher
	Classifier ports.CommandClassifier
	Reporter   ports.DiagnosticReporter
	History    ports.HistoryProvider // nil disables history
	Settings   settings.Settings
	Logger     *slog.Logger
}

func NewRootCommand(version string, shell Shell) *cobra.Command {
	if shell.Logger == nil {
		shell.Logger = slog.New(slog.DiscardHandler)
	}

	rootCmd := &cobra.Command{
		Use:   "minish",
		Short: "minish is a minimal interactive command shell.",
		Long: `minish reads one command per line and runs it. A line may end in '&'
to run in the background, join two programs with '|', or append a program's
output to a file with '>>'. Ctrl-C stops the foreground program, never the shell.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, shell)
		},
	}

	rootCmd.AddCommand(NewRunCommand(shell))
	rootCmd.AddCommand(NewClassifyCommand(shell.Classifier))
	rootCmd.AddCommand(NewHistoryCommand(shell.History, shell.Settings.History.ScanLimit))

	return rootCmd
}
