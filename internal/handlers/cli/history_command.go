package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the 'history' subcommand.
func NewHistoryCommand(historyProvider ports.HistoryProvider, defaultScanLimit int) *cobra.Command {
	var scanLimit, outputLimit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most frequently run commands.",
		Long:  `Counts the most recent entries of the minish history file and lists the commands run most often.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryCmd(cmd, historyProvider, scanLimit, outputLimit)
		},
	}

	cmd.Flags().IntVarP(&scanLimit, "scan-limit", "s", defaultScanLimit, "Number of recent history entries to scan.")
	cmd.Flags().IntVarP(&outputLimit, "output-limit", "o", 10, "Maximum number of commands to show.")

	return cmd
}

func runHistoryCmd(cmd *cobra.Command, historyProvider ports.HistoryProvider, scanLimit, outputLimit int) error {
	if historyProvider == nil {
		return fmt.Errorf("history is disabled")
	}
	out := cmd.OutOrStdout()

	frequencies, err := historyProvider.GetCommandFrequencies(scanLimit, outputLimit)
	if err != nil {
		return fmt.Errorf("could not read history: %w", err)
	}

	if len(frequencies) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No commands recorded yet."))
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", historyProvider.GetSourceIdentifier())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Most frequent commands:"))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Count", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, f := range frequencies {
		table.Append([]string{strconv.Itoa(f.Count), f.Command})
	}
	table.Render()
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("\n(Source: %s)", historyProvider.GetSourceIdentifier())))
	return nil
}
