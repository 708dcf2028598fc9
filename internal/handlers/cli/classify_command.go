package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/anmitsu/go-shlex"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewClassifyCommand creates the 'classify' subcommand.
func NewClassifyCommand(classifier ports.CommandClassifier) *cobra.Command {
	var line string

	cmd := &cobra.Command{
		Use:   "classify [--line LINE | -- TOKENS...]",
		Short: "Show how a command line would be run, without running it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassifyCmd(cmd, args, line, classifier)
		},
	}
	cmd.Flags().StringVarP(&line, "line", "l", "", "Command line to tokenize and classify.")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runClassifyCmd(cmd *cobra.Command, args []string, line string, classifier ports.CommandClassifier) error {
	if classifier == nil {
		return fmt.Errorf("command classifier not initialized")
	}

	tokens := args
	if cmd.Flags().Changed("line") {
		if len(args) > 0 {
			return errors.New("use either --line or tokens, not both")
		}
		split, err := shlex.Split(line, true)
		if err != nil {
			return fmt.Errorf("could not tokenize line: %w", err)
		}
		tokens = split
	}
	if len(tokens) == 0 {
		return errors.New("nothing to classify")
	}

	shape := classifier.Classify(tokens)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.HeaderColor("Execution shape:"))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	table.Append([]string{"Kind", ui.KindColor(shape.Kind)})
	if shape.Kind != command.Plain {
		table.Append([]string{"Delimiter index", strconv.Itoa(shape.Index)})
	}
	table.Append([]string{"Program", quoteTokens(shape.Head(tokens))})
	switch shape.Kind {
	case command.Pipeline:
		table.Append([]string{"Reader", quoteTokens(shape.Tail(tokens))})
	case command.Redirect:
		table.Append([]string{"Append to", shape.Target(tokens)})
	}
	if err := shape.Validate(tokens); err != nil {
		table.Append([]string{"Valid", ui.ErrorColor("no: " + err.Error())})
	} else {
		table.Append([]string{"Valid", ui.SuccessColor("yes")})
	}
	table.Render()
	return nil
}

func quoteTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = strconv.Quote(t)
	}
	return strings.Join(quoted, " ")
}
