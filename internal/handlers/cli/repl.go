package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/anmitsu/go-shlex"
	"github.com/spf13/cobra"
)

const exitBuiltin = "exit"

// runREPL prompts, reads and dispatches lines until EOF or "exit".
func runREPL(cmd *cobra.Command, shell Shell) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	for {
		fmt.Fprint(out, ui.PromptColor(shell.Settings.Prompt))

		line, err := readLine(in)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading command line: %w", err)
		}
		if done := handleLine(shell, line); done {
			return nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
	}
}

// readLine reads up to and excluding the next newline, one byte at a time, so
// input typed ahead for a child program stays in the terminal for that child.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n == 1 {
			if buf[0] == '\n' {
				return sb.String(), nil
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			return sb.String(), err
		}
	}
}

// handleLine tokenizes and runs one line. It reports true when the shell should stop.
func handleLine(shell Shell, line string) bool {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		shell.Reporter.Report(fmt.Errorf("parse error: %w", err))
		return false
	}
	if len(tokens) == 0 {
		return false
	}
	if len(tokens) == 1 && tokens[0] == exitBuiltin {
		return true
	}

	if err := shell.Dispatcher.Dispatch(tokens); err != nil {
		shell.Logger.Debug("command not accepted", "line", line, "error", err)
		return false
	}

	if shell.History != nil {
		if err := shell.History.Record(line); err != nil {
			shell.Logger.Warn("could not record history", "error", err)
		}
	}
	return false
}
