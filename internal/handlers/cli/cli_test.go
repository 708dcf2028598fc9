package cli

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/minish/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/minish/internal/core/domain/history"
	"github.com/AntonioJCosta/minish/internal/core/domain/settings"
	"github.com/AntonioJCosta/minish/internal/core/testutil"
	"github.com/fatih/color"
)

type recordingHistory struct {
	testutil.MockHistoryProvider
	lines []string
}

func newTestShell(t *testing.T) (Shell, *testutil.MockDispatcher, *testutil.MockDiagnosticReporter, *recordingHistory) {
	t.Helper()
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })

	dispatcher := &testutil.MockDispatcher{}
	reporter := &testutil.MockDiagnosticReporter{}
	hist := &recordingHistory{}
	hist.RecordFunc = func(line string) error {
		hist.lines = append(hist.lines, line)
		return nil
	}

	return Shell{
		Dispatcher: dispatcher,
		Classifier: commandanalysis.NewTokenClassifier(),
		Reporter:   reporter,
		History:    hist,
		Settings:   settings.Defaults(),
	}, dispatcher, reporter, hist
}

func execute(t *testing.T, shell Shell, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand("test", shell)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		// cobra falls back to os.Args when no arguments were set.
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestREPL(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		dispatchErr error
		wantCalls   [][]string
		wantHistory []string
		wantPrompts int
	}{
		{
			name:        "dispatches each line until exit",
			stdin:       "ls -l\n\n   \necho 'a b' | cat\nexit\nnever run\n",
			wantCalls:   [][]string{{"ls", "-l"}, {"echo", "a b", "|", "cat"}},
			wantHistory: []string{"ls -l", "echo 'a b' | cat"},
			wantPrompts: 5,
		},
		{
			name:        "last line without newline runs before EOF",
			stdin:       "date >> log.txt",
			wantCalls:   [][]string{{"date", ">>", "log.txt"}},
			wantHistory: []string{"date >> log.txt"},
			wantPrompts: 1,
		},
		{
			name:        "rejected commands are not recorded",
			stdin:       "| cat\n",
			dispatchErr: errors.New("reported"),
			wantCalls:   [][]string{{"|", "cat"}},
			wantHistory: nil,
			wantPrompts: 2,
		},
		{
			name:        "exit with arguments is an ordinary command",
			stdin:       "exit now\n",
			wantCalls:   [][]string{{"exit", "now"}},
			wantHistory: []string{"exit now"},
			wantPrompts: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, dispatcher, _, hist := newTestShell(t)
			dispatcher.DispatchFunc = func([]string) error { return tt.dispatchErr }

			out, err := execute(t, shell, tt.stdin)
			if err != nil {
				t.Fatalf("Execute() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(dispatcher.DispatchCalls, tt.wantCalls) {
				t.Errorf("dispatched %q, want %q", dispatcher.DispatchCalls, tt.wantCalls)
			}
			if !reflect.DeepEqual(hist.lines, tt.wantHistory) {
				t.Errorf("recorded %q, want %q", hist.lines, tt.wantHistory)
			}
			if got := strings.Count(out, shell.Settings.Prompt); got != tt.wantPrompts {
				t.Errorf("printed %d prompts, want %d (output %q)", got, tt.wantPrompts, out)
			}
		})
	}
}

func TestREPL_WithoutHistory(t *testing.T) {
	shell, dispatcher, _, _ := newTestShell(t)
	shell.History = nil

	if _, err := execute(t, shell, "true\n"); err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if len(dispatcher.DispatchCalls) != 1 {
		t.Errorf("dispatched %d commands, want 1", len(dispatcher.DispatchCalls))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestReadLine(t *testing.T) {
	r := strings.NewReader("first\nsecond")

	line, err := readLine(r)
	if line != "first" || err != nil {
		t.Errorf("readLine() = %q, %v; want %q, nil", line, err, "first")
	}
	if r.Len() != len("second") {
		t.Errorf("readLine() consumed past the newline, %d bytes left", r.Len())
	}

	line, err = readLine(r)
	if line != "second" || !errors.Is(err, io.EOF) {
		t.Errorf("readLine() = %q, %v; want %q, EOF", line, err, "second")
	}

	if _, err := readLine(failingReader{}); err == nil || errors.Is(err, io.EOF) {
		t.Errorf("readLine() error = %v, want the read error", err)
	}
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		dispatchErr error
		wantCall    []string
		wantErr     error
	}{
		{
			name:     "tokens after --",
			args:     []string{"run", "--", "printf", "hi", "|", "tr", "a-z", "A-Z"},
			wantCall: []string{"printf", "hi", "|", "tr", "a-z", "A-Z"},
		},
		{
			name:     "program flags are not parsed",
			args:     []string{"run", "ls", "-l", "&"},
			wantCall: []string{"ls", "-l", "&"},
		},
		{
			name:        "not accepted",
			args:        []string{"run", "echo", ">>"},
			dispatchErr: errors.New("reported"),
			wantCall:    []string{"echo", ">>"},
			wantErr:     errNotAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, dispatcher, _, _ := newTestShell(t)
			dispatcher.DispatchFunc = func([]string) error { return tt.dispatchErr }

			_, err := execute(t, shell, "", tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if len(dispatcher.DispatchCalls) != 1 || !reflect.DeepEqual(dispatcher.DispatchCalls[0], tt.wantCall) {
				t.Errorf("dispatched %q, want one call with %q", dispatcher.DispatchCalls, tt.wantCall)
			}
		})
	}
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantParts []string
		wantErr   bool
	}{
		{
			name:      "pipeline from tokens",
			args:      []string{"classify", "--", "ls", "-l", "|", "wc"},
			wantParts: []string{"pipeline", `"ls" "-l"`, `"wc"`, "yes"},
		},
		{
			name:      "redirect from a line",
			args:      []string{"classify", "--line", "date >> 'my log'"},
			wantParts: []string{"redirect", `"date"`, "my log", "yes"},
		},
		{
			name:      "invalid shape is shown, not run",
			args:      []string{"classify", "--line", "a | b &"},
			wantParts: []string{"background", "no: "},
		},
		{
			name:    "nothing to classify",
			args:    []string{"classify"},
			wantErr: true,
		},
		{
			name:    "line and tokens together",
			args:    []string{"classify", "--line", "ls", "--", "pwd"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, dispatcher, _, _ := newTestShell(t)

			out, err := execute(t, shell, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(out, part) {
					t.Errorf("output does not contain %q:\n%s", part, out)
				}
			}
			if len(dispatcher.DispatchCalls) != 0 {
				t.Errorf("classify dispatched %q", dispatcher.DispatchCalls)
			}
		})
	}
}

func TestHistoryCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		frequencies []history.CommandFrequency
		freqErr     error
		wantScan    int
		wantOutput  int
		wantParts   []string
		wantErr     bool
	}{
		{
			name:        "defaults",
			args:        []string{"history"},
			frequencies: []history.CommandFrequency{{Command: "ls -l", Count: 4}, {Command: "make", Count: 2}},
			wantScan:    settings.Defaults().History.ScanLimit,
			wantOutput:  10,
			wantParts:   []string{"Most frequent commands:", "ls -l", "4", "make", "Source: File: ~/.minish/history"},
		},
		{
			name:       "flags",
			args:       []string{"history", "-s", "50", "-o", "3"},
			wantScan:   50,
			wantOutput: 3,
			wantParts:  []string{"No commands recorded yet."},
		},
		{
			name:     "provider error",
			args:     []string{"history"},
			freqErr:  errors.New("disk on fire"),
			wantScan: settings.Defaults().History.ScanLimit, wantOutput: 10,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, _, _, hist := newTestShell(t)
			var gotScan, gotOutput int
			hist.GetCommandFrequenciesFunc = func(scan, output int) ([]history.CommandFrequency, error) {
				gotScan, gotOutput = scan, output
				return tt.frequencies, tt.freqErr
			}
			hist.GetSourceIdentifierFunc = func() string { return "File: ~/.minish/history" }

			out, err := execute(t, shell, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if gotScan != tt.wantScan || gotOutput != tt.wantOutput {
				t.Errorf("GetCommandFrequencies(%d, %d), want (%d, %d)", gotScan, gotOutput, tt.wantScan, tt.wantOutput)
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(out, part) {
					t.Errorf("output does not contain %q:\n%s", part, out)
				}
			}
		})
	}

	t.Run("history disabled", func(t *testing.T) {
		shell, _, _, _ := newTestShell(t)
		shell.History = nil
		if _, err := execute(t, shell, "", "history"); err == nil {
			t.Error("Execute() expected an error when history is disabled")
		}
	})
}
