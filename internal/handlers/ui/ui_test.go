package ui

import (
	"bytes"
	"errors"
	"syscall"
	"testing"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/fatih/color"
)

func TestReporter_Report(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "op error",
			err:  &command.OpError{Op: command.OpOpen, Path: "out.txt", Err: syscall.EACCES},
			want: "minish: open/create file error out.txt: permission denied\n",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "minish: boom\n",
		},
		{
			name: "nil is ignored",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf).Report(tt.err)
			if got := buf.String(); got != tt.want {
				t.Errorf("Report() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindColor(t *testing.T) {
	disableColor(t)

	if got := KindColor(command.Pipeline); got != "pipeline" {
		t.Errorf("KindColor(Pipeline) = %q, want %q", got, "pipeline")
	}
	if got := KindColor(command.Kind(7)); got != command.Kind(7).String() {
		t.Errorf("KindColor(7) = %q", got)
	}
}

func disableColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	SetColorEnabled(false)
	t.Cleanup(func() { color.NoColor = original })
}
