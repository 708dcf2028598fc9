package oscommand

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"golang.org/x/sys/unix"
)

// OSProcessLauncher implements the ProcessLauncher interface with os/exec.
type OSProcessLauncher struct {
	signals ports.SignalConfigurator
	logger  *slog.Logger
}

// NewOSProcessLauncher creates a new OSProcessLauncher.
// Every child is started through signals so it gets the requested interrupt disposition.
func NewOSProcessLauncher(signals ports.SignalConfigurator, logger *slog.Logger) ports.ProcessLauncher {
	if signals == nil {
		panic("signals cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OSProcessLauncher{signals: signals, logger: logger}
}

/*
Launch creates a child running req.Argv[0] with req.Argv as its argument
vector, looked up in PATH like execvp. Stdio files are duplicated onto
descriptors 0-2 in the child; every other descriptor the shell holds is
close-on-exec and does not leak into the program.
*/
func (l *OSProcessLauncher) Launch(req ports.LaunchRequest) (ports.Process, error) {
	if len(req.Argv) == 0 {
		return nil, &command.OpError{Op: command.OpExec, Err: command.ErrEmptyCommand}
	}

	cmd := exec.Command(req.Argv[0], req.Argv[1:]...)
	// Unset files stay nil so the child gets /dev/null rather than a nil *os.File.
	if req.Stdin != nil {
		cmd.Stdin = req.Stdin
	}
	if req.Stdout != nil {
		cmd.Stdout = req.Stdout
	}
	if req.Stderr != nil {
		cmd.Stderr = req.Stderr
	}

	if err := l.signals.WithInterrupt(req.Interrupt, cmd.Start); err != nil {
		return nil, classifyStartError(req.Argv[0], err)
	}

	l.logger.Debug("child started", "pid", cmd.Process.Pid, "program", req.Argv[0], "interrupt", req.Interrupt.String())
	return &osProcess{cmd: cmd}, nil
}

/*
classifyStartError separates "this program cannot be run" from failures to
create the process at all. The first kind is what a child that failed to
replace its image would report; the second aborts the command.
*/
func classifyStartError(program string, err error) error {
	switch {
	case errors.Is(err, exec.ErrNotFound),
		errors.Is(err, exec.ErrDot),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, unix.ENOEXEC),
		errors.Is(err, unix.ENOTDIR),
		errors.Is(err, unix.EISDIR):
		return &command.OpError{Op: command.OpExec, Path: program, Err: unwrapPathError(err)}
	default:
		return &command.OpError{Op: command.OpFork, Err: unwrapPathError(err)}
	}
}

// unwrapPathError drops the "fork/exec <path>:" prefix os adds, keeping the OS error text.
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

type osProcess struct {
	cmd *exec.Cmd
}

func (p *osProcess) Pid() int {
	return p.cmd.Process.Pid
}

// Wait implements ports.Process. ECHILD means the kernel already reaped the
// child, which happens whenever SIGCHLD is ignored.
func (p *osProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if errors.Is(err, unix.ECHILD) {
		return -1, &command.OpError{Op: command.OpWait, Err: fmt.Errorf("%w: %w", command.ErrNoChild, err)}
	}
	return -1, &command.OpError{Op: command.OpWait, Err: err}
}

var _ ports.Process = (*osProcess)(nil)
