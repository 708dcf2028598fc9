package dispatch

import (
	"errors"
	"log/slog"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

type service struct {
	classifier ports.CommandClassifier
	launcher   ports.ProcessLauncher
	opener     ports.DescriptorOpener
	reporter   ports.DiagnosticReporter
	streams    ports.Streams
	logger     *slog.Logger
}

// NewService creates a new command dispatcher.
// It panics if any collaborator is nil. A nil logger discards debug output.
func NewService(
	classifier ports.CommandClassifier,
	launcher ports.ProcessLauncher,
	opener ports.DescriptorOpener,
	reporter ports.DiagnosticReporter,
	streams ports.Streams,
	logger *slog.Logger,
) ports.Dispatcher {
	if classifier == nil || launcher == nil || opener == nil || reporter == nil {
		panic("dispatch: classifier, launcher, opener and reporter cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{
		classifier: classifier,
		launcher:   launcher,
		opener:     opener,
		reporter:   reporter,
		streams:    streams,
		logger:     logger,
	}
}

// Dispatch implements the ports.Dispatcher interface.
func (s *service) Dispatch(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	shape := s.classifier.Classify(tokens)
	s.logger.Debug("dispatching", "shape", shape.Kind.String(), "index", shape.Index, "tokens", len(tokens))

	if err := shape.Validate(tokens); err != nil {
		return s.fail(err)
	}

	switch shape.Kind {
	case command.Background:
		return s.runBackground(shape.Head(tokens))
	case command.Pipeline:
		return s.runPipeline(shape.Head(tokens), shape.Tail(tokens))
	case command.Redirect:
		return s.runRedirect(shape.Head(tokens), shape.Target(tokens))
	default:
		return s.runForeground(tokens)
	}
}

// fail reports err and hands it back so call sites can return it directly.
func (s *service) fail(err error) error {
	s.reporter.Report(err)
	return err
}

/*
launchFailed handles an error from the launcher. A program that could not
be run is reported but the command still counts as accepted, the same as
a child that failed to replace its image and exited on its own. Any other
failure aborts the command.
*/
func (s *service) launchFailed(err error) error {
	s.reporter.Report(err)
	if command.IsOp(err, command.OpExec) {
		return nil
	}
	return err
}

// await blocks until proc terminates. A child that was already reaped is not an error.
func (s *service) await(proc ports.Process) error {
	code, err := proc.Wait()
	if err != nil {
		if errors.Is(err, command.ErrNoChild) {
			s.logger.Debug("child already reaped", "pid", proc.Pid())
			return nil
		}
		return s.fail(err)
	}
	s.logger.Debug("child exited", "pid", proc.Pid(), "code", code)
	return nil
}

func (s *service) request(argv []string, d command.Disposition) ports.LaunchRequest {
	return ports.LaunchRequest{
		Argv:      argv,
		Stdin:     s.streams.Stdin,
		Stdout:    s.streams.Stdout,
		Stderr:    s.streams.Stderr,
		Interrupt: d,
	}
}
