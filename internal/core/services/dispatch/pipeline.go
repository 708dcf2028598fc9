package dispatch

import (
	"errors"
	"os"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

/*
runPipeline connects writerArgv's stdout to readerArgv's stdin.

Both children are started before either is awaited, so a writer that
fills the pipe buffer is never stuck behind a reader that does not exist
yet. The shell holds no end of the pipe once the children are running;
otherwise the reader would never see EOF.
*/
func (s *service) runPipeline(writerArgv, readerArgv []string) error {
	r, w, err := s.opener.Pipe()
	if err != nil {
		return s.fail(err)
	}
	closePipe := func() {
		if cerr := r.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) {
			s.logger.Debug("closing pipe read end", "err", cerr)
		}
		if cerr := w.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) {
			s.logger.Debug("closing pipe write end", "err", cerr)
		}
	}

	writerReq := s.request(writerArgv, command.DispositionDefault)
	writerReq.Stdout = w
	writer, err := s.launcher.Launch(writerReq)
	if err != nil {
		if !command.IsOp(err, command.OpExec) {
			closePipe()
			return s.fail(err)
		}
		// The reader still runs and sees EOF, as if the writer had exited at once.
		s.reporter.Report(err)
		writer = nil
	}

	readerReq := s.request(readerArgv, command.DispositionDefault)
	readerReq.Stdin = r
	reader, err := s.launcher.Launch(readerReq)
	if err != nil {
		closePipe()
		launchErr := s.launchFailed(err)
		if writer != nil {
			if werr := s.await(writer); werr != nil && launchErr == nil {
				launchErr = werr
			}
		}
		return launchErr
	}

	closePipe()

	var waitErrs []error
	for _, proc := range []ports.Process{writer, reader} {
		if proc == nil {
			continue
		}
		if werr := s.await(proc); werr != nil {
			waitErrs = append(waitErrs, werr)
		}
	}
	return errors.Join(waitErrs...)
}
