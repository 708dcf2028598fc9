package dispatch

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

/*
runRedirect runs argv with its standard output appended to target. The
file is created owner read-write if it does not exist. The shell's copy of
the descriptor is closed as soon as the child holds its own.
*/
func (s *service) runRedirect(argv []string, target string) error {
	f, err := s.opener.OpenAppend(target)
	if err != nil {
		return s.fail(err)
	}

	req := s.request(argv, command.DispositionDefault)
	req.Stdout = f
	proc, err := s.launcher.Launch(req)
	if cerr := f.Close(); cerr != nil {
		s.logger.Debug("closing redirect target", "path", target, "err", cerr)
	}
	if err != nil {
		return s.launchFailed(err)
	}
	return s.await(proc)
}
