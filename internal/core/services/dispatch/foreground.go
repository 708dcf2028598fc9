package dispatch

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

// runForeground runs argv to completion. The child is interruptible even
// though the shell is not.
func (s *service) runForeground(argv []string) error {
	proc, err := s.launcher.Launch(s.request(argv, command.DispositionDefault))
	if err != nil {
		return s.launchFailed(err)
	}
	return s.await(proc)
}
