package dispatch

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

/*
runBackground starts argv (the tokens before "&") and returns without
waiting. The child keeps the shell's ignore-interrupt disposition so a
Ctrl-C aimed at a foreground job does not reach it, and it is reaped by
the kernel once it exits.
*/
func (s *service) runBackground(argv []string) error {
	proc, err := s.launcher.Launch(s.request(argv, command.DispositionIgnore))
	if err != nil {
		return s.launchFailed(err)
	}
	s.logger.Debug("background child started", "pid", proc.Pid(), "program", argv[0])
	return nil
}
