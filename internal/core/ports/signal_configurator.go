package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

/*
SignalConfigurator owns the process-wide signal dispositions.

Configure is called once at startup; Restore undoes it at shutdown.
WithInterrupt runs start, the call that creates a child, so that the
child begins life with the requested interrupt disposition.
*/
type SignalConfigurator interface {
	Configure() error
	Restore()
	WithInterrupt(d command.Disposition, start func() error) error
}
