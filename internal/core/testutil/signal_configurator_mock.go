package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockSignalConfigurator is a mock implementation of ports.SignalConfigurator.
type MockSignalConfigurator struct {
	ConfigureFunc func() error

	ConfigureCalls int
	RestoreCalls   int
	// Dispositions records the disposition of every WithInterrupt call.
	Dispositions []command.Disposition
}

func (m *MockSignalConfigurator) Configure() error {
	m.ConfigureCalls++
	if m.ConfigureFunc != nil {
		return m.ConfigureFunc()
	}
	return nil
}

func (m *MockSignalConfigurator) Restore() {
	m.RestoreCalls++
}

// WithInterrupt records d and runs start.
func (m *MockSignalConfigurator) WithInterrupt(d command.Disposition, start func() error) error {
	m.Dispositions = append(m.Dispositions, d)
	return start()
}

var _ ports.SignalConfigurator = (*MockSignalConfigurator)(nil)
