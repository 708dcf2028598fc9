package testutil

import "github.com/AntonioJCosta/minish/internal/core/ports"

// MockDispatcher is a mock implementation of ports.Dispatcher.
type MockDispatcher struct {
	DispatchFunc  func(tokens []string) error
	DispatchCalls [][]string
}

// Dispatch mocks the Dispatch method and records a copy of the tokens.
func (m *MockDispatcher) Dispatch(tokens []string) error {
	m.DispatchCalls = append(m.DispatchCalls, append([]string(nil), tokens...))
	if m.DispatchFunc != nil {
		return m.DispatchFunc(tokens)
	}
	return nil
}

var _ ports.Dispatcher = (*MockDispatcher)(nil)
