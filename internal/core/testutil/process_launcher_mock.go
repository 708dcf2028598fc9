package testutil

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockProcessLauncher is a mock implementation of ports.ProcessLauncher.
type MockProcessLauncher struct {
	LaunchFunc func(req ports.LaunchRequest) (ports.Process, error)
	// LaunchCalls keeps track of every request passed to Launch, in order.
	LaunchCalls []ports.LaunchRequest
}

// Launch records req and calls LaunchFunc.
func (m *MockProcessLauncher) Launch(req ports.LaunchRequest) (ports.Process, error) {
	m.LaunchCalls = append(m.LaunchCalls, req)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(req)
	}
	return nil, errors.New("MockProcessLauncher.LaunchFunc not implemented")
}

// MockProcess is a mock implementation of ports.Process.
type MockProcess struct {
	PID      int
	WaitFunc func() (int, error)
	// WaitCalls counts how many times Wait was called.
	WaitCalls int
}

func (m *MockProcess) Pid() int {
	return m.PID
}

// Wait calls WaitFunc, or reports a clean exit if it is not set.
func (m *MockProcess) Wait() (int, error) {
	m.WaitCalls++
	if m.WaitFunc != nil {
		return m.WaitFunc()
	}
	return 0, nil
}

var (
	_ ports.ProcessLauncher = (*MockProcessLauncher)(nil)
	_ ports.Process         = (*MockProcess)(nil)
)
