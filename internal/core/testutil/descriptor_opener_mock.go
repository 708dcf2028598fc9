package testutil

import (
	"errors"
	"os"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockDescriptorOpener is a mock implementation of ports.DescriptorOpener.
// Descriptors it hands out are remembered so tests can check they were closed.
type MockDescriptorOpener struct {
	PipeFunc       func() (*os.File, *os.File, error)
	OpenAppendFunc func(path string) (*os.File, error)

	Opened          []*os.File
	OpenAppendCalls []string
}

func (m *MockDescriptorOpener) Pipe() (*os.File, *os.File, error) {
	if m.PipeFunc == nil {
		return nil, nil, errors.New("MockDescriptorOpener.PipeFunc not implemented")
	}
	r, w, err := m.PipeFunc()
	if err == nil {
		m.Opened = append(m.Opened, r, w)
	}
	return r, w, err
}

func (m *MockDescriptorOpener) OpenAppend(path string) (*os.File, error) {
	m.OpenAppendCalls = append(m.OpenAppendCalls, path)
	if m.OpenAppendFunc == nil {
		return nil, errors.New("MockDescriptorOpener.OpenAppendFunc not implemented")
	}
	f, err := m.OpenAppendFunc(path)
	if err == nil {
		m.Opened = append(m.Opened, f)
	}
	return f, err
}

// IsClosed reports whether f has been closed.
func IsClosed(f *os.File) bool {
	_, err := f.Stat()
	return errors.Is(err, os.ErrClosed)
}

var _ ports.DescriptorOpener = (*MockDescriptorOpener)(nil)
