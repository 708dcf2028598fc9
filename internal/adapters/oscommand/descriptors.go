package oscommand

import (
	"os"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// redirectFileMode is the permission of files created by ">>".
const redirectFileMode os.FileMode = 0o600

// OSDescriptorOpener implements the DescriptorOpener interface on the real file system.
type OSDescriptorOpener struct{}

// NewOSDescriptorOpener creates a new OSDescriptorOpener.
func NewOSDescriptorOpener() ports.DescriptorOpener {
	return &OSDescriptorOpener{}
}

// Pipe implements ports.DescriptorOpener. Both ends are close-on-exec.
func (o *OSDescriptorOpener) Pipe() (*os.File, *os.File, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, nil, &command.OpError{Op: command.OpPipe, Err: unwrapPathError(err)}
	}
	return r, w, nil
}

// OpenAppend implements ports.DescriptorOpener.
func (o *OSDescriptorOpener) OpenAppend(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, redirectFileMode)
	if err != nil {
		return nil, &command.OpError{Op: command.OpOpen, Path: path, Err: unwrapPathError(err)}
	}
	return f, nil
}
