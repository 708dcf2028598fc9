package ports

import "os"

// Streams are the standard files children inherit when nothing else is bound.
type Streams struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// DefaultStreams returns the shell's own standard files.
func DefaultStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Dispatcher defines the contract for running one tokenized command line.
type Dispatcher interface {
	// Dispatch runs tokens to completion, or launches them for background
	// commands. A nil error means the command was accepted; a non-nil error
	// has already been reported and only tells the caller it was not.
	Dispatch(tokens []string) error
}
