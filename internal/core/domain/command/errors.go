package command

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCommand indicates a delimiter with no program before it.
	ErrEmptyCommand = errors.New("missing command")
	// ErrEmptyStage indicates a pipeline with an empty side.
	ErrEmptyStage = errors.New("empty pipeline stage")
	// ErrMissingTarget indicates ">>" without a file name after it.
	ErrMissingTarget = errors.New("missing redirection target")
	// ErrUnsupportedShape indicates a combination of delimiters the dispatcher does not run.
	ErrUnsupportedShape = errors.New("unsupported command shape")
	// ErrNoChild indicates a wait on a child that the kernel had already reaped.
	ErrNoChild = errors.New("no such child")
)

// Op names the dispatch step that failed.
type Op string

const (
	OpFork Op = "fork"
	OpPipe Op = "pipe"
	OpOpen Op = "open"
	OpDup  Op = "dup"
	OpWait Op = "wait"
	OpExec Op = "exec"
)

var opDescriptions = map[Op]string{
	OpFork: "fork error",
	OpPipe: "pipe creation error",
	OpOpen: "open/create file error",
	OpDup:  "descriptor duplication error",
	OpWait: "wait error",
	OpExec: "invalid user command/file permission error",
}

/*
OpError is the result error of one fallible dispatch step. Err carries the
underlying OS error; Path is the program or file involved, when there is one.
*/
type OpError struct {
	Op   Op
	Path string
	Err  error
}

func (e *OpError) Error() string {
	desc, ok := opDescriptions[e.Op]
	if !ok {
		desc = string(e.Op) + " error"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", desc, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", desc, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsOp reports whether err is an *OpError for op.
func IsOp(err error, op Op) bool {
	var opErr *OpError
	return errors.As(err, &opErr) && opErr.Op == op
}
