package ports

import (
	"os"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
)

// LaunchRequest describes one child process: what to run and how its
// standard streams and interrupt disposition are set up.
type LaunchRequest struct {
	Argv      []string
	Stdin     *os.File
	Stdout    *os.File
	Stderr    *os.File
	Interrupt command.Disposition
}

// Process is a started child. It is owned by whoever launched it until Wait returns.
type Process interface {
	Pid() int
	// Wait blocks until the child terminates. A non-zero exit status is not
	// an error; it is reported through the returned exit code.
	Wait() (exitCode int, err error)
}

/*
ProcessLauncher defines the contract for creating a child process and
replacing its image with the named program.

Launch returns a *command.OpError with Op OpExec when the program could
not be run at all, and OpFork for any other creation failure.
*/
type ProcessLauncher interface {
	Launch(req LaunchRequest) (Process, error)
}
