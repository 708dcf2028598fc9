/*
Package sigdisposition sets up and restores the shell's process-wide
signal dispositions.

The shell never dies from an interrupt: SIGINT is delivered to a channel
that is drained and discarded. Because the signal is handled rather than
ignored, every program the shell execs starts with the default SIGINT
action, which is what foreground jobs need. Background jobs ask for
DispositionIgnore, which switches SIGINT to ignored for the instant their
process is created so they inherit it.

SIGCHLD is ignored, so the kernel reaps children nobody waits for. A wait
on such a child blocks until it exits and then fails with ECHILD.
*/
package sigdisposition

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"golang.org/x/sys/unix"
)

var (
	// ErrReapSetup indicates SIGCHLD could not be set to auto-reap.
	ErrReapSetup = errors.New("zombie-handling signal error")
	// ErrInterruptSetup indicates the shell could not take over SIGINT.
	ErrInterruptSetup = errors.New("shell signal error")
)

// Configurator implements ports.SignalConfigurator with os/signal.
type Configurator struct {
	mu         sync.Mutex
	configured bool
	interrupts chan os.Signal
	done       chan struct{}
	swallowed  atomic.Int64
	logger     *slog.Logger
}

// NewConfigurator creates a Configurator. Nothing changes until Configure is called.
func NewConfigurator(logger *slog.Logger) *Configurator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Configurator{logger: logger}
}

// Configure implements the ports.SignalConfigurator interface.
// Calling it again after a successful call is a no-op.
func (c *Configurator) Configure() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configured {
		return nil
	}

	signal.Ignore(unix.SIGCHLD)
	if !signal.Ignored(unix.SIGCHLD) {
		return ErrReapSetup
	}

	c.interrupts = make(chan os.Signal, 1)
	c.done = make(chan struct{})
	signal.Notify(c.interrupts, unix.SIGINT)
	if signal.Ignored(unix.SIGINT) {
		signal.Stop(c.interrupts)
		return ErrInterruptSetup
	}
	go c.drain(c.interrupts, c.done)

	c.configured = true
	c.logger.Debug("signal dispositions configured", "sigchld", "ignore", "sigint", "absorbed")
	return nil
}

func (c *Configurator) drain(interrupts <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-interrupts:
			c.swallowed.Add(1)
			c.logger.Debug("interrupt absorbed by shell", "signal", sig.String())
		case <-done:
			return
		}
	}
}

// Swallowed returns how many interrupts reached the shell itself.
func (c *Configurator) Swallowed() int64 {
	return c.swallowed.Load()
}

/*
WithInterrupt implements the ports.SignalConfigurator interface.

Default needs no change: handled signals are reset to SIG_DFL in the child
before exec. Ignore sets SIGINT to SIG_IGN around start, which is inherited
across exec, and then gives SIGINT back to the shell.
*/
func (c *Configurator) WithInterrupt(d command.Disposition, start func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d != command.DispositionIgnore {
		return start()
	}

	signal.Ignore(unix.SIGINT)
	defer c.rearmInterrupt()
	return start()
}

// rearmInterrupt undoes signal.Ignore, which also unsubscribes every channel.
func (c *Configurator) rearmInterrupt() {
	if c.configured {
		signal.Notify(c.interrupts, unix.SIGINT)
		return
	}
	signal.Reset(unix.SIGINT)
}

// Restore implements the ports.SignalConfigurator interface.
func (c *Configurator) Restore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.configured {
		return
	}

	signal.Stop(c.interrupts)
	signal.Reset(unix.SIGINT)
	close(c.done)

	// Reset alone would leave SIGCHLD at SIG_IGN; subscribing reinstalls
	// the runtime handler and stopping keeps it in place.
	chld := make(chan os.Signal, 1)
	signal.Notify(chld, unix.SIGCHLD)
	signal.Stop(chld)

	c.configured = false
	c.logger.Debug("signal dispositions restored")
}

var _ ports.SignalConfigurator = (*Configurator)(nil)
