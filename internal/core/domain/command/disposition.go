package command

// Disposition is how a launched process treats the interrupt signal.
// It is decided per launch and applied across the fork boundary; the
// shell process itself always absorbs interrupts.
type Disposition int

const (
	// DispositionDefault lets the interrupt terminate the process.
	DispositionDefault Disposition = iota
	// DispositionIgnore makes the process ignore interrupts, like the shell.
	DispositionIgnore
)

func (d Disposition) String() string {
	if d == DispositionIgnore {
		return "ignore"
	}
	return "default"
}
