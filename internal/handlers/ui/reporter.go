package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// Reporter prints dispatcher failures as "minish: <error>" lines.
type Reporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewReporter creates a Reporter writing to w, usually os.Stderr.
func NewReporter(w io.Writer) ports.DiagnosticReporter {
	return &Reporter{w: w}
}

// Report implements the ports.DiagnosticReporter interface.
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "%s %s\n", ErrorColor("minish:"), err)
}
