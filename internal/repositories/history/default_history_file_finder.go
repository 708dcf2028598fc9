package history

import "github.com/AntonioJCosta/minish/internal/core/ports"

// DefaultHistoryFileFinder resolves the history file from settings, the environment or the home directory.
type DefaultHistoryFileFinder struct {
	configured string
}

// Find implements the ports.HistoryFileFinder interface.
func (d *DefaultHistoryFileFinder) Find() (string, error) {
	return findUserHistoryFile(d.configured)
}

// NewDefaultHistoryFileFinder creates a new DefaultHistoryFileFinder.
// configured is the history.path setting; empty means "use the defaults".
func NewDefaultHistoryFileFinder(configured string) ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{configured: configured}
}
