package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/AntonioJCosta/minish/internal/core/domain/history"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// ErrNoHistoryFile is returned when no history file could be resolved.
var ErrNoHistoryFile = errors.New("history file not configured")

/*
HistoryProvider stores the lines accepted by the shell in a plain text
file, one command per line, and answers frequency queries over it.
It implements the ports.HistoryProvider interface.
*/
type HistoryProvider struct {
	HistoryFile      string // Stores the absolute path
	sourceIdentifier string // Stores the user-friendly source identifier
	mu               sync.Mutex
}

func (hp *HistoryProvider) GetSourceIdentifier() string {
	if hp.sourceIdentifier != "" {
		return hp.sourceIdentifier
	}
	if hp.HistoryFile != "" {
		return fmt.Sprintf("File: %s", toUserFriendlyPath(hp.HistoryFile))
	}
	return "minish (history file not configured)"
}

// NewHistoryProvider creates a new file-backed HistoryProvider.
// A finder error does not fail construction: the provider is returned
// without a file, Record and GetCommandFrequencies then report ErrNoHistoryFile,
// and the finder error is returned alongside so the caller can log it.
func NewHistoryProvider(fileFinder ports.HistoryFileFinder) (ports.HistoryProvider, error) {
	histFilePath, err := fileFinder.Find()
	if err != nil {
		return &HistoryProvider{
			sourceIdentifier: "minish (history file not found or configured)",
		}, fmt.Errorf("locating history file: %w", err)
	}

	return &HistoryProvider{
		HistoryFile:      histFilePath,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(histFilePath)),
	}, nil
}

// Record implements the ports.HistoryProvider interface.
// Blank lines are not stored.
func (hp *HistoryProvider) Record(line string) error {
	line = normalizeEntry(line)
	if line == "" {
		return nil
	}
	if hp.HistoryFile == "" {
		return ErrNoHistoryFile
	}

	hp.mu.Lock()
	defer hp.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(hp.HistoryFile), 0o700); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	f, err := os.OpenFile(hp.HistoryFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening history file %s: %w", toUserFriendlyPath(hp.HistoryFile), err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("writing history file %s: %w", toUserFriendlyPath(hp.HistoryFile), err)
	}
	return f.Close()
}

// GetCommandFrequencies implements the ports.HistoryProvider interface.
func (hp *HistoryProvider) GetCommandFrequencies(scanLimit int, outputLimit int) ([]history.CommandFrequency, error) {
	if hp.HistoryFile == "" {
		return nil, fmt.Errorf("%w: cannot fetch command frequencies", ErrNoHistoryFile)
	}

	hp.mu.Lock()
	defer hp.mu.Unlock()
	return hp.getHistoryFrequencies(scanLimit, outputLimit)
}

func (hp *HistoryProvider) GetHistoryFilePath() string {
	return hp.HistoryFile
}

func normalizeEntry(line string) string {
	line = strings.TrimRight(line, " \t\r\n")
	if strings.TrimSpace(line) == "" {
		return ""
	}
	return line
}
