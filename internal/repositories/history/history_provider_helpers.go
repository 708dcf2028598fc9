package history

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/history"
)

// HistFileEnvVar overrides the history file location when no path is configured.
const HistFileEnvVar = "MINISH_HISTFILE"

const (
	defaultScanCount   = 500
	defaultOutputLimit = 10
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := homeDirectory()
	if err != nil {
		return absPath
	}

	if absPath == homeDir {
		return "~"
	}
	if !strings.HasPrefix(absPath, homeDir+string(filepath.Separator)) {
		return absPath
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// findUserHistoryFile resolves, in order: the configured path, $MINISH_HISTFILE,
// then ~/.minish/history. Relative paths and a leading "~/" are resolved against
// the home directory. The file does not have to exist yet.
func findUserHistoryFile(configured string) (string, error) {
	homeDir, err := homeDirectory()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}

	candidate := configured
	if candidate == "" {
		candidate = os.Getenv(HistFileEnvVar)
	}
	if candidate == "" {
		return filepath.Join(homeDir, ".minish", "history"), nil
	}

	if candidate == "~" {
		return "", fmt.Errorf("history path %q is the home directory, not a file", candidate)
	}
	if rest, ok := strings.CutPrefix(candidate, "~/"); ok {
		candidate = rest
	}
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(homeDir, candidate)
	}

	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return "", fmt.Errorf("history path %s is a directory", toUserFriendlyPath(candidate))
	}
	return candidate, nil
}

// homeDirectory prefers $HOME so tests and sudo sessions resolve the same way the shell does.
func homeDirectory() (string, error) {
	if home, err := os.UserHomeDir(); err == nil {
		return home, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return usr.HomeDir, nil
}

// determineScanCount determines how many history entries to scan.
func determineScanCount(scanLimit int) int {
	if scanLimit > 0 {
		return scanLimit
	}
	return defaultScanCount
}

// readEntries returns the non-blank entries of the history file, oldest first.
func readEntries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if entry := normalizeEntry(scanner.Text()); entry != "" {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// countFrequencies counts identical entries and orders them by count, most frequent first.
// Equal counts keep the order in which the command first appears in entries.
func countFrequencies(entries []string, outputLimit int) []history.CommandFrequency {
	if outputLimit <= 0 {
		outputLimit = defaultOutputLimit
	}

	frequencies := []history.CommandFrequency{}
	position := make(map[string]int)
	for _, entry := range entries {
		if i, seen := position[entry]; seen {
			frequencies[i].Count++
			continue
		}
		position[entry] = len(frequencies)
		frequencies = append(frequencies, history.CommandFrequency{Command: entry, Count: 1})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})
	if len(frequencies) > outputLimit {
		frequencies = frequencies[:outputLimit]
	}
	return frequencies
}

func (hp *HistoryProvider) getHistoryFrequencies(scanLimit, outputLimit int) ([]history.CommandFrequency, error) {
	entries, err := readEntries(hp.HistoryFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Nothing recorded yet.
			return []history.CommandFrequency{}, nil
		}
		return nil, fmt.Errorf("reading history file %s: %w", toUserFriendlyPath(hp.HistoryFile), err)
	}

	if scanCount := determineScanCount(scanLimit); len(entries) > scanCount {
		entries = entries[len(entries)-scanCount:]
	}
	return countFrequencies(entries, outputLimit), nil
}
