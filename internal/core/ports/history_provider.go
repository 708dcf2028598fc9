package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/history"

type HistoryProvider interface {
	// Record appends one accepted command line.
	Record(line string) error
	GetCommandFrequencies(scanLimit int, outputLimit int) ([]history.CommandFrequency, error)
	GetHistoryFilePath() string
	GetSourceIdentifier() string
}
