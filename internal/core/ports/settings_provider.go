package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/settings"

// SettingsProvider defines the interface for loading the shell settings.
type SettingsProvider interface {
	// Load returns the stored settings merged over the defaults.
	Load() (settings.Settings, error)
	Path() string
}
