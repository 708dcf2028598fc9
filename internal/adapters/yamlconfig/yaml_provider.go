package yamlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/minish/internal/core/domain/settings"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// ConfigEnvVar overrides the location of the settings file.
const ConfigEnvVar = "MINISH_CONFIG"

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML settings file.
func NewYAMLProvider(filePath string) (ports.SettingsProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultPath returns $MINISH_CONFIG, falling back to ~/.minish/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".minish", "config.yaml"), nil
}

// Path implements the ports.SettingsProvider interface.
func (p *YAMLProvider) Path() string {
	return p.filePath
}

// Load reads the settings file and decodes it over settings.Defaults().
// A missing or empty file yields the defaults and no error.
func (p *YAMLProvider) Load() (settings.Settings, error) {
	loaded := settings.Defaults()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loaded, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return loaded, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&loaded); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", p.filePath, err)
	}

	if loaded.History.ScanLimit <= 0 {
		return settings.Settings{}, fmt.Errorf("invalid settings in %s: history.scan_limit must be positive, got %d",
			p.filePath, loaded.History.ScanLimit)
	}
	return loaded, nil
}

var _ ports.SettingsProvider = (*YAMLProvider)(nil)
