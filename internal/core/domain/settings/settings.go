/*
Package settings defines the user-tunable configuration of the shell.
*/
package settings

// Settings is the decoded form of ~/.minish/config.yaml.
type Settings struct {
	Prompt   string  `yaml:"prompt"`
	LogLevel string  `yaml:"log_level"`
	NoColor  bool    `yaml:"no_color"`
	History  History `yaml:"history"`
}

// History controls the command history store.
type History struct {
	Enabled   bool   `yaml:"enabled"`
	Path      string `yaml:"path"` // Empty means ~/.minish/history
	ScanLimit int    `yaml:"scan_limit"`
}

// Defaults returns the settings used when no configuration file exists.
func Defaults() Settings {
	return Settings{
		Prompt:   "minish> ",
		LogLevel: "warn",
		History: History{
			Enabled:   true,
			ScanLimit: 500,
		},
	}
}
