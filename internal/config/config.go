// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and environment
//   variables, highest last.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at a YAML roster dataset. Empty means the
	// embedded dataset.
	DatasetPath string `koanf:"dataset_path"`

	// School overrides the school name from the dataset when set.
	School string `koanf:"school"`

	// MaxSearchResults caps the number of participants returned per search.
	MaxSearchResults int `koanf:"max_search_results"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		MaxSearchResults: 50,
	}
}
