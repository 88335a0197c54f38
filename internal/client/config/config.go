// Package config assembles the CLI runtime settings from layered sources:
// built-in defaults, then a JSON file, then environment variables, then
// command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the compintel CLI.
type Config struct {
	// APIBaseURL is the root of the backend REST API, including any path
	// prefix (e.g. http://localhost:5000/api).
	APIBaseURL string `env:"API_BASE_URL"`

	// DatabasePath is the local SQLite file holding the persisted credential.
	DatabasePath string `env:"DATABASE_PATH"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogLevel maps onto slog levels (0 = info, -4 = debug, 4 = warn).
	LogLevel int `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DatabasePath = "compintel.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = 0
}

// Load constructs a Config: defaults, then JSON (if a config file was given),
// then environment, then flags.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
