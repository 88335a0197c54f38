package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces our variables: COMPINTEL_API_BASE_URL and so on.
const envPrefix = "COMPINTEL_"

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the existing values alone.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
