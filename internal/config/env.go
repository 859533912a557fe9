package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the APP_, STORAGE_ and SERVER_ variables into a new config.
// CORS origins are trimmed so that "a, b" and "a,b" configure the same list.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Server.AllowedOrigins = trimOrigins(cfg.Server.AllowedOrigins)

	return &cfg, nil
}

func trimOrigins(origins []string) []string {
	if len(origins) == 0 {
		return nil
	}

	trimmed := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			trimmed = append(trimmed, origin)
		}
	}
	if len(trimmed) == 0 {
		return nil
	}

	return trimmed
}
