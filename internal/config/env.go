package config

import (
	"fmt"
	"os"
)

// loadFromEnv overrides config from KANBAN_* environment variables.
// Empty variables are ignored.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	for _, f := range fields {
		v, ok := os.LookupEnv(f.env)
		if !ok || v == "" {
			continue
		}
		if err := f.set(cfg, v); err != nil {
			return fmt.Errorf("%s: %w", f.env, err)
		}
		if sources != nil {
			sources[f.name] = SourceEnv
		}
	}
	return nil
}
