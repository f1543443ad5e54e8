package config

import (
	"fmt"
	"strings"

	"mediashelf/internal/services"
)

// Validate checks the configuration for values that would break at runtime.
// TMDB credentials are only required when movie lookups are exercised, so a
// missing key is reported by the lookup path rather than here.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return invalid("paths.data_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return invalid("paths.log_dir must not be empty")
	}
	if strings.TrimSpace(c.Cache.Path) == "" {
		return invalid("cache.path must not be empty")
	}
	if c.Cache.MetadataTTLSeconds <= 0 {
		return invalid(fmt.Sprintf("cache.metadata_ttl_seconds must be positive, got %d", c.Cache.MetadataTTLSeconds))
	}
	if c.Cache.StatsTTLSeconds <= 0 {
		return invalid(fmt.Sprintf("cache.stats_ttl_seconds must be positive, got %d", c.Cache.StatsTTLSeconds))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return invalid(fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	return nil
}

func invalid(message string) error {
	return services.Wrap(services.ErrConfiguration, "config", "validate", message, nil)
}
