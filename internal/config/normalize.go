package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeClients(); err != nil {
		return err
	}
	c.normalizeCache()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	expansions := []struct {
		name  string
		value *string
	}{
		{"data_dir", &c.Paths.DataDir},
		{"log_dir", &c.Paths.LogDir},
	}
	for _, field := range expansions {
		expanded, err := expandPath(*field.value)
		if err != nil {
			return fmt.Errorf("expand %s: %w", field.name, err)
		}
		*field.value = expanded
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	return nil
}

func (c *Config) normalizeClients() error {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}

	c.Barcode.APIKey = strings.TrimSpace(c.Barcode.APIKey)
	c.Barcode.BaseURL = strings.TrimRight(strings.TrimSpace(c.Barcode.BaseURL), "/")
	if c.Barcode.BaseURL == "" {
		c.Barcode.BaseURL = defaultBarcodeBaseURL
	}
	if c.Barcode.RequestTimeout <= 0 {
		c.Barcode.RequestTimeout = defaultBarcodeTimeout
	}

	c.OpenLibrary.BaseURL = strings.TrimRight(strings.TrimSpace(c.OpenLibrary.BaseURL), "/")
	if c.OpenLibrary.BaseURL == "" {
		c.OpenLibrary.BaseURL = defaultOpenLibraryBaseURL
	}
	return nil
}

func (c *Config) normalizeCache() {
	if expanded, err := expandPath(strings.TrimSpace(c.Cache.Path)); err == nil {
		c.Cache.Path = expanded
	}
	if c.Cache.MetadataTTLSeconds <= 0 {
		c.Cache.MetadataTTLSeconds = defaultMetadataTTL
	}
	if c.Cache.StatsTTLSeconds <= 0 {
		c.Cache.StatsTTLSeconds = defaultStatsTTL
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
