package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCatalog()
	c.normalizeKodi()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.AddonDir, err = expandPath(c.Paths.AddonDir); err != nil {
		return fmt.Errorf("paths.addon_dir: %w", err)
	}
	if c.Paths.ProfileDir, err = expandPath(c.Paths.ProfileDir); err != nil {
		return fmt.Errorf("paths.profile_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() {
	c.Catalog.Language = strings.TrimSpace(c.Catalog.Language)
	if c.Catalog.Language == "" {
		c.Catalog.Language = defaultCatalogLanguage
	}
	c.Catalog.FallbackLanguage = strings.TrimSpace(c.Catalog.FallbackLanguage)
	if c.Catalog.FallbackLanguage == "" {
		c.Catalog.FallbackLanguage = defaultFallbackLanguage
	}
}

func (c *Config) normalizeKodi() {
	c.Kodi.URL = strings.TrimSpace(c.Kodi.URL)
	if c.Kodi.URL == "" {
		c.Kodi.URL = defaultKodiURL
	}
	c.Kodi.Username = strings.TrimSpace(c.Kodi.Username)
	if c.Kodi.RequestTimeout <= 0 {
		c.Kodi.RequestTimeout = defaultRequestTimeout
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
