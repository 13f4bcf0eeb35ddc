package config

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateKodi(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.AddonDir == "" {
		return errors.New("paths.addon_dir must be set")
	}
	if c.Paths.ProfileDir == "" {
		return errors.New("paths.profile_dir must be set")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if _, err := language.Parse(c.Catalog.Language); err != nil {
		return fmt.Errorf("catalog.language %q is not a valid language tag: %w", c.Catalog.Language, err)
	}
	if _, err := language.Parse(c.Catalog.FallbackLanguage); err != nil {
		return fmt.Errorf("catalog.fallback_language %q is not a valid language tag: %w", c.Catalog.FallbackLanguage, err)
	}
	return nil
}

func (c *Config) validateKodi() error {
	parsed, err := url.Parse(c.Kodi.URL)
	if err != nil {
		return fmt.Errorf("kodi.url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("kodi.url must be an http or https URL, got %q", c.Kodi.URL)
	}
	if c.Kodi.Password != "" && c.Kodi.Username == "" {
		return errors.New("kodi.username must be set when kodi.password is set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
