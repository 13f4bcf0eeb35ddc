package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"scrobbler/internal/config"
	"scrobbler/internal/localization"
	"scrobbler/internal/logging"
	"scrobbler/internal/services/kodi"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		outputs := []string{"stderr"}
		if cfg.Paths.LogDir != "" {
			outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, "scrobbler.log"))
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: outputs,
		})
	})
	return c.logger, c.loggerErr
}

// newMapper assembles the string mapper with a localized table built from the
// configured display language, its fallback, and finally the canonical
// catalog itself.
func (c *commandContext) newMapper() (*localization.Mapper, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, tag := range []string{cfg.Catalog.Language, cfg.Catalog.FallbackLanguage} {
		resources, err := localization.LocaleResources(tag)
		if err != nil {
			return nil, err
		}
		for _, resource := range resources {
			paths = append(paths, cfg.LocalizedCatalogPath(resource))
		}
	}
	paths = append(paths, cfg.CanonicalCatalogPath())

	table := localization.LoadTable(logger, paths...)
	return localization.NewMapper(cfg.CanonicalCatalogPath(), cfg.MappingCachePath(), table, logger)
}

func (c *commandContext) kodiClient() (*kodi.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return kodi.NewConfiguredClient(cfg, logger), nil
}
