package config

const (
	defaultAddonDir         = "~/.kodi/addons/script.tvmaze.scrobbler"
	defaultProfileDir       = "~/.kodi/userdata/addon_data/script.tvmaze.scrobbler"
	defaultLogDir           = "~/.local/share/scrobbler/logs"
	defaultCatalogLanguage  = "en-GB"
	defaultKodiURL          = "http://127.0.0.1:8080/jsonrpc"
	defaultRequestTimeout   = 10
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
	defaultFallbackLanguage = "en-GB"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AddonDir:   defaultAddonDir,
			ProfileDir: defaultProfileDir,
			LogDir:     defaultLogDir,
		},
		Catalog: Catalog{
			Language:         defaultCatalogLanguage,
			FallbackLanguage: defaultFallbackLanguage,
		},
		Kodi: Kodi{
			URL:            defaultKodiURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
