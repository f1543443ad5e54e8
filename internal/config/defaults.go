package config

const (
	defaultDataDir            = "~/.local/share/mediashelf"
	defaultLogDir             = "~/.local/share/mediashelf/logs"
	defaultAPIBind            = "127.0.0.1:7787"
	defaultTMDBBaseURL        = "https://api.themoviedb.org/3"
	defaultTMDBLanguage       = "en-US"
	defaultBarcodeBaseURL     = "https://api.upcitemdb.com/prod/trial"
	defaultBarcodeTimeout     = 10
	defaultOpenLibraryBaseURL = "https://openlibrary.org"
	defaultCachePath          = "~/.cache/mediashelf/aggregate_cache.json"
	defaultMetadataTTL        = 3600
	defaultStatsTTL           = 300
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		Barcode: Barcode{
			BaseURL:        defaultBarcodeBaseURL,
			RequestTimeout: defaultBarcodeTimeout,
		},
		OpenLibrary: OpenLibrary{
			BaseURL: defaultOpenLibraryBaseURL,
		},
		Cache: Cache{
			Path:               defaultCachePath,
			MetadataTTLSeconds: defaultMetadataTTL,
			StatsTTLSeconds:    defaultStatsTTL,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
