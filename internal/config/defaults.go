package config

const (
	defaultDataDir    = "~/.local/share/folio/data"
	defaultVenuesFile = "~/.local/share/folio/venues.yaml"
	defaultSIGsDir    = "~/.local/share/folio/sigs"
	defaultLogDir     = "~/.local/share/folio/logs"
	defaultExportDB   = "~/.local/share/folio/folio.db"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			VenuesFile: defaultVenuesFile,
			SIGsDir:    defaultSIGsDir,
			LogDir:     defaultLogDir,
			ExportDB:   defaultExportDB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
