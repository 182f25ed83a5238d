package config

import "runtime"

const (
	defaultBackupDir          = "~/.local/share/savescout/backups"
	defaultCatalogStore       = "~/.local/share/savescout/catalog.db"
	defaultCatalogCache       = "~/.cache/savescout/catalog.json"
	defaultLogDir             = "~/.local/share/savescout/logs"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultProgressIntervalMS = 250
)

// Default returns a Config populated with repository defaults. Steam,
// registry, and common-directory sources are on; Epic and EA/Origin
// manifest parsing is opt-in because launcher formats drift, and process
// scanning is opt-in because it is intrusive.
func Default() Config {
	return Config{
		Paths: Paths{
			BackupDir:    defaultBackupDir,
			CatalogStore: defaultCatalogStore,
			CatalogCache: defaultCatalogCache,
			LogDir:       defaultLogDir,
		},
		Scan: Scan{
			Platform:           runtime.GOOS,
			SearchSteam:        true,
			SearchEpic:         false,
			SearchOrigin:       false,
			SearchRegistry:     true,
			SearchCommonDirs:   true,
			SearchProcesses:    false,
			ProgressIntervalMS: defaultProgressIntervalMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
