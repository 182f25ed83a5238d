package scan

import (
	"runtime"

	"savescout/internal/catalog"
	"savescout/internal/savematch"
)

// Source identifies which scanner produced a detection.
type Source string

const (
	SourceSteam     Source = "steam"
	SourceEpic      Source = "epic"
	SourceOrigin    Source = "origin"
	SourceRegistry  Source = "registry"
	SourceCommonDir Source = "common_dir"
	SourceProcess   Source = "process"
	SourceManual    Source = "manual"
)

// Options selects which sources a scan consults.
type Options struct {
	Platform         string `json:"platform"`
	SearchSteam      bool   `json:"search_steam"`
	SearchEpic       bool   `json:"search_epic"`
	SearchOrigin     bool   `json:"search_origin"`
	SearchRegistry   bool   `json:"search_registry"`
	SearchCommonDirs bool   `json:"search_common_dirs"`
	SearchProcesses  bool   `json:"search_processes"`
}

// DefaultOptions enables the cheap, reliable sources. Epic and EA/Origin
// manifests are opt-in since their formats drift between launcher versions;
// process scanning is opt-in because it is intrusive.
func DefaultOptions() Options {
	return Options{
		Platform:         runtime.GOOS,
		SearchSteam:      true,
		SearchEpic:       false,
		SearchOrigin:     false,
		SearchRegistry:   true,
		SearchCommonDirs: true,
		SearchProcesses:  false,
	}
}

// DetectedGame is one install candidate. Info starts as a bare name from
// the scanner and is replaced wholesale by enrichment when the catalog
// knows the game; InstallPath and Source always survive enrichment.
type DetectedGame struct {
	Info        catalog.GameInfo `json:"info"`
	InstallPath string           `json:"install_path,omitempty"`
	Source      Source           `json:"source"`
}

// Result is the outcome of one scan. Errors carries the soft failures of
// individual scanners; a non-empty Errors with populated Detected means the
// scan partially succeeded.
type Result struct {
	Detected []DetectedGame     `json:"detected"`
	Matches  []savematch.Result `json:"matches"`
	Errors   []string           `json:"errors,omitempty"`
}
