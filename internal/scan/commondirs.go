package scan

import (
	"os"
	"path/filepath"

	"savescout/internal/catalog"
)

// vendorDirs are the well-known install roots under Program Files, relative
// to each Program Files directory.
var vendorDirs = [][]string{
	{"Steam", "steamapps", "common"},
	{"Epic Games"},
	{"Origin Games"},
	{"GOG Galaxy", "Games"},
	{"Ubisoft", "Ubisoft Game Launcher", "games"},
}

// scanCommonDirs enumerates first-level subdirectories of the well-known
// vendor install roots. It is deliberately generous: every directory is a
// candidate, and downstream dedup plus enrichment filter the noise.
func scanCommonDirs(m *Machine) ([]DetectedGame, error) {
	var detected []DetectedGame
	for _, vendor := range vendorDirs {
		for _, root := range m.programFilesPath(vendor...) {
			entries, err := os.ReadDir(root)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				detected = append(detected, DetectedGame{
					Info:        catalog.GameInfo{Name: entry.Name()},
					InstallPath: filepath.Join(root, entry.Name()),
					Source:      SourceCommonDir,
				})
			}
		}
	}
	return detected, nil
}
