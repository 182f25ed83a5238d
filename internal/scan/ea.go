package scan

import (
	"encoding/json"
	"os"
	"path/filepath"

	"savescout/internal/catalog"
	"savescout/internal/logging"
)

// scanOrigin detects EA games: the EA Desktop installedGames.json is read
// when present, and the legacy Origin Games directories are enumerated as a
// fallback. Both feed the same result; aggregation collapses overlaps.
func scanOrigin(m *Machine) ([]DetectedGame, error) {
	var detected []DetectedGame

	installedList := filepath.Join(m.ProgramData, "Electronic Arts", "EA Desktop", "installedGames.json")
	if data, err := os.ReadFile(installedList); err == nil {
		for _, g := range parseEAInstalledGames(data, m) {
			detected = append(detected, g)
		}
	}

	for _, dir := range m.programFilesPath("Origin Games") {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			detected = append(detected, DetectedGame{
				Info:        catalog.GameInfo{Name: entry.Name()},
				InstallPath: filepath.Join(dir, entry.Name()),
				Source:      SourceOrigin,
			})
		}
	}
	return detected, nil
}

// parseEAInstalledGames walks the installedGames.json document, which has no
// stable schema across EA Desktop versions. Any object carrying both a
// name-like and an install-location-like field counts as one game.
func parseEAInstalledGames(data []byte, m *Machine) []DetectedGame {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		m.Logger().Debug("ea installed games list unparseable", logging.Error(err))
		return nil
	}

	var detected []DetectedGame
	var walk func(node any)
	walk = func(node any) {
		switch v := node.(type) {
		case []any:
			for _, item := range v {
				walk(item)
			}
		case map[string]any:
			name := firstString(v, "displayName", "productName", "title")
			install := firstString(v, "installLocation", "installationPath", "path")
			if name != "" && install != "" {
				detected = append(detected, DetectedGame{
					Info:        catalog.GameInfo{Name: name},
					InstallPath: install,
					Source:      SourceOrigin,
				})
				return
			}
			for _, child := range v {
				walk(child)
			}
		}
	}
	walk(doc)
	return detected
}
