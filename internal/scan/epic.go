package scan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"savescout/internal/catalog"
	"savescout/internal/logging"
)

// scanEpic reads the Epic Games Launcher manifests under ProgramData. Each
// .item or .manifest file naming an install location that exists on disk
// becomes one detection; duplicate install paths across manifests collapse.
func scanEpic(m *Machine) ([]DetectedGame, error) {
	manifestDirs := []string{
		filepath.Join(m.ProgramData, "Epic", "EpicGamesLauncher", "Data", "Manifests"),
		filepath.Join(m.ProgramData, "EpicGamesLauncher", "Data", "Manifests"),
	}

	seen := map[string]struct{}{}
	var detected []DetectedGame
	for _, dir := range manifestDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !isManifestFile(entry.Name()) {
				continue
			}
			name, installPath, ok := parseEpicManifest(filepath.Join(dir, entry.Name()), m)
			if !ok {
				continue
			}
			if _, dup := seen[installPath]; dup {
				continue
			}
			seen[installPath] = struct{}{}
			detected = append(detected, DetectedGame{
				Info:        catalog.GameInfo{Name: name},
				InstallPath: installPath,
				Source:      SourceEpic,
			})
		}
	}
	return detected, nil
}

func isManifestFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".item", ".manifest":
		return true
	}
	return false
}

// parseEpicManifest extracts the display name and install location from one
// manifest. Manifests naming an install location that no longer exists are
// stale leftovers and are skipped.
func parseEpicManifest(path string, m *Machine) (name, installPath string, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		m.Logger().Debug("epic manifest unparseable",
			logging.String("path", path),
			logging.Error(err))
		return "", "", false
	}

	name = firstString(doc, "DisplayName", "AppName")
	installPath = firstString(doc, "InstallLocation", "installLocation")
	if name == "" || installPath == "" || !dirExists(installPath) {
		return "", "", false
	}
	return name, installPath, true
}

func firstString(doc map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := doc[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
