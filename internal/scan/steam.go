package scan

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"savescout/internal/catalog"
	"savescout/internal/logging"
)

var errSteamRootNotFound = errors.New("steam root not found via override, registry, or default locations")

// libraryPathPattern tolerantly pulls every "path" value out of
// libraryfolders.vdf, covering both old and new KeyValues layouts.
var libraryPathPattern = regexp.MustCompile(`path"\s*"([^"]+)"`)

// scanSteam enumerates installed games across all Steam libraries. Each
// subdirectory of a library's steamapps/common is one candidate, named by
// its directory.
func scanSteam(m *Machine) ([]DetectedGame, error) {
	root, err := m.steamRoot()
	if err != nil {
		return nil, err
	}
	m.Logger().Debug("steam root located", logging.String("path", root))

	libraries := []string{root}
	if parsed, err := readLibraryFolders(root); err != nil {
		m.Logger().Warn("steam library folders unreadable, using main library only",
			logging.Error(err))
	} else {
		libraries = append(parsed, root)
	}

	var detected []DetectedGame
	for _, lib := range libraries {
		commonDir := filepath.Join(lib, "steamapps", "common")
		entries, err := os.ReadDir(commonDir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			detected = append(detected, DetectedGame{
				Info:        catalog.GameInfo{Name: entry.Name()},
				InstallPath: filepath.Join(commonDir, entry.Name()),
				Source:      SourceSteam,
			})
		}
	}
	return detected, nil
}

// steamRoot resolves the Steam install directory: explicit override, then
// registry, then the default Program Files locations.
func (m *Machine) steamRoot() (string, error) {
	if m.SteamRoot != "" {
		if dirExists(m.SteamRoot) {
			return m.SteamRoot, nil
		}
		return "", errSteamRootNotFound
	}

	if root, err := steamRootFromRegistry(); err == nil && dirExists(root) {
		return root, nil
	}

	for _, candidate := range m.programFilesPath("Steam") {
		if dirExists(candidate) {
			return candidate, nil
		}
	}
	return "", errSteamRootNotFound
}

// readLibraryFolders parses <root>/steamapps/libraryfolders.vdf and returns
// the library paths that exist on disk.
func readLibraryFolders(root string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(root, "steamapps", "libraryfolders.vdf"))
	if err != nil {
		return nil, err
	}

	var out []string
	for _, path := range parseLibraryFolders(string(data)) {
		if dirExists(path) {
			out = append(out, path)
		}
	}
	return out, nil
}

// parseLibraryFolders extracts raw library paths from VDF content. Escaped
// double backslashes are collapsed so the values work as plain paths.
func parseLibraryFolders(content string) []string {
	var paths []string
	for _, match := range libraryPathPattern.FindAllStringSubmatch(content, -1) {
		raw := strings.TrimSpace(match[1])
		if raw == "" {
			continue
		}
		paths = append(paths, strings.ReplaceAll(raw, `\\`, `\`))
	}
	return paths
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
