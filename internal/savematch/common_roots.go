package savematch

import (
	"os"
	"path/filepath"
	"strings"

	"savescout/internal/catalog"
	"savescout/internal/logging"
)

// commonRootsConfidence applies to name matches under the standard per-user
// save roots. High but below install-relative: a name match can still be a
// config-only directory.
const commonRootsConfidence = 0.90

// saveSubfolders are the directory names publishers conventionally use for
// save data inside a game's folder.
var saveSubfolders = []string{"SaveGames", "SaveData", "Saves", "Profiles"}

var saveExtensions = map[string]struct{}{
	".sav":  {},
	".save": {},
	".slot": {},
	".dat":  {},
}

// matchCommonRoots scans the standard per-user roots for directories whose
// normalized name matches the game's name or an alias. Matches one level
// down are also checked so Vendor/Game layouts are found.
func (m *Matcher) matchCommonRoots(game *catalog.GameInfo) []Result {
	tokens := gameTokens(game)
	if len(tokens) == 0 {
		return nil
	}

	var out []Result
	for _, root := range m.roots {
		entries, err := os.ReadDir(root.path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(root.path, entry.Name())
			if tokensMatchName(tokens, entry.Name()) {
				out = append(out, m.candidatesUnder(game, dir)...)
				continue
			}
			// Vendor directory: check one level deeper.
			subEntries, err := os.ReadDir(dir)
			if err != nil {
				continue
			}
			for _, sub := range subEntries {
				if sub.IsDir() && tokensMatchName(tokens, sub.Name()) {
					out = append(out, m.candidatesUnder(game, filepath.Join(dir, sub.Name()))...)
				}
			}
		}
	}
	return out
}

// candidatesUnder emits the matched directory when it looks like a save
// directory, plus any conventional save subfolder it contains.
func (m *Matcher) candidatesUnder(game *catalog.GameInfo, dir string) []Result {
	var out []Result
	emit := func(path string) {
		m.logger.Debug("common-root save candidate",
			logging.String("game", game.Name),
			logging.String("path", path))
		out = append(out, Result{
			Game:         game.Name,
			RuleID:       "common-roots-name-match",
			ResolvedPath: path,
			Exists:       true,
			Confidence:   commonRootsConfidence,
		})
	}

	if LooksLikeSaveDir(dir) {
		emit(dir)
	}
	for _, name := range saveSubfolders {
		sub := filepath.Join(dir, name)
		if info, err := os.Stat(sub); err == nil && info.IsDir() {
			emit(sub)
		}
	}
	return out
}

// LooksLikeSaveDir reports whether a directory plausibly holds save data: it
// contains a file with a save extension, or a subdirectory whose name
// mentions saves.
func LooksLikeSaveDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if strings.Contains(strings.ToLower(entry.Name()), "save") {
				return true
			}
			continue
		}
		if isSaveExtension(entry.Name()) {
			return true
		}
	}
	return false
}

func isSaveExtension(name string) bool {
	_, ok := saveExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// normalizeToken lowercases a name and strips spaces, colons, and
// underscores so punctuation differences do not break matching.
func normalizeToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', ':', '_':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func gameTokens(game *catalog.GameInfo) []string {
	var tokens []string
	if t := normalizeToken(game.Name); t != "" {
		tokens = append(tokens, t)
	}
	for _, alias := range game.Aliases {
		if t := normalizeToken(alias); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// tokensMatchName reports whether any game token and the normalized
// directory name contain one another.
func tokensMatchName(tokens []string, dirName string) bool {
	name := normalizeToken(dirName)
	if name == "" {
		return false
	}
	for _, token := range tokens {
		if strings.Contains(name, token) || strings.Contains(token, name) {
			return true
		}
	}
	return false
}

func tokensContain(tokens []string, want string) bool {
	for _, token := range tokens {
		if token == want {
			return true
		}
	}
	return false
}
