package savematch

import (
	"os"
	"path/filepath"

	"savescout/internal/catalog"
	"savescout/internal/logging"
)

// installRelativeConfidence applies to install-relative hits: the layout is
// specific enough that a present directory is near-certain.
const installRelativeConfidence = 0.99

// installRelativeRule pins a save layout under the game's own install
// directory for games known to keep saves there.
type installRelativeRule struct {
	// token is the normalized game name the rule applies to.
	token   string
	ruleID  string
	relPath string
}

var installRelativeRules = []installRelativeRule{
	{token: "blackmythwukong", ruleID: "install-relative-b1-savegames", relPath: "b1/Saved/SaveGames"},
}

// matchInstallRelative probes pinned install-relative layouts. When the
// layout directory holds per-profile subdirectories, the one containing a
// save file is preferred over the layout root.
func (m *Matcher) matchInstallRelative(game *catalog.GameInfo, installPath string) []Result {
	if installPath == "" {
		return nil
	}

	tokens := gameTokens(game)
	var out []Result
	for _, rule := range installRelativeRules {
		if !tokensContain(tokens, rule.token) {
			continue
		}

		dir := filepath.Join(installPath, filepath.FromSlash(rule.relPath))
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		path := dir
		if profile := profileSubdirWithSaves(dir); profile != "" {
			path = profile
		}
		m.logger.Debug("install-relative save layout found",
			logging.String("game", game.Name),
			logging.String("path", path))
		out = append(out, Result{
			Game:         game.Name,
			RuleID:       rule.ruleID,
			ResolvedPath: path,
			Exists:       true,
			Confidence:   installRelativeConfidence,
		})
	}
	return out
}

// profileSubdirWithSaves returns the first subdirectory containing a
// save-extension file, or "" when none qualifies.
func profileSubdirWithSaves(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sub := filepath.Join(dir, entry.Name())
		if dirHasSaveFile(sub) {
			return sub
		}
	}
	return ""
}

func dirHasSaveFile(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && isSaveExtension(entry.Name()) {
			return true
		}
	}
	return false
}
