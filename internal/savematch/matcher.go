package savematch

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"savescout/internal/catalog"
	"savescout/internal/logging"
	"savescout/internal/pathvars"
)

// missingPathPenalty halves a rule's confidence when the resolved path does
// not exist on disk.
const missingPathPenalty = 0.5

// Result is one candidate save location for a game.
type Result struct {
	Game         string  `json:"game"`
	RuleID       string  `json:"rule_id"`
	ResolvedPath string  `json:"resolved_path"`
	Exists       bool    `json:"exists"`
	Confidence   float64 `json:"confidence"`
}

type searchRoot struct {
	name string
	path string
}

// Matcher resolves catalog save rules and applies filesystem heuristics for
// one host environment.
type Matcher struct {
	env        *pathvars.Env
	backupRoot string
	roots      []searchRoot
	logger     *slog.Logger
}

// NewMatcher builds a matcher over the given environment. backupRoot is the
// configured backup directory and supplies the <root> and <base> template
// context; rules referencing them are dropped when it is empty. The
// common-roots heuristic searches the user's Documents and Saved Games
// folders plus the roaming and local application-data directories, skipping
// any that cannot be resolved.
func NewMatcher(env *pathvars.Env, backupRoot string, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = logging.NewNop()
	}

	var roots []searchRoot
	if home, err := env.Home(); err == nil && home != "" {
		roots = append(roots,
			searchRoot{name: "documents", path: filepath.Join(home, "Documents")},
			searchRoot{name: "saved_games", path: filepath.Join(home, "Saved Games")},
		)
	}
	if dir, ok := env.LookupEnv("LOCALAPPDATA"); ok && dir != "" {
		roots = append(roots, searchRoot{name: "local_appdata", path: dir})
	}
	if dir, ok := env.LookupEnv("APPDATA"); ok && dir != "" {
		roots = append(roots, searchRoot{name: "appdata", path: dir})
	}

	return &Matcher{env: env, backupRoot: backupRoot, roots: roots, logger: logger}
}

// Match returns every candidate save location for the game. Catalog rules
// come first, then install-relative heuristics, then common-roots
// heuristics; duplicate paths are left in place for the synthesizer to
// collapse.
func (m *Matcher) Match(game *catalog.GameInfo, installPath string) []Result {
	if game == nil {
		return nil
	}
	var out []Result
	out = append(out, m.matchRules(game)...)
	out = append(out, m.matchInstallRelative(game, installPath)...)
	out = append(out, m.matchCommonRoots(game)...)
	return out
}

func (m *Matcher) matchRules(game *catalog.GameInfo) []Result {
	var out []Result
	for _, rule := range game.SaveRules {
		if !ruleAppliesTo(rule, m.env.Platform()) {
			continue
		}

		resolved, err := pathvars.Resolve(rule.PathTemplate, m.env, pathvars.Vars{
			Game: game.Name,
			Root: m.backupRoot,
		})
		if err != nil {
			m.logger.Debug("save rule skipped",
				logging.String("game", game.Name),
				logging.String("rule", rule.ID),
				logging.Error(err))
			continue
		}

		exists := pathExists(resolved)
		confidence := rule.Confidence
		if !exists {
			confidence *= missingPathPenalty
		}
		out = append(out, Result{
			Game:         game.Name,
			RuleID:       rule.ID,
			ResolvedPath: filepath.Clean(resolved),
			Exists:       exists,
			Confidence:   confidence,
		})
	}
	return out
}

func ruleAppliesTo(rule catalog.SaveRule, platform string) bool {
	if len(rule.Platforms) == 0 {
		return true
	}
	for _, p := range rule.Platforms {
		if strings.EqualFold(p, platform) {
			return true
		}
	}
	return false
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
