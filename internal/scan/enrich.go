package scan

import (
	"strings"
	"unicode"

	"savescout/internal/catalog"
)

// Enrich replaces each detection's bare Info with the full catalog entry
// when one can be matched: exact name or alias first, then normalized fuzzy
// containment, then an exact lookup of the detection's first alias.
// InstallPath and Source are never touched. Unmatched detections pass
// through with their scanner-provided name.
func Enrich(detected []DetectedGame, cat *catalog.Catalog) []DetectedGame {
	if cat == nil {
		return detected
	}
	for i := range detected {
		d := &detected[i]
		if hit := cat.FindExact(d.Info.Name); hit != nil {
			d.Info = *hit
			continue
		}
		if hit := findFuzzy(cat, d.Info.Name); hit != nil {
			d.Info = *hit
			continue
		}
		if len(d.Info.Aliases) > 0 {
			if hit := cat.FindExact(d.Info.Aliases[0]); hit != nil {
				d.Info = *hit
			}
		}
	}
	return detected
}

// findFuzzy matches a scanner-provided name against the catalog after
// stripping everything but letters and digits, so directory names like
// "BlackMythWukong" find "Black Myth: Wukong". Normalized equality returns
// immediately; containment is scored by length ratio and the best candidate
// is kept, with name hits weighted above alias hits.
func findFuzzy(cat *catalog.Catalog, name string) *catalog.GameInfo {
	query := normalizeKey(name)
	if query == "" {
		return nil
	}

	var best *catalog.GameInfo
	var bestScore float64
	for i := range cat.Games {
		g := &cat.Games[i]

		gameKey := normalizeKey(g.Name)
		if gameKey != "" {
			if gameKey == query {
				return g
			}
			if score, ok := containmentScore(gameKey, query, 0.80, 0.20); ok && score > bestScore {
				best, bestScore = g, score
			}
		}

		for _, alias := range g.Aliases {
			aliasKey := normalizeKey(alias)
			if aliasKey == "" {
				continue
			}
			if aliasKey == query {
				return g
			}
			if score, ok := containmentScore(aliasKey, query, 0.75, 0.25); ok && score > bestScore {
				best, bestScore = g, score
			}
		}
	}
	return best
}

// containmentScore scores mutual-containment matches as base plus weight
// scaled by how close the two lengths are.
func containmentScore(a, b string, base, weight float64) (float64, bool) {
	if !strings.Contains(a, b) && !strings.Contains(b, a) {
		return 0, false
	}
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	return base + weight*float64(shorter)/float64(longer), true
}

// normalizeKey keeps only letters and digits, lowercased. Unicode-aware so
// localized directory names still compare.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
