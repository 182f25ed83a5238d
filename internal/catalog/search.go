package catalog

import (
	"sort"
	"strings"
)

const defaultSearchLimit = 20

// SearchOptions controls ranked catalog queries.
type SearchOptions struct {
	// Fuzzy enables substring matching when no exact hit exists.
	Fuzzy bool `json:"fuzzy"`
	// Platform, when set, excludes entries with no save rule declaring it.
	Platform string `json:"platform,omitempty"`
	// Limit caps the number of results; defaults to 20.
	Limit int `json:"limit,omitempty"`
}

// QueryItem is one ranked search hit. MatchedBy is "name", "alias", or
// "fuzzy" so callers can annotate how the hit was found.
type QueryItem struct {
	Info      GameInfo `json:"info"`
	Score     float64  `json:"score"`
	MatchedBy string   `json:"matched_by"`
}

// Search ranks catalog entries against a query. Exact name matches score
// 1.0 and exact alias matches 0.95; with fuzzy enabled, substring hits on
// the name score 0.75 + 0.25*min(1, |query|/|name|) and substring hits on an
// alias 0.70 + 0.30*min(1, |query|/|alias|). Results are sorted by
// descending score and truncated to the limit.
func (c *Catalog) Search(query string, opts SearchOptions) []QueryItem {
	q := foldKey(query)
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var items []QueryItem
	for i := range c.Games {
		g := &c.Games[i]
		if opts.Platform != "" && !g.HasPlatform(opts.Platform) {
			continue
		}

		if foldKey(g.Name) == q {
			items = append(items, QueryItem{Info: *g, Score: 1.0, MatchedBy: "name"})
			continue
		}
		if aliasEquals(g.Aliases, q) {
			items = append(items, QueryItem{Info: *g, Score: 0.95, MatchedBy: "alias"})
			continue
		}
		if !opts.Fuzzy || q == "" {
			continue
		}

		if strings.Contains(foldKey(g.Name), q) {
			score := 0.75 + 0.25*lengthRatio(len(q), len(g.Name))
			items = append(items, QueryItem{Info: *g, Score: score, MatchedBy: "fuzzy"})
			continue
		}
		for _, alias := range g.Aliases {
			if strings.Contains(foldKey(alias), q) {
				score := 0.70 + 0.30*lengthRatio(len(q), len(alias))
				items = append(items, QueryItem{Info: *g, Score: score, MatchedBy: "fuzzy"})
				break
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func aliasEquals(aliases []string, foldedQuery string) bool {
	for _, alias := range aliases {
		if foldKey(alias) == foldedQuery {
			return true
		}
	}
	return false
}

func lengthRatio(query, target int) float64 {
	if target < 1 {
		target = 1
	}
	ratio := float64(query) / float64(target)
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}
