package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldKey lowercases a name with Unicode case folding and trims surrounding
// whitespace, producing the comparison key used for exact matches. Casers
// are stateful, so one is built per call rather than shared.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func equalFold(a, b string) bool {
	return foldKey(a) == foldKey(b)
}

// FindExact locates an entry by canonical name first, then by any alias.
// Matching is case-insensitive and trimmed; the first hit wins since the
// catalog is not guaranteed alias-unique. Returns nil when nothing matches.
func (c *Catalog) FindExact(name string) *GameInfo {
	key := foldKey(name)
	if key == "" {
		return nil
	}
	for i := range c.Games {
		g := &c.Games[i]
		if foldKey(g.Name) == key {
			return g
		}
		for _, alias := range g.Aliases {
			if foldKey(alias) == key {
				return g
			}
		}
	}
	return nil
}
