package catalog

// GameInfo is the canonical footprint of one known game. Values are
// immutable once constructed; comparisons are case-insensitive and include
// aliases.
type GameInfo struct {
	Name         string        `json:"name"`
	Aliases      []string      `json:"aliases"`
	ExternalID   string        `json:"external_id,omitempty"`
	InstallRules []InstallRule `json:"install_rules"`
	SaveRules    []SaveRule    `json:"save_rules"`
}

// InstallRule describes how a game's install path may be located. Reserved
// for future install-path lookups; carried through load and import so the
// wire format stays complete.
type InstallRule struct {
	ID           string   `json:"id"`
	Description  string   `json:"description,omitempty"`
	Patterns     []string `json:"patterns"`
	RegistryKeys []string `json:"registry_keys,omitempty"`
}

// SaveRule is one templated, platform-tagged, confidence-weighted
// description of a plausible save location. Confidence is the
// author-assigned prior in [0,1] that the template is correct.
type SaveRule struct {
	ID           string   `json:"id"`
	Description  string   `json:"description,omitempty"`
	PathTemplate string   `json:"path_template"`
	Requires     []string `json:"requires,omitempty"`
	Platforms    []string `json:"platforms"`
	Confidence   float64  `json:"confidence"`
}

// Catalog is a versioned collection of game entries, read-only for the
// duration of one scan.
type Catalog struct {
	Version string     `json:"version"`
	Games   []GameInfo `json:"games"`
}

// Meta summarizes a catalog for status display.
type Meta struct {
	Version string `json:"version"`
	Count   int    `json:"count"`
}

// Meta returns the catalog's version and entry count.
func (c *Catalog) Meta() Meta {
	return Meta{Version: c.Version, Count: len(c.Games)}
}

// HasPlatform reports whether any save rule of the entry declares the given
// platform tag.
func (g *GameInfo) HasPlatform(platform string) bool {
	for _, r := range g.SaveRules {
		for _, p := range r.Platforms {
			if equalFold(p, platform) {
				return true
			}
		}
	}
	return false
}
