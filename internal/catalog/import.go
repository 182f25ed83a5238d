package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ImportJSON converts an external JSON export into the catalog format and
// writes it to the cache. A document already shaped like {version, games}
// is taken verbatim; anything else goes through a heuristic walk that
// collects every object carrying a name-like field.
func ImportJSON(srcPath, cachePath, platform string) (Meta, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return Meta{}, fmt.Errorf("read import source: %w", err)
	}

	c, err := decodeImport(data, platform)
	if err != nil {
		return Meta{}, fmt.Errorf("import %s: %w", srcPath, err)
	}
	if err := WriteCache(cachePath, c); err != nil {
		return Meta{}, err
	}
	return c.Meta(), nil
}

// ImportSQLite converts a foreign SQLite database into the catalog format
// and writes it to the cache, using the same heuristic table detection as
// the bundled store loader.
func ImportSQLite(srcPath, cachePath, platform string) (Meta, error) {
	db, err := sql.Open("sqlite", srcPath)
	if err != nil {
		return Meta{}, fmt.Errorf("open import source: %w", err)
	}
	defer db.Close()

	games, err := readGameRows(db, platform)
	if err != nil {
		return Meta{}, fmt.Errorf("import %s: %w", srcPath, err)
	}
	c := &Catalog{Version: "imported", Games: games}
	if err := WriteCache(cachePath, c); err != nil {
		return Meta{}, err
	}
	return c.Meta(), nil
}

func decodeImport(data []byte, platform string) (*Catalog, error) {
	var strict Catalog
	if err := json.Unmarshal(data, &strict); err == nil && len(strict.Games) > 0 {
		if strict.Version == "" {
			strict.Version = "imported"
		}
		return &strict, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	var games []GameInfo
	collectGames(doc, platform, &games)
	if len(games) == 0 {
		return nil, fmt.Errorf("no game-like records found")
	}
	return &Catalog{Version: "imported", Games: games}, nil
}

// collectGames walks arbitrary JSON and harvests every object with a
// name-like key. Containers are recursed into even when a game is found, so
// nested exports yield all their records.
func collectGames(node any, platform string, out *[]GameInfo) {
	switch v := node.(type) {
	case map[string]any:
		if g, ok := gameFromObject(v, platform); ok {
			*out = append(*out, g)
		}
		for _, child := range v {
			collectGames(child, platform, out)
		}
	case []any:
		for _, child := range v {
			collectGames(child, platform, out)
		}
	}
}

func gameFromObject(obj map[string]any, platform string) (GameInfo, bool) {
	name := firstStringField(obj, isNameColumn)
	if name == "" {
		return GameInfo{}, false
	}

	game := GameInfo{Name: name}
	var localized []string
	for key, value := range obj {
		switch {
		case isAliasColumn(key):
			switch aliases := value.(type) {
			case string:
				game.Aliases = append(game.Aliases, splitAliases(aliases)...)
			case []any:
				for _, a := range aliases {
					if s, ok := a.(string); ok && strings.TrimSpace(s) != "" {
						game.Aliases = append(game.Aliases, strings.TrimSpace(s))
					}
				}
			}
		case isLocalizedNameColumn(key):
			if s, ok := value.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					localized = append(localized, s)
				}
			}
		case isExternalIDColumn(key):
			if s, ok := value.(string); ok {
				game.ExternalID = strings.TrimSpace(s)
			}
		case isPathColumn(key) && !isNameColumn(key):
			if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
				game.SaveRules = append(game.SaveRules, SaveRule{
					ID:           strings.ReplaceAll(name, " ", "_") + "-" + key,
					Description:  "imported from field " + key,
					PathTemplate: normalizeTemplate(s),
					Platforms:    []string{platform},
					Confidence:   importedRuleConfidence,
				})
			}
		}
	}
	// Localized display names become aliases after the alias fields so a
	// translation already listed there is not duplicated.
	for _, l := range localized {
		if !containsFold(game.Aliases, l) {
			game.Aliases = append(game.Aliases, l)
		}
	}
	return game, true
}

func firstStringField(obj map[string]any, match func(string) bool) string {
	for key, value := range obj {
		if !match(key) {
			continue
		}
		if s, ok := value.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}
