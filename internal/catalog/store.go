package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrStoreNotFound marks a missing catalog store file; this is a hard error
// because a scan without a catalog cannot enrich anything.
var ErrStoreNotFound = errors.New("catalog store not found")

// importedRuleConfidence is the fixed prior assigned to save rules
// synthesized from path-suggestive columns during import.
const importedRuleConfidence = 0.6

// LoadStore reads the bundled SQLite catalog store. Synthetic save rules
// extracted from path-like columns are tagged for the given platform.
func LoadStore(path, platform string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("stat catalog store: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	defer db.Close()

	games, err := readGameRows(db, platform)
	if err != nil {
		return nil, fmt.Errorf("read catalog store %s: %w", path, err)
	}
	return &Catalog{Version: "store", Games: games}, nil
}

// readGameRows heuristically extracts game entries from an arbitrary SQLite
// database: the first table exposing a name-like column is treated as the
// game table, alias-like and localized-name columns feed aliases, and
// path-suggestive columns become synthetic save rules.
func readGameRows(db *sql.DB, platform string) ([]GameInfo, error) {
	table, err := pickGameTable(db)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT * FROM " + quoteIdent(table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	nameIdx := indexOfColumn(columns, isNameColumn)
	if nameIdx < 0 {
		return nil, fmt.Errorf("table %s lost its name column", table)
	}
	aliasIdx := indexOfColumn(columns, isAliasColumn)
	localizedIdx := indexOfColumn(columns, isLocalizedNameColumn)
	externalIdx := indexOfColumn(columns, isExternalIDColumn)

	var pathIdxs []int
	for i, col := range columns {
		if i != nameIdx && isPathColumn(col) {
			pathIdxs = append(pathIdxs, i)
		}
	}

	var games []GameInfo
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		name := strings.TrimSpace(stringValue(values[nameIdx]))
		if name == "" {
			continue
		}

		game := GameInfo{Name: name}
		if aliasIdx >= 0 {
			game.Aliases = splitAliases(stringValue(values[aliasIdx]))
		}
		if localizedIdx >= 0 {
			if localized := strings.TrimSpace(stringValue(values[localizedIdx])); localized != "" && !containsFold(game.Aliases, localized) {
				game.Aliases = append(game.Aliases, localized)
			}
		}
		if externalIdx >= 0 {
			game.ExternalID = strings.TrimSpace(stringValue(values[externalIdx]))
		}

		for _, idx := range pathIdxs {
			template := strings.TrimSpace(stringValue(values[idx]))
			if template == "" {
				continue
			}
			game.SaveRules = append(game.SaveRules, SaveRule{
				ID:           strings.ReplaceAll(name, " ", "_") + "-" + columns[idx],
				Description:  fmt.Sprintf("imported from %s.%s", table, columns[idx]),
				PathTemplate: normalizeTemplate(template),
				Platforms:    []string{platform},
				Confidence:   importedRuleConfidence,
			})
		}

		games = append(games, game)
	}
	return games, rows.Err()
}

// pickGameTable returns the first table that exposes a name-like column.
func pickGameTable(db *sql.DB) (string, error) {
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name")
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	for _, table := range tables {
		columns, err := tableColumns(db, table)
		if err != nil {
			return "", err
		}
		for _, col := range columns {
			if isNameColumn(col) {
				return table, nil
			}
		}
	}
	return "", errors.New("no table with a name-like column")
}

func tableColumns(db *sql.DB, table string) ([]string, error) {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func indexOfColumn(columns []string, match func(string) bool) int {
	for i, col := range columns {
		if match(col) {
			return i
		}
	}
	return -1
}

func isNameColumn(col string) bool {
	lc := strings.ToLower(col)
	return lc == "name" || lc == "title"
}

func isAliasColumn(col string) bool {
	lc := strings.ToLower(col)
	return lc == "aliases" || lc == "alias" || lc == "aka"
}

// isLocalizedNameColumn recognizes localized display-name columns so
// translations end up searchable as aliases.
func isLocalizedNameColumn(col string) bool {
	lc := strings.ToLower(col)
	return lc == "zh_cn" || lc == "zh-cn" || lc == "zh" ||
		strings.Contains(lc, "name_zh") || strings.Contains(lc, "chinese") ||
		strings.Contains(lc, "localized")
}

func isExternalIDColumn(col string) bool {
	lc := strings.ToLower(col)
	return lc == "external_id" || lc == "pcgw_id" || lc == "slug" || lc == "wiki_id" || lc == "pcgw"
}

func isPathColumn(col string) bool {
	lc := strings.ToLower(col)
	return strings.Contains(lc, "path") || strings.Contains(lc, "save") ||
		strings.Contains(lc, "location") || strings.Contains(lc, "documents")
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return ""
	}
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if equalFold(item, value) {
			return true
		}
	}
	return false
}

// splitAliases splits an alias cell on commas or pipes, dropping empties.
func splitAliases(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// normalizeTemplate rewrites common literal Windows path forms into the
// template variables the resolver understands. Deliberately shallow: unknown
// forms pass through untouched.
func normalizeTemplate(p string) string {
	s := strings.TrimSpace(p)
	s = strings.ReplaceAll(s, "%USERPROFILE%", "<home>")
	s = strings.ReplaceAll(s, "%APPDATA%", "<winAppData>")
	s = strings.ReplaceAll(s, "%LOCALAPPDATA%", "<winLocalAppData>")
	s = strings.ReplaceAll(s, "%USERNAME%", "<osUserName>")
	// A relative Documents path is an abbreviation for the user profile.
	if strings.HasPrefix(s, "Documents/") || strings.HasPrefix(s, "Documents\\") {
		s = "<home>/" + s
	}
	return s
}
