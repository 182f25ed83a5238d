package catalog

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func createTestStore(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE games (
			id INTEGER PRIMARY KEY,
			name TEXT,
			aliases TEXT,
			zh_cn TEXT,
			pcgw_id TEXT,
			save_path TEXT
		)`,
		`INSERT INTO games (name, aliases, zh_cn, pcgw_id, save_path) VALUES
			('Stardew Valley', 'SV,SDV', '星露谷物语', 'stardew-valley', '%APPDATA%/StardewValley/Saves'),
			('Hades', '', NULL, 'hades', '%USERPROFILE%/Documents/Saved Games/Hades'),
			('', 'ghost', NULL, NULL, NULL),
			('No Rules Game', NULL, NULL, NULL, '')`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("prepare test store: %v", err)
		}
	}
	return path
}

func TestLoadStore(t *testing.T) {
	path := createTestStore(t)

	c, err := LoadStore(path, "windows")
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if len(c.Games) != 3 {
		t.Fatalf("got %d games, want 3 (nameless row skipped)", len(c.Games))
	}

	sdv := c.FindExact("Stardew Valley")
	if sdv == nil {
		t.Fatal("Stardew Valley missing after load")
	}
	if len(sdv.Aliases) != 3 {
		t.Fatalf("aliases = %v, want SV, SDV plus localized name", sdv.Aliases)
	}
	if sdv.ExternalID != "stardew-valley" {
		t.Errorf("external ID = %q, want stardew-valley", sdv.ExternalID)
	}
	if len(sdv.SaveRules) != 1 {
		t.Fatalf("save rules = %d, want 1", len(sdv.SaveRules))
	}
	rule := sdv.SaveRules[0]
	if rule.PathTemplate != "<winAppData>/StardewValley/Saves" {
		t.Errorf("template = %q, want <winAppData> form", rule.PathTemplate)
	}
	if rule.Confidence != importedRuleConfidence {
		t.Errorf("confidence = %.2f, want %.2f", rule.Confidence, importedRuleConfidence)
	}
	if len(rule.Platforms) != 1 || rule.Platforms[0] != "windows" {
		t.Errorf("platforms = %v, want [windows]", rule.Platforms)
	}

	hades := c.FindExact("Hades")
	if hades == nil || len(hades.SaveRules) != 1 {
		t.Fatal("Hades rule missing after load")
	}
	if got := hades.SaveRules[0].PathTemplate; got != "<home>/Documents/Saved Games/Hades" {
		t.Errorf("Hades template = %q, want <home> form", got)
	}

	empty := c.FindExact("No Rules Game")
	if empty == nil {
		t.Fatal("No Rules Game missing after load")
	}
	if len(empty.SaveRules) != 0 {
		t.Errorf("empty save_path produced %d rules", len(empty.SaveRules))
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	_, err := LoadStore(filepath.Join(t.TempDir(), "absent.db"), "windows")
	if !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("err = %v, want ErrStoreNotFound", err)
	}
}

func TestNormalizeTemplate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "userprofile documents",
			in:   "%USERPROFILE%/Documents/My Games/Skyrim",
			want: "<home>/Documents/My Games/Skyrim",
		},
		{
			name: "appdata",
			in:   "%APPDATA%/StardewValley/Saves",
			want: "<winAppData>/StardewValley/Saves",
		},
		{
			name: "bare documents gains home prefix",
			in:   "Documents/Saved Games/Hades",
			want: "<home>/Documents/Saved Games/Hades",
		},
		{
			name: "already templated untouched",
			in:   "<winLocalAppData>/Hades",
			want: "<winLocalAppData>/Hades",
		},
		{
			name: "unknown form passes through",
			in:   "D:/Games/Saves",
			want: "D:/Games/Saves",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeTemplate(tc.in); got != tc.want {
				t.Fatalf("normalizeTemplate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplitAliases(t *testing.T) {
	got := splitAliases(" SV , SDV || Stardew ")
	want := []string{"SV", "SDV", "Stardew"}
	if len(got) != len(want) {
		t.Fatalf("splitAliases = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitAliases[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
