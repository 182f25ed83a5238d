package scan

import (
	"testing"

	"savescout/internal/catalog"
)

func enrichCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Version: "test",
		Games: []catalog.GameInfo{
			{
				Name:       "Stardew Valley",
				Aliases:    []string{"SV"},
				ExternalID: "stardew-valley",
				SaveRules: []catalog.SaveRule{
					{ID: "sdv", PathTemplate: "<winAppData>/StardewValley/Saves", Platforms: []string{"windows"}, Confidence: 0.95},
				},
			},
			{
				Name:       "Black Myth: Wukong",
				Aliases:    []string{"Black Myth Wukong"},
				ExternalID: "black-myth-wukong",
				SaveRules: []catalog.SaveRule{
					{ID: "bmw", PathTemplate: "<root>/b1/Saved/SaveGames", Platforms: []string{"windows"}, Confidence: 0.90},
				},
			},
		},
	}
}

func TestEnrichExactMatchReplacesInfo(t *testing.T) {
	detected := []DetectedGame{
		{
			Info:        catalog.GameInfo{Name: "stardew valley"},
			InstallPath: `D:\Games\Stardew Valley`,
			Source:      SourceSteam,
		},
	}

	out := Enrich(detected, enrichCatalog())
	d := out[0]
	if d.Info.ExternalID != "stardew-valley" || len(d.Info.SaveRules) != 1 {
		t.Fatalf("info not replaced by catalog entry: %+v", d.Info)
	}
	if d.InstallPath != `D:\Games\Stardew Valley` || d.Source != SourceSteam {
		t.Fatal("install path or source lost during enrichment")
	}
}

func TestEnrichFuzzyNormalizedMatch(t *testing.T) {
	detected := []DetectedGame{
		{Info: catalog.GameInfo{Name: "BlackMythWukong"}, Source: SourceCommonDir},
	}

	out := Enrich(detected, enrichCatalog())
	if out[0].Info.ExternalID != "black-myth-wukong" {
		t.Fatalf("fuzzy match failed: %+v", out[0].Info)
	}
}

func TestEnrichAliasExactMatch(t *testing.T) {
	detected := []DetectedGame{
		{Info: catalog.GameInfo{Name: "sv"}, Source: SourceManual},
	}

	out := Enrich(detected, enrichCatalog())
	if out[0].Info.Name != "Stardew Valley" {
		t.Fatalf("alias lookup failed: %+v", out[0].Info)
	}
}

func TestFindFuzzyScoresEveryAlias(t *testing.T) {
	// The winning entry hides its strong alias behind a weaker one; every
	// alias must be scored or the runner-up's name match wins instead.
	cat := &catalog.Catalog{
		Version: "test",
		Games: []catalog.GameInfo{
			{
				Name:       "Unrelated Thing One",
				Aliases:    []string{"Racer", "SuperSpeedRacerXtra"},
				ExternalID: "winner",
			},
			{
				Name:       "SpeedRacer",
				ExternalID: "runner-up",
			},
		},
	}

	hit := findFuzzy(cat, "SuperSpeedRacerX")
	if hit == nil {
		t.Fatal("findFuzzy returned nothing")
	}
	if hit.ExternalID != "winner" {
		t.Fatalf("matched %q, want the entry whose second alias scores highest", hit.ExternalID)
	}
}

func TestEnrichUnmatchedPassesThrough(t *testing.T) {
	detected := []DetectedGame{
		{Info: catalog.GameInfo{Name: "Obscure Indie Game 9000"}, Source: SourceCommonDir},
	}

	out := Enrich(detected, enrichCatalog())
	if out[0].Info.Name != "Obscure Indie Game 9000" || len(out[0].Info.SaveRules) != 0 {
		t.Fatalf("unmatched detection altered: %+v", out[0].Info)
	}
}

func TestEnrichNilCatalog(t *testing.T) {
	detected := []DetectedGame{{Info: catalog.GameInfo{Name: "Hades"}}}
	out := Enrich(detected, nil)
	if out[0].Info.Name != "Hades" {
		t.Fatal("nil catalog should be a no-op")
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Black Myth: Wukong", "blackmythwukong"},
		{"S.T.A.L.K.E.R. 2", "stalker2"},
		{"星露谷物语", "星露谷物语"},
		{"!!!", ""},
	}
	for _, tc := range tests {
		if got := normalizeKey(tc.in); got != tc.want {
			t.Errorf("normalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
