package scan

import (
	"testing"

	"savescout/internal/catalog"
)

func TestDedupeByNormalizedPath(t *testing.T) {
	items := []DetectedGame{
		{Info: catalog.GameInfo{Name: "Hades"}, InstallPath: `C:\Games\Hades`, Source: SourceSteam},
		{Info: catalog.GameInfo{Name: "Hades"}, InstallPath: `c:/games/hades/`, Source: SourceCommonDir},
		{Info: catalog.GameInfo{Name: "Celeste"}, InstallPath: `C:\Games\Celeste`, Source: SourceSteam},
	}

	out := Dedupe(items)
	if len(out) != 2 {
		t.Fatalf("got %d items, want 2", len(out))
	}
	// First occurrence wins, keeping the steam attribution.
	if out[0].Source != SourceSteam || out[0].Info.Name != "Hades" {
		t.Fatalf("first item = %+v, want the original steam detection", out[0])
	}
}

func TestDedupeWithoutPathFallsBackToNameAndSource(t *testing.T) {
	items := []DetectedGame{
		{Info: catalog.GameInfo{Name: "Hades"}, Source: SourceManual},
		{Info: catalog.GameInfo{Name: "hades"}, Source: SourceManual},
		{Info: catalog.GameInfo{Name: "Hades"}, Source: SourceProcess},
	}

	out := Dedupe(items)
	if len(out) != 2 {
		t.Fatalf("got %d items, want 2 (same name, different source kept)", len(out))
	}
}

func TestNormalizePathKey(t *testing.T) {
	a := normalizePathKey(`D:\SteamLibrary\steamapps\common\Hades\`)
	b := normalizePathKey(`d:/steamlibrary/steamapps/common/hades`)
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
}
