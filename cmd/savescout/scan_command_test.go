package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"savescout/internal/scan"
)

func TestScanDetectsSteamLibrary(t *testing.T) {
	env := setupCLITestEnv(t)

	steamRoot := filepath.Join(env.baseDir, "steam")
	gameDir := filepath.Join(steamRoot, "steamapps", "common", "Stardew Valley")
	if err := os.MkdirAll(gameDir, 0o755); err != nil {
		t.Fatalf("mkdir game dir: %v", err)
	}
	t.Setenv("SAVESCOUT_STEAM_ROOT", steamRoot)

	out, _, err := runCLI(t, []string{"scan", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	var result scan.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode scan output: %v\n%s", err, out)
	}

	var found bool
	for _, d := range result.Detected {
		if d.Info.Name == "Stardew Valley" && d.Source == scan.SourceSteam {
			found = true
			if d.InstallPath != gameDir {
				t.Fatalf("install path = %q, want %q", d.InstallPath, gameDir)
			}
		}
	}
	if !found {
		t.Fatalf("steam detection missing from: %+v", result.Detected)
	}
}

func TestScanTableOutputWhenNothingFound(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"scan", "--steam=false", "--common-dirs=false"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "No installed games detected")
}

func TestScanHelpNotesConfigOnlySources(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"scan", "--help"}, env.configPath)
	if err != nil {
		t.Fatalf("scan --help: %v", err)
	}
	requireContains(t, out, "search_registry")
	requireContains(t, out, "search_processes")
}

func TestSaveUnitsEmptyScan(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"save-units"}, env.configPath)
	if err != nil {
		t.Fatalf("save-units: %v", err)
	}
	requireContains(t, out, "No save data found")
}

func TestSaveUnitsUnknownGame(t *testing.T) {
	env := setupCLITestEnv(t)
	src := writeImportFixture(t, env.baseDir)

	if _, _, err := runCLI(t, []string{"catalog", "import", src}, env.configPath); err != nil {
		t.Fatalf("catalog import: %v", err)
	}

	_, _, err := runCLI(t, []string{"save-units", "No Such Game"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for game missing from catalog")
	}
	requireContains(t, err.Error(), "not found in catalog")
}
