package saveunit

import (
	"os"
	"path/filepath"
	"testing"

	"savescout/internal/savematch"
)

func TestSynthesizeDropsMissingPaths(t *testing.T) {
	matches := []savematch.Result{
		{Game: "Hades", RuleID: "r1", ResolvedPath: "/nonexistent/saves", Exists: false, Confidence: 0.4},
	}
	if units := Synthesize(matches, "dev-1"); len(units) != 0 {
		t.Fatalf("missing path produced %d units", len(units))
	}
}

func TestSynthesizeCollapsesDuplicatePaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "slot0.sav"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	matches := []savematch.Result{
		{Game: "Hades", RuleID: "catalog", ResolvedPath: dir, Exists: true, Confidence: 0.7},
		{Game: "Hades", RuleID: "common-roots-name-match", ResolvedPath: dir, Exists: true, Confidence: 0.9},
	}

	units := Synthesize(matches, "dev-1")
	if len(units) != 1 {
		t.Fatalf("duplicate path produced %d units, want 1", len(units))
	}
	u := units[0]
	if u.Type != TypeFolder {
		t.Errorf("type = %q, want Folder", u.Type)
	}
	// Highest confidence wins, plus the plausibility bonus.
	if u.Confidence != 1.0 {
		t.Errorf("confidence = %.2f, want 1.00 (0.9 + 0.1 bonus)", u.Confidence)
	}
	if u.Paths["dev-1"] != dir {
		t.Errorf("paths = %v, want device keyed to %q", u.Paths, dir)
	}
	if u.DeleteBeforeApply {
		t.Error("DeleteBeforeApply should default to false")
	}
}

func TestSynthesizeConfidenceCap(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.sav"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	matches := []savematch.Result{
		{Game: "G", RuleID: "r", ResolvedPath: dir, Exists: true, Confidence: 0.99},
	}
	units := Synthesize(matches, "dev-1")
	if len(units) != 1 || units[0].Confidence != 1.0 {
		t.Fatalf("confidence = %+v, want capped at 1.0", units)
	}
}

func TestSynthesizeFileUnit(t *testing.T) {
	file := filepath.Join(t.TempDir(), "profile.dat")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	matches := []savematch.Result{
		{Game: "G", RuleID: "r", ResolvedPath: file, Exists: true, Confidence: 0.6},
	}
	units := Synthesize(matches, "dev-1")
	if len(units) != 1 {
		t.Fatalf("got %d units, want 1", len(units))
	}
	if units[0].Type != TypeFile {
		t.Errorf("type = %q, want File", units[0].Type)
	}
	// No bonus for files.
	if units[0].Confidence != 0.6 {
		t.Errorf("confidence = %.2f, want 0.60", units[0].Confidence)
	}
}

func TestSynthesizeOrdering(t *testing.T) {
	low := t.TempDir()
	high := t.TempDir()
	if err := os.WriteFile(filepath.Join(high, "a.sav"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	matches := []savematch.Result{
		{Game: "A", RuleID: "r1", ResolvedPath: low, Exists: true, Confidence: 0.5},
		{Game: "B", RuleID: "r2", ResolvedPath: high, Exists: true, Confidence: 0.9},
	}
	units := Synthesize(matches, "dev-1")
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2", len(units))
	}
	if units[0].Game != "B" {
		t.Fatalf("first unit = %q, want highest confidence first", units[0].Game)
	}
}
