package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"savescout/internal/pathvars"
	"savescout/internal/progress"
	"savescout/internal/savematch"
)

func pipelineFixture(t *testing.T) (*Pipeline, *Machine, string) {
	t.Helper()

	home := t.TempDir()
	appdata := filepath.Join(home, "AppData", "Roaming")
	for _, dir := range []string{"Documents", "Saved Games"} {
		if err := os.MkdirAll(filepath.Join(home, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(appdata, 0o755); err != nil {
		t.Fatal(err)
	}

	env := pathvars.NewStaticEnv(pathvars.PlatformWindows, map[string]string{
		"USERPROFILE": home,
		"USERNAME":    "tester",
		"APPDATA":     appdata,
	})

	m := &Machine{
		Platform:     "windows",
		Home:         home,
		ProgramData:  t.TempDir(),
		ProgramFiles: []string{t.TempDir(), t.TempDir()},
	}

	p := &Pipeline{
		Machine: m,
		Catalog: enrichCatalog(),
		Matcher: savematch.NewMatcher(env, t.TempDir(), nil),
	}
	return p, m, home
}

func TestPipelineRun(t *testing.T) {
	p, m, home := pipelineFixture(t)

	root := t.TempDir()
	m.SteamRoot = root
	mkGameDir(t, root, "steamapps", "common", "Stardew Valley")
	mkGameDir(t, home, "AppData", "Roaming", "StardewValley", "Saves")

	var events []progress.Event
	p.Reporter = progress.NewReporter(progress.PublisherFunc(func(ev progress.Event) {
		events = append(events, ev)
	}))

	opts := DefaultOptions()
	opts.Platform = "windows"

	result, err := p.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected scan errors: %v", result.Errors)
	}
	if len(result.Detected) != 1 {
		t.Fatalf("detected = %+v, want one game", result.Detected)
	}

	d := result.Detected[0]
	if d.Info.ExternalID != "stardew-valley" {
		t.Errorf("detection not enriched: %+v", d.Info)
	}
	if d.Source != SourceSteam {
		t.Errorf("source = %q, want steam", d.Source)
	}

	var found bool
	for _, match := range result.Matches {
		if match.RuleID == "sdv" && match.Exists && match.Confidence == 0.95 {
			found = true
		}
	}
	if !found {
		t.Fatalf("catalog rule match missing from %+v", result.Matches)
	}

	if len(events) == 0 {
		t.Fatal("no progress events published")
	}
	if events[0].Step != "index_load" {
		t.Errorf("first event = %q, want index_load", events[0].Step)
	}
	last := events[len(events)-1]
	if last.Step != "done" || last.Current != last.Total {
		t.Errorf("last event = %+v, want completed done step", last)
	}
}

func TestPipelineRunSoftErrors(t *testing.T) {
	p, m, _ := pipelineFixture(t)
	// Point the steam override at a missing directory so that scanner fails.
	m.SteamRoot = filepath.Join(t.TempDir(), "missing")

	result, err := p.Run(context.Background(), DefaultOptions())
	if err != nil {
		t.Fatalf("Run returned hard error for scanner failure: %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %v, want one steam failure", result.Errors)
	}
	if len(result.Detected) != 0 {
		t.Fatalf("detected = %+v, want none", result.Detected)
	}
}

func TestPipelineRunCancelled(t *testing.T) {
	p, _, _ := pipelineFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Run(ctx, DefaultOptions()); err == nil {
		t.Fatal("cancelled context should abort the scan")
	}
}

func TestPipelineNilReporterAndMatcher(t *testing.T) {
	p, m, _ := pipelineFixture(t)
	p.Matcher = nil
	p.Reporter = nil
	root := t.TempDir()
	m.SteamRoot = root
	mkGameDir(t, root, "steamapps", "common", "Hades")

	result, err := p.Run(context.Background(), DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Detected) != 1 || len(result.Matches) != 0 {
		t.Fatalf("result = %+v", result)
	}
}
