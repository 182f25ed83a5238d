package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"savescout/internal/catalog"
	"savescout/internal/logging"
	"savescout/internal/progress"
	"savescout/internal/savematch"
)

const totalSteps = 4

// Pipeline runs a full discovery scan: detect installs, dedupe, enrich from
// the catalog, match save paths.
type Pipeline struct {
	Machine  *Machine
	Catalog  *catalog.Catalog
	Matcher  *savematch.Matcher
	Reporter *progress.Reporter
	Logger   *slog.Logger
}

// Run executes the scan. Individual scanner failures are recorded in the
// result's Errors and do not abort the remaining sources; ctx cancellation
// does.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	started := time.Now()
	result := &Result{}

	p.emit("index_load", 1, "loading game catalog")
	catalogSize := 0
	if p.Catalog != nil {
		catalogSize = len(p.Catalog.Games)
	}
	logger.Info("scan started",
		logging.String("platform", opts.Platform),
		logging.Int("catalog_entries", catalogSize))

	type sourceScan struct {
		name    string
		enabled bool
		run     func(*Machine) ([]DetectedGame, error)
	}
	scans := []sourceScan{
		{name: "steam", enabled: opts.SearchSteam, run: scanSteam},
		{name: "epic", enabled: opts.SearchEpic, run: scanEpic},
		{name: "origin", enabled: opts.SearchOrigin, run: scanOrigin},
		{name: "common_dirs", enabled: opts.SearchCommonDirs, run: scanCommonDirs},
	}

	p.emit("detect_games", 2, "detecting installed games")
	var detected []DetectedGame
	for _, s := range scans {
		if !s.enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.emit(s.name+"_scanning", 2, "scanning "+s.name)
		found, err := s.run(p.Machine)
		if err != nil {
			logger.Warn("source scan failed",
				logging.String("source", s.name),
				logging.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", s.name, err))
			continue
		}
		logger.Debug("source scan finished",
			logging.String("source", s.name),
			logging.Int("detected", len(found)))
		detected = append(detected, found...)
		p.emit(s.name+"_done", 2, s.name+" scan done")
	}

	detected = Dedupe(detected)
	detected = Enrich(detected, p.Catalog)
	result.Detected = detected

	p.emit("match_saves", 3, "matching save locations")
	if p.Matcher != nil {
		for i := range detected {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			matches := p.Matcher.Match(&detected[i].Info, detected[i].InstallPath)
			result.Matches = append(result.Matches, matches...)
		}
	}

	p.emit("done", totalSteps, "scan complete")
	logger.Info("scan finished",
		logging.Int("detected", len(result.Detected)),
		logging.Int("matches", len(result.Matches)),
		logging.Int("errors", len(result.Errors)),
		logging.Duration("elapsed", time.Since(started)))
	return result, nil
}

func (p *Pipeline) emit(step string, current int, message string) {
	p.Reporter.Emit(progress.Event{
		Step:    step,
		Current: current,
		Total:   totalSteps,
		Message: message,
	})
}
