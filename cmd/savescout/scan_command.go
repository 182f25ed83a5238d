package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"savescout/internal/config"
	"savescout/internal/logging"
	"savescout/internal/pathvars"
	"savescout/internal/progress"
	"savescout/internal/savematch"
	"savescout/internal/scan"
)

func scanOptionsFromConfig(cfg *config.Config) scan.Options {
	return scan.Options{
		Platform:         cfg.Scan.Platform,
		SearchSteam:      cfg.Scan.SearchSteam,
		SearchEpic:       cfg.Scan.SearchEpic,
		SearchOrigin:     cfg.Scan.SearchOrigin,
		SearchRegistry:   cfg.Scan.SearchRegistry,
		SearchCommonDirs: cfg.Scan.SearchCommonDirs,
		SearchProcesses:  cfg.Scan.SearchProcesses,
	}
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var platformFlag string
	var epicFlag, originFlag, steamFlag, commonFlag bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Detect installed games and match their save locations",
		Long: "Scan detects installed games through the enabled sources and matches their " +
			"save locations against the catalog. The registry and process sources have no " +
			"flags; toggle them with search_registry and search_processes in the config file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "scan")

			opts := scanOptionsFromConfig(cfg)
			if platformFlag != "" {
				opts.Platform = platformFlag
			}
			if cmd.Flags().Changed("steam") {
				opts.SearchSteam = steamFlag
			}
			if cmd.Flags().Changed("epic") {
				opts.SearchEpic = epicFlag
			}
			if cmd.Flags().Changed("origin") {
				opts.SearchOrigin = originFlag
			}
			if cmd.Flags().Changed("common-dirs") {
				opts.SearchCommonDirs = commonFlag
			}

			result, err := runScan(ctx, cmd, cfg, logger, opts)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			if len(result.Detected) == 0 {
				fmt.Fprintln(out, "No installed games detected")
			} else {
				rows := make([][]string, 0, len(result.Detected))
				for _, d := range result.Detected {
					rows = append(rows, []string{d.Info.Name, string(d.Source), d.InstallPath})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Game", "Source", "Install Path"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
			}

			if len(result.Matches) > 0 {
				rows := make([][]string, 0, len(result.Matches))
				for _, m := range result.Matches {
					rows = append(rows, []string{
						m.Game,
						m.RuleID,
						m.ResolvedPath,
						yesNo(m.Exists),
						strconv.FormatFloat(m.Confidence, 'f', 2, 64),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Game", "Rule", "Save Path", "Exists", "Confidence"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))
			}

			for _, scanErr := range result.Errors {
				fmt.Fprintf(out, "warning: %s\n", scanErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the scan result as JSON")
	cmd.Flags().StringVar(&platformFlag, "platform", "", "Platform to scan for (windows, linux, darwin)")
	cmd.Flags().BoolVar(&steamFlag, "steam", true, "Scan Steam libraries")
	cmd.Flags().BoolVar(&epicFlag, "epic", false, "Scan Epic Games Launcher manifests")
	cmd.Flags().BoolVar(&originFlag, "origin", false, "Scan the EA/Origin installed list")
	cmd.Flags().BoolVar(&commonFlag, "common-dirs", true, "Scan common vendor install directories")
	return cmd
}

// runScan assembles the pipeline and executes it. Catalog load failures are
// soft: detection still runs, matches just stay unenriched.
func runScan(ctx *commandContext, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, opts scan.Options) (*scan.Result, error) {
	cat, err := ctx.loadCatalog()
	if err != nil {
		logger.Warn("catalog unavailable, scanning without enrichment", logging.Error(err))
		cat = nil
	}

	env := pathvars.NewEnv(opts.Platform)
	machine := scan.DetectMachine(env, logger)

	pipeline := &scan.Pipeline{
		Machine: &machine,
		Catalog: cat,
		Matcher: savematch.NewMatcher(env, cfg.Paths.BackupDir, logger),
		Logger:  logger,
		Reporter: progress.NewReporterInterval(
			progress.PublisherFunc(func(ev progress.Event) {
				logger.Info("scan progress",
					logging.String("step", ev.Step),
					logging.Int("current", ev.Current),
					logging.Int("total", ev.Total),
					logging.String("message", ev.Message))
			}),
			time.Duration(cfg.Scan.ProgressIntervalMS)*time.Millisecond,
		),
	}

	return pipeline.Run(cmd.Context(), opts)
}
