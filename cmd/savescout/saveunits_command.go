package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"savescout/internal/device"
	"savescout/internal/logging"
	"savescout/internal/pathvars"
	"savescout/internal/savematch"
	"savescout/internal/saveunit"
)

func newSaveUnitsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "save-units [game [install-path]]",
		Short: "Synthesize backup units from discovered save locations",
		Long:  "Without arguments, save-units runs a full scan and synthesizes units for every detected game. With a game name it matches just that catalog entry, optionally against a known install path.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "save-units")

			var matches []savematch.Result
			if len(args) > 0 {
				cat, err := ctx.loadCatalog()
				if err != nil {
					return fmt.Errorf("load catalog: %w", err)
				}
				game := cat.FindExact(args[0])
				if game == nil {
					return fmt.Errorf("game %q not found in catalog", args[0])
				}
				installPath := ""
				if len(args) > 1 {
					installPath = args[1]
				}
				env := pathvars.NewEnv(cfg.Scan.Platform)
				matches = savematch.NewMatcher(env, cfg.Paths.BackupDir, logger).Match(game, installPath)
			} else {
				result, err := runScan(ctx, cmd, cfg, logger, scanOptionsFromConfig(cfg))
				if err != nil {
					return err
				}
				matches = result.Matches
			}

			units := saveunit.Synthesize(matches, device.CurrentID())
			if jsonOutput {
				return writeJSON(cmd, units)
			}

			out := cmd.OutOrStdout()
			if len(units) == 0 {
				fmt.Fprintln(out, "No save data found")
				return nil
			}

			deviceID := device.CurrentID()
			rows := make([][]string, 0, len(units))
			for _, u := range units {
				rows = append(rows, []string{
					u.Game,
					string(u.Type),
					u.Paths[deviceID],
					strconv.FormatFloat(u.Confidence, 'f', 2, 64),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Game", "Type", "Path", "Confidence"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit save units as JSON")
	return cmd
}
