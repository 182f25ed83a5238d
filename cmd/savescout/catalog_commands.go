package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"savescout/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the game catalog",
	}
	cmd.AddCommand(newCatalogSearchCommand(ctx))
	cmd.AddCommand(newCatalogMetaCommand(ctx))
	cmd.AddCommand(newCatalogImportCommand(ctx))
	return cmd
}

func newCatalogSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var fuzzy bool
	var platform string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search catalog entries by name or alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			items := cat.Search(args[0], catalog.SearchOptions{
				Fuzzy:    fuzzy,
				Platform: platform,
				Limit:    limit,
			})
			if jsonOutput {
				return writeJSON(cmd, items)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No catalog entries matched")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					item.Info.Name,
					strconv.FormatFloat(item.Score, 'f', 2, 64),
					item.MatchedBy,
					strings.Join(item.Info.Aliases, ", "),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Score", "Matched By", "Aliases"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit search results as JSON")
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "Include substring matches")
	cmd.Flags().StringVar(&platform, "platform", "", "Only entries with save rules for this platform")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (default 20)")
	return cmd
}

func newCatalogMetaCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Show catalog version and entry count",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			meta := cat.Meta()
			if jsonOutput {
				return writeJSON(cmd, meta)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version: %s\n", meta.Version)
			fmt.Fprintf(out, "Entries: %d\n", meta.Count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit catalog metadata as JSON")
	return cmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a catalog file into the local cache",
		Long:  "Import reads a catalog in JSON or SQLite form, filters it to the configured platform, and writes it to the cache used by scans.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			src := args[0]
			var meta catalog.Meta
			switch strings.ToLower(filepath.Ext(src)) {
			case ".json":
				meta, err = catalog.ImportJSON(src, cfg.Paths.CatalogCache, cfg.Scan.Platform)
			default:
				meta, err = catalog.ImportSQLite(src, cfg.Paths.CatalogCache, cfg.Scan.Platform)
			}
			if err != nil {
				return fmt.Errorf("import catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d entries (version %s) into %s\n", meta.Count, meta.Version, cfg.Paths.CatalogCache)
			return nil
		},
	}
	return cmd
}
