// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/yt-hoover/internal/report"
	"github.com/pdiddy/yt-hoover/internal/store"
	"github.com/pdiddy/yt-hoover/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse, search, and export past analyses",
	Long: `History manages the local SQLite database of saved analyses. Use
subcommands to list recent analyses, search them with full-text queries
and filters, or export them to YAML or JSON.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analyses",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := db.Retrieve(context.Background(), store.QueryOptions{
		MaxResults: flagInt(cmd, "limit"),
	})
	if err != nil {
		return err
	}
	fmt.Print(report.SummaryTable(results))
	return nil
}

// --- search subcommand ---

var historySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search past analyses with full-text search and filters",
	Long: `Search matches the query against stored video titles, channel names,
and descriptions. Combine with --channel, --language, or --since to
narrow results.`,
	RunE: runHistorySearch,
}

func runHistorySearch(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --channel, --language, or --since")
	}

	db, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := db.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}
	fmt.Print(report.SummaryTable(results))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export past analyses to YAML or JSON",
	Long: `Export writes matching analyses to stdout or --output. Supports the
same filter flags as search for partial exports.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	opts, err := queryOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	db, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "yaml", "":
		return db.ExportYAML(context.Background(), out, opts)
	case "json":
		return db.ExportJSON(context.Background(), out, opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// --- shared helpers ---

func openHistory(cmd *cobra.Command) (*store.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	return store.NewStore(types.HistoryConfig{
		DBPath:     dbPath,
		MaxResults: flagInt(cmd, "limit"),
	})
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) (store.QueryOptions, error) {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	channel, _ := cmd.Flags().GetString("channel")
	language, _ := cmd.Flags().GetString("language")
	sinceStr, _ := cmd.Flags().GetString("since")

	opts := store.QueryOptions{
		Query:      queryText,
		Channel:    channel,
		Language:   language,
		MaxResults: flagInt(cmd, "limit"),
	}

	if sinceStr != "" {
		since, err := time.Parse("2006-01-02", sinceStr)
		if err != nil {
			return store.QueryOptions{}, fmt.Errorf("invalid --since date %q: use YYYY-MM-DD", sinceStr)
		}
		opts.Since = since
	}
	return opts, nil
}

func flagInt(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	historyCmd.PersistentFlags().String("db", "", "history database path (default analyses/history.db)")
	historyCmd.PersistentFlags().Int("limit", 0, "maximum results (0 = use default)")

	// Search flags.
	historySearchCmd.Flags().String("query", "", "full-text search query")
	historySearchCmd.Flags().String("channel", "", "filter by channel title")
	historySearchCmd.Flags().String("language", "", "filter by language code")
	historySearchCmd.Flags().String("since", "", "only analyses on or after this date (YYYY-MM-DD)")

	// Export flags.
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("output", "", "export file path (default: stdout)")
	historyExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	historyExportCmd.Flags().String("channel", "", "filter by channel title")
	historyExportCmd.Flags().String("language", "", "filter by language code")
	historyExportCmd.Flags().String("since", "", "only analyses on or after this date (YYYY-MM-DD)")

	// Wire subcommands.
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
