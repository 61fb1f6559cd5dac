// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/yt-hoover/internal/analyze"
	"github.com/pdiddy/yt-hoover/internal/nlp"
	"github.com/pdiddy/yt-hoover/internal/report"
	"github.com/pdiddy/yt-hoover/internal/scrape"
	"github.com/pdiddy/yt-hoover/internal/secrets"
	"github.com/pdiddy/yt-hoover/internal/store"
	"github.com/pdiddy/yt-hoover/internal/youtube"
	"github.com/pdiddy/yt-hoover/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "yt-hoover/0.1"
	defaultRate      = 4.0
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [video-urls-or-ids...]",
	Short: "Analyze one or more YouTube videos",
	Long: `Analyze fetches video metadata from the YouTube Data API, runs the
extraction engine over the title, description, and tags, and renders a
report. Videos are referenced by watch URL, short URL, embed URL, or
bare 11-character ID.

With multiple references the videos are analyzed concurrently and one
report file per video is written to --output-dir. Videos already in
history with unchanged content are skipped when --save is set.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("api-key", "", "YouTube Data API key (overrides env and .secrets/)")
	analyzeCmd.Flags().String("batch", "", "file with one video URL or ID per line (# comments allowed)")
	analyzeCmd.Flags().String("format", "markdown", "report format: markdown, json, or html")
	analyzeCmd.Flags().String("output", "", "report file path (default: stdout)")
	analyzeCmd.Flags().String("output-dir", "reports", "directory for batch report files")
	analyzeCmd.Flags().String("csv", "", "also write a CSV batch summary to this path")
	analyzeCmd.Flags().Bool("scrape", false, "scrape the watch page for supplemental text")
	analyzeCmd.Flags().Bool("save", false, "save results to the analysis history database")
	analyzeCmd.Flags().Int("concurrency", 0, "videos analyzed in parallel in batch mode (default 3)")
	analyzeCmd.Flags().String("db", "", "history database path (default analyses/history.db)")

	rootCmd.AddCommand(analyzeCmd)
}

// resolveAPIKey looks for the key in flag, environment, the secrets
// directory, then the config file.
func resolveAPIKey(cmd *cobra.Command) (string, error) {
	key, _ := cmd.Flags().GetString("api-key")
	if key == "" {
		key = os.Getenv("YT_HOOVER_API_KEY")
	}
	if key == "" {
		key = os.Getenv("YOUTUBE_API_KEY")
	}
	key = secretDefault(secrets.YouTubeAPIKey, key)
	if key == "" {
		key = viper.GetString("api_key")
	}
	if key == "" {
		return "", fmt.Errorf("no YouTube API key found: pass --api-key, set YT_HOOVER_API_KEY, or run 'yt-hoover setup'")
	}
	return key, nil
}

// readBatchFile reads video references from a file, one per line.
// Blank lines and # comments are skipped.
func readBatchFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	var refs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		refs = append(refs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	return refs, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	refs := args
	if batchPath, _ := cmd.Flags().GetString("batch"); batchPath != "" {
		fromFile, err := readBatchFile(batchPath)
		if err != nil {
			return err
		}
		refs = append(refs, fromFile...)
	}
	if len(refs) == 0 {
		return fmt.Errorf("provide one or more video URLs or IDs, or --batch FILE")
	}

	apiKey, err := resolveAPIKey(cmd)
	if err != nil {
		return err
	}

	formatStr, _ := cmd.Flags().GetString("format")
	format := types.OutputFormat(formatStr)
	outputPath, _ := cmd.Flags().GetString("output")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	csvPath, _ := cmd.Flags().GetString("csv")
	scrapeEnabled, _ := cmd.Flags().GetBool("scrape")
	save, _ := cmd.Flags().GetBool("save")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	dbPath, _ := cmd.Flags().GetString("db")

	client, err := youtube.NewClient(types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		APIKey:            apiKey,
		RequestsPerSecond: defaultRate,
	})
	if err != nil {
		return err
	}

	engine, err := nlp.New()
	if err != nil {
		return err
	}

	analyzer := &analyze.Analyzer{
		Fetcher:   client,
		Processor: engine,
	}

	if scrapeEnabled {
		analyzer.Scraper = scrape.NewScraper(types.ScrapeConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   defaultTimeout,
				UserAgent: defaultUserAgent,
			},
			Enabled: true,
		})
	}

	var db *store.Store
	if save {
		db, err = store.NewStore(types.HistoryConfig{DBPath: dbPath})
		if err != nil {
			return err
		}
		defer db.Close()
		analyzer.History = db
	}

	ctx := context.Background()

	if len(refs) == 1 {
		return analyzeSingle(ctx, analyzer, db, refs[0], format, outputPath)
	}
	return analyzeBatch(ctx, analyzer, db, refs, format, outputDir, csvPath, concurrency)
}

func analyzeSingle(ctx context.Context, analyzer *analyze.Analyzer, db *store.Store, reference string, format types.OutputFormat, outputPath string) error {
	result, err := analyzer.AnalyzeVideo(ctx, reference, os.Stderr)
	if err != nil {
		return err
	}

	if db != nil {
		if err := db.Save(ctx, result, analyze.ContentHash(&result.Video)); err != nil {
			return err
		}
	}

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		return report.Render(f, result, format)
	}

	// Markdown going to a terminal gets the styled renderer.
	if format == types.FormatMarkdown && stdoutIsTerminal() {
		var md bytes.Buffer
		if err := report.Markdown(&md, result); err != nil {
			return err
		}
		fmt.Print(report.RenderTerminal(md.String()))
		return nil
	}

	return report.Render(os.Stdout, result, format)
}

func analyzeBatch(ctx context.Context, analyzer *analyze.Analyzer, db *store.Store, references []string, format types.OutputFormat, outputDir, csvPath string, concurrency int) error {
	summary, results, err := analyzer.AnalyzeBatch(ctx, references, concurrency, os.Stderr)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, result := range results {
		if db != nil {
			if err := db.Save(ctx, result, analyze.ContentHash(&result.Video)); err != nil {
				return err
			}
		}
		if err := writeReportFile(outputDir, result, format); err != nil {
			return err
		}
	}

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("creating CSV file: %w", err)
		}
		defer f.Close()
		if err := report.WriteCSV(f, results); err != nil {
			return err
		}
	}

	fmt.Print(report.SummaryTable(results))

	if summary.HasFailures() {
		return fmt.Errorf("%d video(s) failed analysis", summary.Failed)
	}
	return nil
}

// writeReportFile writes one report named [video_id]_[date].[ext].
func writeReportFile(dir string, result *types.AnalysisResult, format types.OutputFormat) error {
	name := fmt.Sprintf("%s_%s.%s",
		result.Video.VideoID,
		result.AnalyzedAt.Format("2006-01-02"),
		format.Extension(),
	)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()
	return report.Render(f, result, format)
}

func stdoutIsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
