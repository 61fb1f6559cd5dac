// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze orchestrates one video analysis: resolve the reference,
// fetch metadata, optionally scrape the watch page, and run the extraction
// engine over the combined text.
package analyze

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/yt-hoover/internal/youtube"
	"github.com/pdiddy/yt-hoover/pkg/types"
)

// MetadataFetcher retrieves video metadata. youtube.Client implements it;
// tests supply a mock.
type MetadataFetcher interface {
	FetchVideo(ctx context.Context, videoID string) (*types.VideoMetadata, error)
}

// PageScraper retrieves supplemental watch-page text. Nil disables
// scraping; failures are non-fatal.
type PageScraper interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// TextProcessor runs the extraction engine over one text.
type TextProcessor interface {
	Process(text string) types.ExtractionResult
}

// HistoryChecker reports whether a video was already analyzed with
// identical content. A store implements it; nil disables skipping.
type HistoryChecker interface {
	HasAnalysis(videoID string, contentHash uint64) (bool, error)
}

// Analyzer holds the collaborators for one analysis run. Construct it per
// run; it has no mutable state of its own.
type Analyzer struct {
	Fetcher   MetadataFetcher
	Scraper   PageScraper
	Processor TextProcessor
	History   HistoryChecker
}

// BatchSummary holds counts from a batch analysis run.
type BatchSummary struct {
	Analyzed int
	Skipped  int
	Failed   int
}

// Total returns the number of videos processed.
func (s BatchSummary) Total() int {
	return s.Analyzed + s.Skipped + s.Failed
}

// HasFailures reports whether any videos failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// AnalyzeVideo analyzes a single video referenced by URL or bare ID.
func (a *Analyzer) AnalyzeVideo(ctx context.Context, reference string, w io.Writer) (*types.AnalysisResult, error) {
	videoID, err := youtube.ParseVideoID(reference)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "fetching %s\n", videoID)
	meta, err := a.Fetcher.FetchVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch video %s: %w", videoID, err)
	}

	text, method := a.assembleText(ctx, meta, w)

	result := &types.AnalysisResult{
		Video:            *meta,
		Extraction:       a.Processor.Process(text),
		ExtractionMethod: method,
		AnalyzedAt:       time.Now().UTC(),
	}
	return result, nil
}

// assembleText combines title, description, and tags, appending scraped
// watch-page text when a scraper is configured and succeeds.
func (a *Analyzer) assembleText(ctx context.Context, meta *types.VideoMetadata, w io.Writer) (string, types.ExtractionMethod) {
	parts := []string{meta.Title, meta.Description}
	if len(meta.Tags) > 0 {
		parts = append(parts, strings.Join(meta.Tags, " "))
	}

	method := types.MethodAPIDescription
	if a.Scraper != nil {
		page, err := a.Scraper.Fetch(ctx, meta.VideoID)
		switch {
		case err != nil:
			fmt.Fprintf(w, "warning: watch page scrape failed for %s: %v\n", meta.VideoID, err)
		case page != "":
			parts = append(parts, page)
			method = types.MethodAPIPlusPageScrape
		}
	}

	return strings.Join(parts, "\n"), method
}

// ContentHash fingerprints the analyzed text so unchanged videos can be
// skipped on re-analysis.
func ContentHash(meta *types.VideoMetadata) uint64 {
	return xxhash.Sum64String(meta.Title + "\x00" + meta.Description + "\x00" + strings.Join(meta.Tags, " "))
}

// syncWriter serializes writes to the shared progress writer from
// concurrent batch workers.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (sw *syncWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}

// AnalyzeBatch analyzes multiple video references with bounded
// concurrency. Individual failures are reported on w and counted, never
// fatal. Videos already in history with unchanged content are skipped.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, references []string, concurrency int, w io.Writer) (BatchSummary, []*types.AnalysisResult, error) {
	if concurrency <= 0 {
		concurrency = 3
	}

	// Workers write warnings from inside analyzeOne, so every write to
	// the progress writer goes through one lock.
	progress := &syncWriter{w: w}

	var (
		mu      sync.Mutex
		summary BatchSummary
		results []*types.AnalysisResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, ref := range references {
		ref := ref
		g.Go(func() error {
			result, skipped, err := a.analyzeOne(gctx, ref, progress)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				fmt.Fprintf(progress, "failed  %s: %v\n", ref, err)
				summary.Failed++
			case skipped:
				fmt.Fprintf(progress, "skipped %s (unchanged)\n", ref)
				summary.Skipped++
			default:
				summary.Analyzed++
				results = append(results, result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, results, err
	}

	fmt.Fprintf(progress, "\nanalyzed: %d, skipped: %d, failed: %d\n",
		summary.Analyzed, summary.Skipped, summary.Failed)
	return summary, results, nil
}

// analyzeOne resolves and fetches one reference, consulting history
// before running the engine.
func (a *Analyzer) analyzeOne(ctx context.Context, reference string, w io.Writer) (*types.AnalysisResult, bool, error) {
	videoID, err := youtube.ParseVideoID(reference)
	if err != nil {
		return nil, false, err
	}

	meta, err := a.Fetcher.FetchVideo(ctx, videoID)
	if err != nil {
		return nil, false, fmt.Errorf("fetch video %s: %w", videoID, err)
	}

	if a.History != nil {
		known, err := a.History.HasAnalysis(videoID, ContentHash(meta))
		if err != nil {
			fmt.Fprintf(w, "warning: history check failed for %s: %v\n", videoID, err)
		} else if known {
			return nil, true, nil
		}
	}

	text, method := a.assembleText(ctx, meta, w)
	result := &types.AnalysisResult{
		Video:            *meta,
		Extraction:       a.Processor.Process(text),
		ExtractionMethod: method,
		AnalyzedAt:       time.Now().UTC(),
	}
	return result, false, nil
}
