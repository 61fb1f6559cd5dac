// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape pulls supplemental text from a video's public watch page.
// The API description is often truncated or thin; the watch page's meta
// tags carry the full description and keywords. Scraping is best-effort:
// the analysis proceeds on API text alone when it fails.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/yt-hoover/internal/httputil"
	"github.com/pdiddy/yt-hoover/pkg/types"
)

// watchBase is the watch page URL prefix. Declared as a var so tests can
// substitute an httptest server.
var watchBase = "https://www.youtube.com/watch?v="

// Scraper fetches and parses watch pages.
type Scraper struct {
	HTTPClient *http.Client
	cfg        types.ScrapeConfig
}

// NewScraper builds a Scraper from config.
func NewScraper(cfg types.ScrapeConfig) *Scraper {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Scraper{
		HTTPClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
	}
}

// Fetch retrieves the watch page for a video and returns the supplemental
// text found in its meta tags and title, one fragment per line. An empty
// string with nil error means the page held nothing useful.
func (s *Scraper) Fetch(ctx context.Context, videoID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchBase+videoID, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, s.HTTPClient, req, 0)
	if err != nil {
		return "", fmt.Errorf("watch page request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("watch page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing watch page: %w", err)
	}

	return extractPageText(doc), nil
}

// extractPageText collects the meta-tag content and visible title,
// deduplicated in selector order.
func extractPageText(doc *goquery.Document) string {
	seen := make(map[string]bool)
	var fragments []string

	add := func(text string) {
		text = strings.TrimSpace(text)
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		fragments = append(fragments, text)
	}

	for _, selector := range []string{
		`meta[property="og:title"]`,
		`meta[property="og:description"]`,
		`meta[name="keywords"]`,
		`meta[name="description"]`,
	} {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if content, ok := sel.Attr("content"); ok {
				add(content)
			}
		})
	}

	doc.Find("title").Each(func(_ int, sel *goquery.Selection) {
		add(sel.Text())
	})

	return strings.Join(fragments, "\n")
}
