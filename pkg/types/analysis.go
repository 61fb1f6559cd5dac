// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ExtractionMethod records which sources fed the analyzed text.
type ExtractionMethod string

const (
	// MethodAPIDescription means only the API-provided description,
	// title, and tags were analyzed.
	MethodAPIDescription ExtractionMethod = "youtube_api_description"

	// MethodAPIPlusPageScrape means watch-page content was scraped and
	// appended to the API text before analysis.
	MethodAPIPlusPageScrape ExtractionMethod = "youtube_api_plus_page_scrape"
)

// AnalysisResult is the full output of analyzing one video: the fetched
// metadata plus everything extracted from its text.
type AnalysisResult struct {
	// Video is the metadata fetched from the YouTube Data API.
	Video VideoMetadata `json:"video_metadata" yaml:"video_metadata"`

	// Extraction holds the entities, URLs, snippets, and commands found.
	Extraction ExtractionResult `json:"extraction" yaml:"extraction"`

	// ExtractionMethod records which text sources were analyzed.
	ExtractionMethod ExtractionMethod `json:"extraction_method" yaml:"extraction_method"`

	// AnalyzedAt is when the analysis ran.
	AnalyzedAt time.Time `json:"analysis_timestamp" yaml:"analysis_timestamp"`
}
