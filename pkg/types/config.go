package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "yt-hoover/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the YouTube Data API client.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the YouTube Data API v3 key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// RequestsPerSecond caps the API request rate (default 4).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// ScrapeConfig holds settings for the watch-page scraper.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enabled controls whether watch-page content is scraped and
	// appended to the API text before analysis.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// AnalyzeConfig holds settings for the analysis stage.
type AnalyzeConfig struct {
	// Concurrency is the number of videos analyzed in parallel in
	// batch mode (default 3).
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// HistoryConfig holds settings for the analysis history database.
type HistoryConfig struct {
	// DBPath is the SQLite database file path (default "analyses/history.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// OutputFormat selects the report output format.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
	FormatHTML     OutputFormat = "html"
)

// Extension returns the file extension for the format, without the dot.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatHTML:
		return "html"
	default:
		return "md"
	}
}

// ReportConfig holds settings for report generation.
type ReportConfig struct {
	// Format selects the output format: markdown, json, or html.
	Format OutputFormat `json:"format" yaml:"format"`

	// OutputDir is the directory for batch report files (default "reports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Scrape  ScrapeConfig  `json:"scrape" yaml:"scrape"`
	Analyze AnalyzeConfig `json:"analyze" yaml:"analyze"`
	History HistoryConfig `json:"history" yaml:"history"`
	Report  ReportConfig  `json:"report" yaml:"report"`
}
