// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		Video: types.VideoMetadata{
			VideoID:      "dQw4w9WgXcQ",
			Title:        "Building APIs with FastAPI",
			ChannelTitle: "Tech Channel",
			PublishedAt:  time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
			Duration:     "PT12M30S",
			ViewCount:    1500,
		},
		Extraction: types.ExtractionResult{
			URLs: []string{"https://github.com/example/repo"},
			ToolsAndSoftware: []types.MatchedEntity{
				{Text: "fastapi", Confidence: 0.8, Category: types.CategoryFrameworkLibrary},
				{Text: "docker", Confidence: 0.5, Category: types.CategoryPlatformService},
			},
			ProgrammingLanguages:   []string{"python"},
			FrameworksAndLibraries: []string{"fastapi"},
			PlatformsAndServices:   []string{"docker"},
			CodeSnippets: []types.CodeSnippet{
				{Kind: types.SnippetCodeBlock, Language: "python", Code: "print('hi')", Confidence: 0.9},
				{Kind: types.SnippetInlineCode, Language: "unknown", Code: "pip install", Confidence: 0.6},
			},
			Commands: []types.CommandMatch{
				{Command: "pip install", Kind: types.CommandKindCLI, Confidence: 0.8},
			},
			ConfidenceScores: types.ConfidenceScores{
				URLExtraction:    0.95,
				EntityExtraction: 0.65,
				CodeDetection:    0.75,
				CommandDetection: 0.8,
			},
		},
		ExtractionMethod: types.MethodAPIDescription,
		AnalyzedAt:       time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestMarkdownSections(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown(&buf, sampleResult()); err != nil {
		t.Fatalf("Markdown() failed: %v", err)
	}
	out := buf.String()

	wantFragments := []string{
		"# Analysis: Building APIs with FastAPI",
		"| Video ID | dQw4w9WgXcQ |",
		"| Channel | Tech Channel |",
		"| Published | 2025-03-14 |",
		"| Views | 1500 |",
		"## URLs",
		"- <https://github.com/example/repo>",
		"## Tools and Software",
		"- fastapi (framework_library, 0.80)",
		"## Programming Languages",
		"python",
		"```python\nprint('hi')\n```",
		"## Commands",
		"- `pip install`",
		"- url_extraction: 0.95",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(out, frag) {
			t.Errorf("Markdown output missing %q", frag)
		}
	}
}

func TestMarkdownSkipsEmptySections(t *testing.T) {
	result := sampleResult()
	result.Extraction.URLs = nil
	result.Extraction.Commands = nil

	var buf bytes.Buffer
	if err := Markdown(&buf, result); err != nil {
		t.Fatalf("Markdown() failed: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "## URLs") {
		t.Error("URLs section present with no URLs")
	}
	if strings.Contains(out, "## Commands") {
		t.Error("Commands section present with no commands")
	}
	// Confidence section is always written.
	if !strings.Contains(out, "## Confidence") {
		t.Error("Confidence section missing")
	}
}

func TestMarkdownInlineSnippetsExcluded(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown(&buf, sampleResult()); err != nil {
		t.Fatalf("Markdown() failed: %v", err)
	}
	// Only the fenced block appears in the snippet section.
	if got := strings.Count(buf.String(), "```"); got != 2 {
		t.Errorf("got %d fence markers, want 2 (one block)", got)
	}
}

func TestJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleResult()); err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"video_metadata", "extraction", "extraction_method", "analysis_timestamp"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON output missing top-level key %q", key)
		}
	}

	ext, ok := decoded["extraction"].(map[string]any)
	if !ok {
		t.Fatal("extraction is not an object")
	}
	for _, key := range []string{"urls", "tools_and_software", "programming_languages", "confidence_scores"} {
		if _, ok := ext[key]; !ok {
			t.Errorf("extraction missing key %q", key)
		}
	}
}

func TestHTMLWrapsRenderedMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, sampleResult()); err != nil {
		t.Fatalf("HTML() failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("output does not start with doctype")
	}
	if !strings.Contains(out, "<title>Analysis: Building APIs with FastAPI</title>") {
		t.Error("page title missing")
	}
	if !strings.Contains(out, "dQw4w9WgXcQ") {
		t.Error("rendered body missing video ID")
	}
	if !strings.HasSuffix(out, "</html>\n") {
		t.Error("output does not end with closing html tag")
	}
}

func TestHTMLEscapesTitle(t *testing.T) {
	result := sampleResult()
	result.Video.Title = "<script>alert(1)</script>"

	var buf bytes.Buffer
	if err := HTML(&buf, result); err != nil {
		t.Fatalf("HTML() failed: %v", err)
	}
	if strings.Contains(buf.String(), "<title><script>") {
		t.Error("title not escaped")
	}
}

func TestRenderDispatch(t *testing.T) {
	tests := []struct {
		format types.OutputFormat
		want   string
	}{
		{types.FormatMarkdown, "# Analysis:"},
		{types.FormatJSON, "\"video_metadata\""},
		{types.FormatHTML, "<!DOCTYPE html>"},
		{"", "# Analysis:"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, sampleResult(), tt.format); err != nil {
				t.Fatalf("Render(%q) failed: %v", tt.format, err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Render(%q) output missing %q", tt.format, tt.want)
			}
		})
	}

	var buf bytes.Buffer
	if err := Render(&buf, sampleResult(), "pdf"); err == nil {
		t.Error("Render() accepted unsupported format, want error")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []*types.AnalysisResult{sampleResult()}); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "video_id" || rows[0][10] != "analysis_date" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	row := rows[1]
	want := []string{
		"dQw4w9WgXcQ", "Building APIs with FastAPI", "Tech Channel",
		"1500", "PT12M30S", "1", "2", "1", "1", "1", "2025-03-15",
	}
	for i, cell := range want {
		if row[i] != cell {
			t.Errorf("column %d = %q, want %q", i, row[i], cell)
		}
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

func TestSummaryTable(t *testing.T) {
	out := SummaryTable([]*types.AnalysisResult{sampleResult()})
	for _, frag := range []string{"Video ID", "dQw4w9WgXcQ", "Tech Channel"} {
		if !strings.Contains(out, frag) {
			t.Errorf("table missing %q", frag)
		}
	}

	if got := SummaryTable(nil); got != "No results.\n" {
		t.Errorf("empty table = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long title indeed", 10); got != "a very ..." {
		t.Errorf("truncate() = %q", got)
	}

	// Multibyte titles are cut on rune boundaries, never mid-character.
	if got := truncate("日本語のチュートリアル動画", 10); got != "日本語のチュー..." {
		t.Errorf("truncate(multibyte) = %q", got)
	}
	if got := truncate("日本語の動画", 10); got != "日本語の動画" {
		t.Errorf("truncate(short multibyte) = %q", got)
	}
	if !utf8.ValidString(truncate("Gérard présente Kubernetes en détail", 10)) {
		t.Error("truncate() produced invalid UTF-8")
	}
}
