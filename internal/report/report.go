// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders analysis results as Markdown, JSON, HTML, CSV
// summaries, and terminal output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

// Markdown writes a sectioned report for one analysis.
func Markdown(w io.Writer, result *types.AnalysisResult) error {
	video := result.Video
	ext := result.Extraction

	fmt.Fprintf(w, "# Analysis: %s\n\n", video.Title)

	fmt.Fprintln(w, "## Video")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Field | Value |")
	fmt.Fprintln(w, "|---|---|")
	fmt.Fprintf(w, "| Video ID | %s |\n", video.VideoID)
	fmt.Fprintf(w, "| Channel | %s |\n", video.ChannelTitle)
	if !video.PublishedAt.IsZero() {
		fmt.Fprintf(w, "| Published | %s |\n", video.PublishedAt.Format("2006-01-02"))
	}
	if video.Duration != "" {
		fmt.Fprintf(w, "| Duration | %s |\n", video.Duration)
	}
	fmt.Fprintf(w, "| Views | %d |\n", video.ViewCount)
	fmt.Fprintf(w, "| Extraction method | %s |\n", result.ExtractionMethod)
	fmt.Fprintln(w)

	if len(ext.URLs) > 0 {
		fmt.Fprintln(w, "## URLs")
		fmt.Fprintln(w)
		for _, u := range ext.URLs {
			fmt.Fprintf(w, "- <%s>\n", u)
		}
		fmt.Fprintln(w)
	}

	if len(ext.ToolsAndSoftware) > 0 {
		fmt.Fprintln(w, "## Tools and Software")
		fmt.Fprintln(w)
		for _, ent := range ext.ToolsAndSoftware {
			fmt.Fprintf(w, "- %s (%s, %.2f)\n", ent.Text, ent.Category, ent.Confidence)
		}
		fmt.Fprintln(w)
	}

	categorySections := []struct {
		title string
		terms []string
	}{
		{"Programming Languages", ext.ProgrammingLanguages},
		{"Frameworks and Libraries", ext.FrameworksAndLibraries},
		{"Platforms and Services", ext.PlatformsAndServices},
		{"Companies and Brands", ext.CompaniesAndBrands},
		{"File Formats", ext.FileFormats},
		{"APIs and Protocols", ext.APIsAndProtocols},
		{"Technical Concepts", ext.TechnicalConcepts},
	}
	for _, sec := range categorySections {
		if len(sec.terms) == 0 {
			continue
		}
		fmt.Fprintf(w, "## %s\n\n%s\n\n", sec.title, strings.Join(sec.terms, ", "))
	}

	if len(ext.CodeSnippets) > 0 {
		fmt.Fprintln(w, "## Code Snippets")
		fmt.Fprintln(w)
		for _, s := range ext.CodeSnippets {
			if s.Kind != types.SnippetCodeBlock {
				continue
			}
			fmt.Fprintf(w, "```%s\n%s\n```\n\n", s.Language, s.Code)
		}
	}

	if len(ext.Commands) > 0 {
		fmt.Fprintln(w, "## Commands")
		fmt.Fprintln(w)
		for _, c := range ext.Commands {
			fmt.Fprintf(w, "- `%s`\n", c.Command)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "## Confidence")
	fmt.Fprintln(w)
	scores := ext.ConfidenceScores
	fmt.Fprintf(w, "- url_extraction: %.2f\n", scores.URLExtraction)
	fmt.Fprintf(w, "- entity_extraction: %.2f\n", scores.EntityExtraction)
	fmt.Fprintf(w, "- code_detection: %.2f\n", scores.CodeDetection)
	fmt.Fprintf(w, "- command_detection: %.2f\n", scores.CommandDetection)

	return nil
}

// JSON writes the analysis with its stable field names, indented.
func JSON(w io.Writer, result *types.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// Render writes the analysis in the requested format.
func Render(w io.Writer, result *types.AnalysisResult, format types.OutputFormat) error {
	switch format {
	case types.FormatJSON:
		return JSON(w, result)
	case types.FormatHTML:
		return HTML(w, result)
	case types.FormatMarkdown, "":
		return Markdown(w, result)
	default:
		return fmt.Errorf("unsupported format %q: use markdown, json, or html", format)
	}
}
