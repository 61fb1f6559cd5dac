// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Align(lipgloss.Center)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// SummaryTable renders a batch overview as a bordered terminal table.
func SummaryTable(results []*types.AnalysisResult) string {
	if len(results) == 0 {
		return "No results.\n"
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Video ID", "Title", "Channel", "URLs", "Tools", "Langs")

	for _, r := range results {
		t.Row(
			r.Video.VideoID,
			truncate(r.Video.Title, 40),
			truncate(r.Video.ChannelTitle, 20),
			fmt.Sprintf("%d", len(r.Extraction.URLs)),
			fmt.Sprintf("%d", len(r.Extraction.ToolsAndSoftware)),
			fmt.Sprintf("%d", len(r.Extraction.ProgrammingLanguages)),
		)
	}

	return t.Render() + "\n"
}

// RenderTerminal renders Markdown for display on a terminal. It falls
// back to the raw Markdown when the renderer cannot be built.
func RenderTerminal(markdown string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// truncate shortens s to max characters. It counts runes so multibyte
// titles are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
