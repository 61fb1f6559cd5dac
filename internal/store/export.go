// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

// ExportEntry is one analysis flattened for export.
type ExportEntry struct {
	VideoID          string    `json:"video_id" yaml:"video_id"`
	Title            string    `json:"title" yaml:"title"`
	Channel          string    `json:"channel" yaml:"channel"`
	AnalyzedAt       time.Time `json:"analyzed_at" yaml:"analyzed_at"`
	ExtractionMethod string    `json:"extraction_method" yaml:"extraction_method"`
	URLs             []string  `json:"urls" yaml:"urls"`
	Tools            []string  `json:"tools" yaml:"tools"`
	Languages        []string  `json:"languages" yaml:"languages"`
	Frameworks       []string  `json:"frameworks" yaml:"frameworks"`
	Platforms        []string  `json:"platforms" yaml:"platforms"`
}

const exportLimit = 100000

// ExportYAML writes matching history entries as YAML. It supports the
// same filters as Retrieve.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes matching history entries as indented JSON. It
// supports the same filters as Retrieve.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	opts.MaxResults = exportLimit
	results, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(results))
	for i, r := range results {
		entries[i] = ExportEntry{
			VideoID:          r.Video.VideoID,
			Title:            r.Video.Title,
			Channel:          r.Video.ChannelTitle,
			AnalyzedAt:       r.AnalyzedAt,
			ExtractionMethod: string(r.ExtractionMethod),
			URLs:             r.Extraction.URLs,
			Tools:            entityTexts(r.Extraction.ToolsAndSoftware),
			Languages:        r.Extraction.ProgrammingLanguages,
			Frameworks:       r.Extraction.FrameworksAndLibraries,
			Platforms:        r.Extraction.PlatformsAndServices,
		}
	}

	return entries, nil
}

func entityTexts(entities []types.MatchedEntity) []string {
	texts := make([]string, len(entities))
	for i, e := range entities {
		texts[i] = e.Text
	}
	return texts
}
