// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

// QueryOptions holds parameters for history queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string, matched against video
	// titles, channel names, and descriptions.
	Query string

	// Channel filters by channel title.
	Channel string

	// Language filters by the video's default language code.
	Language string

	// Since filters out analyses older than the given time.
	Since time.Time

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Channel == "" && q.Language == "" && q.Since.IsZero()
}

// Retrieve queries the history with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// structured-only queries return the most recent analyses first. When
// the driver lacks the fts5 module, text queries match substrings over
// the same columns instead.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]*types.AnalysisResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != "" && s.fts
	)

	switch {
	case useFTS:
		qb.WriteString(
			`SELECT a.result
			FROM analyses_fts
			JOIN analyses a ON a.rowid = analyses_fts.rowid
			WHERE analyses_fts MATCH ?`)
		args = append(args, opts.Query)
	case opts.Query != "":
		qb.WriteString(
			`SELECT a.result
			FROM analyses a
			WHERE (a.title LIKE ? OR a.channel_title LIKE ? OR a.description LIKE ?)`)
		pattern := "%" + opts.Query + "%"
		args = append(args, pattern, pattern, pattern)
	default:
		qb.WriteString(
			`SELECT a.result
			FROM analyses a
			WHERE 1=1`)
	}

	if opts.Channel != "" {
		qb.WriteString(` AND a.channel_title = ?`)
		args = append(args, opts.Channel)
	}

	if opts.Language != "" {
		qb.WriteString(` AND a.language = ?`)
		args = append(args, opts.Language)
	}

	if !opts.Since.IsZero() {
		qb.WriteString(` AND a.analyzed_at >= ?`)
		args = append(args, opts.Since.UTC().Format(time.RFC3339))
	}

	if useFTS {
		qb.WriteString(` ORDER BY analyses_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY a.analyzed_at DESC`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var results []*types.AnalysisResult
	for rows.Next() {
		var resultJSON string
		if err := rows.Scan(&resultJSON); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		var result types.AnalysisResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("decoding stored analysis: %w", err)
		}
		results = append(results, &result)
	}

	return results, rows.Err()
}
