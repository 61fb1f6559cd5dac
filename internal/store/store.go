// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists analysis results in a SQLite history database
// with full-text search over titles, channels, and descriptions.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

// Store manages the analysis history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int

	// fts is false when the driver was built without the sqlite_fts5
	// tag; search then falls back to substring matching.
	fts bool
}

// NewStore opens or creates the history database at cfg.DBPath,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join("analyses", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			video_id TEXT NOT NULL UNIQUE,
			title TEXT,
			channel_title TEXT,
			description TEXT,
			language TEXT,
			published_at TEXT,
			analyzed_at TEXT,
			extraction_method TEXT,
			url_count INTEGER,
			tool_count INTEGER,
			language_count INTEGER,
			content_hash TEXT,
			result TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_channel ON analyses(channel_title)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='analyses_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	s.fts = true

	if ftsExists > 0 {
		// The table exists but may be unreadable when an earlier build
		// had fts5 compiled in and this one does not.
		if _, err := s.db.Exec(`SELECT count(*) FROM analyses_fts`); err != nil {
			if !strings.Contains(err.Error(), "fts5") {
				return fmt.Errorf("checking FTS table: %w", err)
			}
			s.fts = false
		}
		return nil
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE analyses_fts USING fts5(title, channel_title, description, content=analyses, content_rowid=rowid)`,
			`CREATE TRIGGER analyses_ai AFTER INSERT ON analyses BEGIN
				INSERT INTO analyses_fts(rowid, title, channel_title, description)
				VALUES (new.rowid, new.title, new.channel_title, new.description);
			END`,
			`CREATE TRIGGER analyses_ad AFTER DELETE ON analyses BEGIN
				INSERT INTO analyses_fts(analyses_fts, rowid, title, channel_title, description)
				VALUES('delete', old.rowid, old.title, old.channel_title, old.description);
			END`,
			`CREATE TRIGGER analyses_au AFTER UPDATE ON analyses BEGIN
				INSERT INTO analyses_fts(analyses_fts, rowid, title, channel_title, description)
				VALUES('delete', old.rowid, old.title, old.channel_title, old.description);
				INSERT INTO analyses_fts(rowid, title, channel_title, description)
				VALUES (new.rowid, new.title, new.channel_title, new.description);
			END`,
			// Index rows saved before the FTS table existed.
			`INSERT INTO analyses_fts(analyses_fts) VALUES('rebuild')`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				// A driver built without the sqlite_fts5 tag has no fts5
				// module. The store still works; search degrades to
				// substring matching.
				if strings.Contains(err.Error(), "fts5") {
					s.fts = false
					return nil
				}
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Save upserts one analysis keyed by video ID. Re-analyzing a video
// replaces its stored result.
func (s *Store) Save(ctx context.Context, result *types.AnalysisResult, contentHash uint64) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	video := result.Video
	publishedAt := ""
	if !video.PublishedAt.IsZero() {
		publishedAt = video.PublishedAt.UTC().Format(time.RFC3339)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (video_id, title, channel_title, description, language,
			published_at, analyzed_at, extraction_method,
			url_count, tool_count, language_count, content_hash, result)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(video_id) DO UPDATE SET
			title=excluded.title, channel_title=excluded.channel_title,
			description=excluded.description, language=excluded.language,
			published_at=excluded.published_at, analyzed_at=excluded.analyzed_at,
			extraction_method=excluded.extraction_method,
			url_count=excluded.url_count, tool_count=excluded.tool_count,
			language_count=excluded.language_count,
			content_hash=excluded.content_hash, result=excluded.result`,
		video.VideoID, video.Title, video.ChannelTitle, video.Description,
		video.DefaultLanguage, publishedAt,
		result.AnalyzedAt.UTC().Format(time.RFC3339),
		string(result.ExtractionMethod),
		len(result.Extraction.URLs),
		len(result.Extraction.ToolsAndSoftware),
		len(result.Extraction.ProgrammingLanguages),
		strconv.FormatUint(contentHash, 16),
		string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("saving analysis for %s: %w", video.VideoID, err)
	}
	return nil
}

// HasAnalysis reports whether the video was already analyzed with the
// same source content. A changed hash means the video metadata changed
// and the analysis is stale.
func (s *Store) HasAnalysis(videoID string, contentHash uint64) (bool, error) {
	var stored string
	err := s.db.QueryRow(
		`SELECT content_hash FROM analyses WHERE video_id = ?`, videoID,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking analysis history: %w", err)
	}
	return stored == strconv.FormatUint(contentHash, 16), nil
}
