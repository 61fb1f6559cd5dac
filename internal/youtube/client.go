// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package youtube fetches video metadata from the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/yt-hoover/internal/httputil"
	"github.com/pdiddy/yt-hoover/pkg/types"
)

// apiBase is the YouTube Data API endpoint. Declared as a var so tests
// can substitute an httptest server.
var apiBase = "https://www.googleapis.com/youtube/v3"

// validationVideoID is a well-known public video used to test an API key.
const validationVideoID = "dQw4w9WgXcQ"

// ErrVideoNotFound is returned when the API reports no video for an ID.
var ErrVideoNotFound = errors.New("video not found")

// Client queries the YouTube Data API.
type Client struct {
	HTTPClient *http.Client
	APIKey     string

	// Limiter caps the request rate against the API. Nil disables
	// rate limiting.
	Limiter *rate.Limiter

	cfg types.FetchConfig
}

// NewClient builds a Client from config. The API key must be non-empty.
func NewClient(cfg types.FetchConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		APIKey:     cfg.APIKey,
		Limiter:    limiter,
		cfg:        cfg,
	}, nil
}

// FetchVideo retrieves snippet, statistics, and content details for one
// video. A missing video yields ErrVideoNotFound.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*types.VideoMetadata, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	q := url.Values{}
	q.Set("part", "snippet,statistics,contentDetails")
	q.Set("id", videoID)
	q.Set("key", c.APIKey)
	reqURL := apiBase + "/videos?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("youtube API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube API returned HTTP %d", resp.StatusCode)
	}

	var vr videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("parsing youtube response: %w", err)
	}

	if len(vr.Items) == 0 {
		return nil, fmt.Errorf("fetch video %s: %w", videoID, ErrVideoNotFound)
	}

	return itemToMetadata(vr.Items[0]), nil
}

// ValidateKey checks the configured API key by fetching a known public
// video. Used by the setup command before storing a credential.
func (c *Client) ValidateKey(ctx context.Context) error {
	if _, err := c.FetchVideo(ctx, validationVideoID); err != nil {
		return fmt.Errorf("API key validation: %w", err)
	}
	return nil
}

// YouTube Data API JSON structures, reduced to the fields used.
type videosResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelTitle string `json:"channelTitle"`
		ChannelID    string `json:"channelId"`
		PublishedAt  string `json:"publishedAt"`
		Thumbnails   map[string]struct {
			URL string `json:"url"`
		} `json:"thumbnails"`
		Tags            []string `json:"tags"`
		CategoryID      string   `json:"categoryId"`
		DefaultLanguage string   `json:"defaultLanguage"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

// thumbnailFallback is the resolution preference order.
var thumbnailFallback = []string{"maxres", "high", "medium", "default"}

func itemToMetadata(item videoItem) *types.VideoMetadata {
	m := &types.VideoMetadata{
		VideoID:         item.ID,
		Title:           item.Snippet.Title,
		Description:     item.Snippet.Description,
		ChannelTitle:    item.Snippet.ChannelTitle,
		ChannelID:       item.Snippet.ChannelID,
		Duration:        item.ContentDetails.Duration,
		Tags:            item.Snippet.Tags,
		CategoryID:      item.Snippet.CategoryID,
		DefaultLanguage: item.Snippet.DefaultLanguage,
	}

	if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
		m.PublishedAt = t
	}
	if m.DefaultLanguage == "" {
		m.DefaultLanguage = "en"
	}

	// Statistics arrive as decimal strings; missing values stay zero.
	m.ViewCount, _ = strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
	m.LikeCount, _ = strconv.ParseInt(item.Statistics.LikeCount, 10, 64)
	m.CommentCount, _ = strconv.ParseInt(item.Statistics.CommentCount, 10, 64)

	for _, size := range thumbnailFallback {
		if thumb, ok := item.Snippet.Thumbnails[size]; ok && thumb.URL != "" {
			m.ThumbnailURL = thumb.URL
			break
		}
	}

	return m
}
