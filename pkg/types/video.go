// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// VideoMetadata holds the metadata returned by the YouTube Data API for a
// single video.
type VideoMetadata struct {
	// VideoID is the 11-character YouTube video identifier.
	VideoID string `json:"video_id" yaml:"video_id"`

	// Title is the video title.
	Title string `json:"title" yaml:"title"`

	// Description is the full video description.
	Description string `json:"description" yaml:"description"`

	// ChannelTitle is the display name of the uploading channel.
	ChannelTitle string `json:"channel_title" yaml:"channel_title"`

	// ChannelID is the uploading channel's identifier.
	ChannelID string `json:"channel_id" yaml:"channel_id"`

	// PublishedAt is the video publication time.
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`

	// Duration is the ISO 8601 duration string (e.g. "PT4M13S").
	Duration string `json:"duration" yaml:"duration"`

	// ViewCount, LikeCount, and CommentCount are zero when the API
	// omits the statistic.
	ViewCount    int64 `json:"view_count" yaml:"view_count"`
	LikeCount    int64 `json:"like_count" yaml:"like_count"`
	CommentCount int64 `json:"comment_count" yaml:"comment_count"`

	// ThumbnailURL is the highest-resolution thumbnail available
	// (maxres, high, medium, then default).
	ThumbnailURL string `json:"thumbnail_url" yaml:"thumbnail_url"`

	// Tags are the uploader-assigned video tags.
	Tags []string `json:"tags" yaml:"tags"`

	// CategoryID is the numeric YouTube category (e.g. "28" for
	// Science & Technology).
	CategoryID string `json:"category_id" yaml:"category_id"`

	// DefaultLanguage is the description language code, defaulting to "en".
	DefaultLanguage string `json:"default_language" yaml:"default_language"`
}

// WatchURL returns the canonical watch page URL for the video.
func (m *VideoMetadata) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + m.VideoID
}
