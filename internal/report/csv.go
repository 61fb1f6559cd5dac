// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

// csvHeader is the fixed column set of the batch summary export.
var csvHeader = []string{
	"video_id", "title", "channel", "views", "duration",
	"urls_count", "tools_count", "languages_count",
	"frameworks_count", "platforms_count", "analysis_date",
}

// WriteCSV writes a batch summary with one row per analyzed video.
func WriteCSV(w io.Writer, results []*types.AnalysisResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.Video.VideoID,
			r.Video.Title,
			r.Video.ChannelTitle,
			strconv.FormatInt(r.Video.ViewCount, 10),
			r.Video.Duration,
			strconv.Itoa(len(r.Extraction.URLs)),
			strconv.Itoa(len(r.Extraction.ToolsAndSoftware)),
			strconv.Itoa(len(r.Extraction.ProgrammingLanguages)),
			strconv.Itoa(len(r.Extraction.FrameworksAndLibraries)),
			strconv.Itoa(len(r.Extraction.PlatformsAndServices)),
			r.AnalyzedAt.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.Video.VideoID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
