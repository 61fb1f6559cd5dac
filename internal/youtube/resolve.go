// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

// Video ID recognizers. A video is referenced either by a bare 11-character
// ID or by one of the standard URL forms (watch, short link, embed).
var (
	bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	watchPattern  = regexp.MustCompile(`(?:youtube\.com/watch\?(?:[^\s&]*&)*v=)([A-Za-z0-9_-]{11})`)
	shortPattern  = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`)
	embedPattern  = regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`)
)

// ParseVideoID extracts the 11-character video ID from a watch URL, short
// link, embed URL, or bare ID. The input is trimmed first.
func ParseVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty video reference")
	}

	if bareIDPattern.MatchString(input) {
		return input, nil
	}

	for _, re := range []*regexp.Regexp{watchPattern, shortPattern, embedPattern} {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}

	return "", fmt.Errorf("unrecognized video reference: %q", input)
}
