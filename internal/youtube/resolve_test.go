// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package youtube

import "testing"

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"bare ID with whitespace", "  dQw4w9WgXcQ\n", "dQw4w9WgXcQ", false},
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch URL with extra params", "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch URL with trailing params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"no scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"empty input", "", "", true},
		{"too-short ID", "abc123", "", true},
		{"unrelated URL", "https://example.com/video", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVideoID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
