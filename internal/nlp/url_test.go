// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"reflect"
	"testing"
)

func TestExtractURLs(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "scheme-qualified URL",
			text: "code at https://github.com/example/repo today",
			want: []string{"https://github.com/example/repo", "github.com/example/repo"},
		},
		{
			name: "trailing punctuation trimmed",
			text: "visit https://example.com/docs.",
			want: []string{"https://example.com/docs", "example.com/docs"},
		},
		{
			name: "www-prefixed host",
			text: "see www.example.org for info",
			want: []string{"www.example.org"},
		},
		{
			name: "bare domain with allowed suffix",
			text: "hosted on mysite.dev now",
			want: []string{"mysite.dev"},
		},
		{
			name: "short candidates discarded",
			text: "a.co is too short",
			want: nil,
		},
		{
			name: "duplicates removed",
			text: "https://example.com and https://example.com again",
			want: []string{"https://example.com", "example.com"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExtractURLs(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractURLs(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
