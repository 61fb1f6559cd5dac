// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"testing"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

func TestExtractSnippetsFencedBlocks(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name         string
		text         string
		wantLanguage string
		wantCode     string
	}{
		{
			name:         "language tag",
			text:         "```python\nprint('hi')\n```",
			wantLanguage: "python",
			wantCode:     "print('hi')",
		},
		{
			name:         "missing language tag",
			text:         "```\nls -la\n```",
			wantLanguage: "unknown",
			wantCode:     "ls -la",
		},
		{
			name:         "multi-line body trimmed",
			text:         "```go\n\nfunc main() {}\n\n```",
			wantLanguage: "go",
			wantCode:     "func main() {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippets := e.ExtractSnippets(tt.text)

			var blocks []types.CodeSnippet
			for _, s := range snippets {
				if s.Kind == types.SnippetCodeBlock {
					blocks = append(blocks, s)
				}
			}
			if len(blocks) != 1 {
				t.Fatalf("got %d fenced blocks, want 1: %+v", len(blocks), snippets)
			}
			if blocks[0].Language != tt.wantLanguage {
				t.Errorf("language = %q, want %q", blocks[0].Language, tt.wantLanguage)
			}
			if blocks[0].Code != tt.wantCode {
				t.Errorf("code = %q, want %q", blocks[0].Code, tt.wantCode)
			}
			if blocks[0].Confidence != 0.9 {
				t.Errorf("confidence = %v, want 0.9", blocks[0].Confidence)
			}
		})
	}
}

func TestExtractSnippetsInline(t *testing.T) {
	e := newTestEngine(t)

	snippets := e.ExtractSnippets("run `npm start` but ignore `ls` and `x`")

	if len(snippets) != 1 {
		t.Fatalf("got %d snippets, want 1 (short spans discarded): %+v", len(snippets), snippets)
	}
	s := snippets[0]
	if s.Kind != types.SnippetInlineCode {
		t.Errorf("kind = %q, want %q", s.Kind, types.SnippetInlineCode)
	}
	if s.Code != "npm start" {
		t.Errorf("code = %q, want %q", s.Code, "npm start")
	}
	if s.Language != "unknown" {
		t.Errorf("language = %q, want %q", s.Language, "unknown")
	}
	if s.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", s.Confidence)
	}
}

func TestExtractSnippetsUnmatchedFence(t *testing.T) {
	e := newTestEngine(t)

	// A stray opening fence is not an error; it simply does not match.
	snippets := e.ExtractSnippets("```python\nno closing fence here")
	for _, s := range snippets {
		if s.Kind == types.SnippetCodeBlock {
			t.Errorf("unmatched fence produced a block: %+v", s)
		}
	}
}

func TestExtractCommands(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "container tool at line start",
			text: "docker build .",
			want: []string{"docker build"},
		},
		{
			name: "package manager mid-sentence",
			text: "then run npm install to fetch deps",
			want: []string{"npm install"},
		},
		{
			name: "multiple groups ordered by pattern group",
			text: "kubectl apply -f x.yaml\ngit push origin main\naws s3 ls",
			want: []string{"kubectl apply", "aws s3", "git push"},
		},
		{
			name: "tool name inside a word is ignored",
			text: "the mongoose package",
			want: nil,
		},
		{
			name: "no subcommand means no match",
			text: "we like docker",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExtractCommands(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractCommands(%q) = %+v, want commands %v", tt.text, got, tt.want)
			}
			for i, c := range got {
				if c.Command != tt.want[i] {
					t.Errorf("command[%d] = %q, want %q", i, c.Command, tt.want[i])
				}
				if c.Confidence != 0.8 {
					t.Errorf("command[%d] confidence = %v, want 0.8", i, c.Confidence)
				}
			}
		})
	}
}
