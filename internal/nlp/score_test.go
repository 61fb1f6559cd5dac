// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"strings"
	"testing"
)

func scoreText(t *testing.T, e *Engine, text, term string) float64 {
	t.Helper()
	textLower := strings.ToLower(text)
	return e.Score(textLower, strings.ToLower(term), strings.Fields(textLower))
}

func TestScore(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		text string
		term string
		want float64
	}{
		{
			name: "substring only, no word boundary",
			text: "scar tissue",
			term: "r",
			want: 0.5,
		},
		{
			name: "exact word match",
			text: "we chose python here",
			term: "python",
			want: 0.5 + 0.3,
		},
		{
			name: "repetition bonus below cap",
			text: "python, python",
			term: "python",
			want: 0.5 + 0.3 + 2*0.05,
		},
		{
			name: "repetition bonus capped at 0.2",
			text: strings.Repeat("python ", 6),
			term: "python",
			want: 0.5 + 0.3 + 0.2,
		},
		{
			name: "context keyword inside window",
			text: "built using the python language today",
			term: "python",
			want: 0.5 + 0.3 + 0.1,
		},
		{
			name: "context keyword outside window",
			text: "python one two three four five six using",
			term: "python",
			want: 0.5 + 0.3,
		},
		{
			name: "context bonus applies once across positions",
			text: "using python and also python with extras",
			term: "python",
			want: 0.5 + 0.3 + 2*0.05 + 0.1,
		},
		{
			name: "punctuated term never gains boundary bonus",
			text: "modern c++ code",
			term: "c++",
			want: 0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreText(t, e, tt.text, tt.term)
			if got != tt.want {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.text, tt.term, got, tt.want)
			}
			if got < 0.0 || got > 1.0 {
				t.Errorf("Score(%q, %q) = %v out of [0,1]", tt.text, tt.term, got)
			}
		})
	}
}

func TestScoreClampedToOne(t *testing.T) {
	e := newTestEngine(t)

	// Boundary + capped repetition + context: 0.5+0.3+0.2+0.1 clamps to 1.0.
	text := "using python " + strings.Repeat("python ", 5)
	if got := scoreText(t, e, text, "python"); got != 1.0 {
		t.Errorf("Score = %v, want clamp to 1.0", got)
	}
}
