// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"strings"
	"testing"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

func TestLookupCategoryPriorityOrder(t *testing.T) {
	l, err := NewLexicon()
	if err != nil {
		t.Fatalf("NewLexicon() failed: %v", err)
	}

	tests := []struct {
		term string
		want types.Category
	}{
		// Terms in one table only.
		{"python", types.CategoryProgrammingLanguage},
		{"react", types.CategoryFrameworkLibrary},
		{"mongodb", types.CategoryPlatformService},
		{"anthropic", types.CategoryCompanyBrand},
		{"pdf", types.CategoryFileFormat},
		{"grpc", types.CategoryAPIProtocol},
		{"machine learning", types.CategoryTechnicalConcept},

		// Terms in several tables resolve to the highest-priority one.
		{"json", types.CategoryProgrammingLanguage},    // language beats file format
		{"go", types.CategoryProgrammingLanguage},      // language beats file format
		{"graphql", types.CategoryProgrammingLanguage}, // language beats protocol
		{"github", types.CategoryPlatformService},      // platform beats company
		{"stripe", types.CategoryPlatformService},      // platform beats company
		{"unity", types.CategoryFrameworkLibrary},      // framework beats company
		{"oracle", types.CategoryPlatformService},      // platform beats company

		// Case-insensitive lookup.
		{"Python", types.CategoryProgrammingLanguage},
		{"MongoDB", types.CategoryPlatformService},

		// Unknown terms.
		{"frobnicator", types.CategoryUnknown},
		{"", types.CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := l.LookupCategory(tt.term); got != tt.want {
				t.Errorf("LookupCategory(%q) = %s, want %s", tt.term, got, tt.want)
			}
		})
	}
}

func TestLexiconTermsAreLowerCase(t *testing.T) {
	l, err := NewLexicon()
	if err != nil {
		t.Fatalf("NewLexicon() failed: %v", err)
	}

	for _, cat := range categoryPriority {
		for _, term := range l.Terms(cat) {
			if term != strings.ToLower(term) {
				t.Errorf("term %q in %s is not lower case", term, cat)
			}
		}
	}
}

func TestLexiconAllTermsDistinct(t *testing.T) {
	l, err := NewLexicon()
	if err != nil {
		t.Fatalf("NewLexicon() failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, term := range l.AllTerms() {
		if seen[term] {
			t.Errorf("AllTerms() contains %q twice", term)
		}
		seen[term] = true
	}
	if len(l.AllTerms()) == 0 {
		t.Fatal("AllTerms() is empty")
	}
}
