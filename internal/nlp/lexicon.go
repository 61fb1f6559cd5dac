// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"fmt"
	"strings"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

// categoryPriority fixes the order in which category membership is checked
// when resolving a term's category. A term appearing in several tables
// (e.g. "json" is both a language and a file format) resolves to the first
// category in this order.
var categoryPriority = []types.Category{
	types.CategoryProgrammingLanguage,
	types.CategoryFrameworkLibrary,
	types.CategoryPlatformService,
	types.CategoryCompanyBrand,
	types.CategoryFileFormat,
	types.CategoryAPIProtocol,
	types.CategoryTechnicalConcept,
}

// Lexicon holds the immutable category term tables and a priority-resolved
// term-to-category index built once at construction. It is safe to share
// across goroutines; nothing is written after construction.
type Lexicon struct {
	tables     map[types.Category][]string
	categoryOf map[string]types.Category
	allTerms   []string
}

// NewLexicon builds the lexicon from the built-in category tables. It
// returns an error if any table is empty, so a broken build of the
// vocabulary fails at engine construction rather than at first use.
func NewLexicon() (*Lexicon, error) {
	tables := map[types.Category][]string{
		types.CategoryProgrammingLanguage: programmingLanguages,
		types.CategoryFrameworkLibrary:    frameworksLibraries,
		types.CategoryPlatformService:     platformsServices,
		types.CategoryCompanyBrand:        companiesBrands,
		types.CategoryFileFormat:          fileFormats,
		types.CategoryAPIProtocol:         apisProtocols,
		types.CategoryTechnicalConcept:    technicalConcepts,
	}

	l := &Lexicon{
		tables:     tables,
		categoryOf: make(map[string]types.Category),
	}

	seen := make(map[string]bool)
	for _, cat := range categoryPriority {
		terms := tables[cat]
		if len(terms) == 0 {
			return nil, fmt.Errorf("lexicon table for %s is empty", cat)
		}
		for _, term := range terms {
			if term == "" {
				return nil, fmt.Errorf("lexicon table for %s contains an empty term", cat)
			}
			// First category in priority order wins.
			if _, ok := l.categoryOf[term]; !ok {
				l.categoryOf[term] = cat
			}
			if !seen[term] {
				seen[term] = true
				l.allTerms = append(l.allTerms, term)
			}
		}
	}

	return l, nil
}

// LookupCategory resolves a term's category by priority-ordered membership.
// Unknown terms resolve to CategoryUnknown.
func (l *Lexicon) LookupCategory(term string) types.Category {
	if cat, ok := l.categoryOf[strings.ToLower(term)]; ok {
		return cat
	}
	return types.CategoryUnknown
}

// Terms returns the ordered term table for a category. The returned slice
// is the lexicon's own backing array and must not be modified.
func (l *Lexicon) Terms(cat types.Category) []string {
	return l.tables[cat]
}

// AllTerms returns every distinct term across all categories, in priority
// then table order.
func (l *Lexicon) AllTerms() []string {
	return l.allTerms
}
