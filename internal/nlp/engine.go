// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nlp extracts technical entities, URLs, code snippets, and shell
// commands from free text. The engine is pure computation over immutable
// configuration: every method is a deterministic function of its input,
// safe to call concurrently without synchronization.
package nlp

import (
	"fmt"
	"regexp"
	"strings"

	ahocorasick "github.com/BobuSumisu/aho-corasick"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

// softwareKeywords mark technical-concept matches that belong in the
// merged tools-and-software list.
var softwareKeywords = []string{"tool", "software", "app", "platform"}

// Engine is the extraction entry point. Construct it once with New and
// share it; it holds only immutable state.
type Engine struct {
	lexicon  *Lexicon
	patterns *patternSet
	trie     *ahocorasick.Trie
	boundary map[string]*regexp.Regexp
}

// New builds the engine: lexicon tables, the multi-pattern automaton over
// every term, per-term word-boundary regexes, and the pattern library.
// Any empty table or pattern compile failure is returned immediately;
// a constructed engine cannot fail at extraction time.
func New() (*Engine, error) {
	lexicon, err := NewLexicon()
	if err != nil {
		return nil, fmt.Errorf("building lexicon: %w", err)
	}

	patterns, err := compilePatterns()
	if err != nil {
		return nil, fmt.Errorf("compiling patterns: %w", err)
	}

	boundary, err := compileBoundaries(lexicon.AllTerms())
	if err != nil {
		return nil, fmt.Errorf("compiling term boundaries: %w", err)
	}

	trie := ahocorasick.NewTrieBuilder().
		AddStrings(lexicon.AllTerms()).
		Build()

	return &Engine{
		lexicon:  lexicon,
		patterns: patterns,
		trie:     trie,
		boundary: boundary,
	}, nil
}

// Process runs every extractor over one text and assembles the unified
// result. Empty text returns a result with every collection empty and
// all-zero confidence scores, never an error.
func (e *Engine) Process(text string) types.ExtractionResult {
	if text == "" {
		return types.ExtractionResult{}
	}

	textLower := strings.ToLower(text)
	words := strings.Fields(textLower)
	candidates := e.candidateTerms(textLower)

	match := func(cat types.Category) []types.MatchedEntity {
		return e.matchTerms(textLower, words, candidates, e.lexicon.Terms(cat))
	}

	languages := match(types.CategoryProgrammingLanguage)
	frameworks := match(types.CategoryFrameworkLibrary)
	platforms := match(types.CategoryPlatformService)
	companies := match(types.CategoryCompanyBrand)
	formats := match(types.CategoryFileFormat)
	protocols := match(types.CategoryAPIProtocol)
	concepts := match(types.CategoryTechnicalConcept)

	tools := mergeTools(frameworks, platforms, concepts)

	urls := e.ExtractURLs(text)
	snippets := e.ExtractSnippets(text)
	commands := e.ExtractCommands(text)

	scores := types.ConfidenceScores{
		EntityExtraction: meanEntityConfidence(tools),
		CodeDetection:    meanSnippetConfidence(snippets),
		CommandDetection: meanCommandConfidence(commands),
	}
	if len(urls) > 0 {
		scores.URLExtraction = 0.95
	}

	return types.ExtractionResult{
		URLs:                   urls,
		ToolsAndSoftware:       tools,
		ProgrammingLanguages:   entityTexts(languages),
		FrameworksAndLibraries: entityTexts(frameworks),
		PlatformsAndServices:   entityTexts(platforms),
		CompaniesAndBrands:     entityTexts(companies),
		FileFormats:            entityTexts(formats),
		APIsAndProtocols:       entityTexts(protocols),
		TechnicalConcepts:      entityTexts(concepts),
		CodeSnippets:           snippets,
		Commands:               commands,
		ConfidenceScores:       scores,
	}
}

// mergeTools combines framework and platform matches with the concept
// matches whose canonical text names something software-like.
func mergeTools(frameworks, platforms, concepts []types.MatchedEntity) []types.MatchedEntity {
	var tools []types.MatchedEntity
	tools = append(tools, frameworks...)
	tools = append(tools, platforms...)
	for _, c := range concepts {
		for _, kw := range softwareKeywords {
			if strings.Contains(c.Text, kw) {
				tools = append(tools, c)
				break
			}
		}
	}
	return tools
}

// The mean helpers guard the denominator at 1 so empty lists average to
// zero instead of dividing by zero.

func meanEntityConfidence(entities []types.MatchedEntity) float64 {
	var sum float64
	for _, ent := range entities {
		sum += ent.Confidence
	}
	return sum / float64(max(len(entities), 1))
}

func meanSnippetConfidence(snippets []types.CodeSnippet) float64 {
	var sum float64
	for _, s := range snippets {
		sum += s.Confidence
	}
	return sum / float64(max(len(snippets), 1))
}

func meanCommandConfidence(commands []types.CommandMatch) float64 {
	var sum float64
	for _, c := range commands {
		sum += c.Confidence
	}
	return sum / float64(max(len(commands), 1))
}
