// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"regexp"
	"strings"
)

// contextKeywords are the tokens that grant the context bonus when found
// near an occurrence of the term.
var contextKeywords = []string{
	"using", "with", "framework", "library", "tool", "platform", "service",
}

// contextWindow is the number of tokens inspected on either side of a
// token containing the term.
const contextWindow = 5

// Score computes the confidence for one term found in the text. The
// formula is a fixed contract, reproduced bit-for-bit across calls:
//
//	base 0.5
//	+0.3 when the term occurs at least once as an exact word
//	+min(0.2, occurrences*0.05) when the term occurs more than once
//	+0.1 (at most once) when a context keyword appears within five
//	  tokens of a token containing the term
//	clamped to 1.0
//
// textLower and termLower must already be lower-cased; words is the
// whitespace-split token list of textLower.
func (e *Engine) Score(textLower, termLower string, words []string) float64 {
	confidence := 0.5

	if re, ok := e.boundary[termLower]; ok && re.MatchString(textLower) {
		confidence += 0.3
	}

	occurrences := strings.Count(textLower, termLower)
	if occurrences > 1 {
		bonus := float64(occurrences) * 0.05
		if bonus > 0.2 {
			bonus = 0.2
		}
		confidence += bonus
	}

	if hasContextKeyword(words, termLower) {
		confidence += 0.1
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// hasContextKeyword reports whether any token containing the term has a
// context keyword within the surrounding window. The bonus applies once,
// so the scan stops at the first hit.
func hasContextKeyword(words []string, term string) bool {
	for pos, word := range words {
		if !strings.Contains(word, term) {
			continue
		}
		start := pos - contextWindow
		if start < 0 {
			start = 0
		}
		end := pos + contextWindow
		if end > len(words) {
			end = len(words)
		}
		for _, w := range words[start:end] {
			for _, kw := range contextKeywords {
				if w == kw {
					return true
				}
			}
		}
	}
	return false
}

// compileBoundaries builds the per-term exact-word regexes used by the
// word-boundary bonus. Terms are escaped, so punctuation-bearing entries
// like "c++" keep their literal meaning.
func compileBoundaries(terms []string) (map[string]*regexp.Regexp, error) {
	boundary := make(map[string]*regexp.Regexp, len(terms))
	for _, term := range terms {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			return nil, err
		}
		boundary[term] = re
	}
	return boundary, nil
}
