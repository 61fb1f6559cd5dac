// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"sort"
	"strings"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

// candidateTerms runs the Aho-Corasick automaton once over the lower-cased
// text and returns the distinct lexicon terms present as substrings. One
// pass finds every term regardless of vocabulary size.
func (e *Engine) candidateTerms(textLower string) map[string]bool {
	matches := e.trie.MatchString(textLower)
	if len(matches) == 0 {
		return nil
	}
	found := make(map[string]bool, len(matches))
	for _, m := range matches {
		found[m.MatchString()] = true
	}
	return found
}

// MatchCategory scans the text against one category's term table and
// returns scored matches, highest confidence first. Equal-confidence
// matches keep the table's order. Empty text yields an empty result.
func (e *Engine) MatchCategory(text string, cat types.Category) []types.MatchedEntity {
	textLower := strings.ToLower(text)
	words := strings.Fields(textLower)
	return e.matchTerms(textLower, words, e.candidateTerms(textLower), e.lexicon.Terms(cat))
}

// matchTerms scores each term of one table that the candidate scan found,
// deduplicates by term keeping the higher confidence, and sorts by
// confidence descending. The sort is stable so ties keep table order.
func (e *Engine) matchTerms(textLower string, words []string, candidates map[string]bool, terms []string) []types.MatchedEntity {
	if len(candidates) == 0 {
		return nil
	}

	best := make(map[string]int)
	var entities []types.MatchedEntity

	for _, term := range terms {
		if !candidates[term] {
			continue
		}
		entity := types.MatchedEntity{
			Text:       term,
			Confidence: e.Score(textLower, term, words),
			Category:   e.lexicon.LookupCategory(term),
		}
		if idx, ok := best[term]; ok {
			if entity.Confidence > entities[idx].Confidence {
				entities[idx] = entity
			}
			continue
		}
		best[term] = len(entities)
		entities = append(entities, entity)
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Confidence > entities[j].Confidence
	})
	return entities
}

// entityTexts flattens matched entities to their canonical term strings.
func entityTexts(entities []types.MatchedEntity) []string {
	if len(entities) == 0 {
		return nil
	}
	out := make([]string, len(entities))
	for i, ent := range entities {
		out[i] = ent.Text
	}
	return out
}
