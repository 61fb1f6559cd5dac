// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import "strings"

// urlTrimCutset is stripped from both ends of every URL candidate.
const urlTrimCutset = ".,;:!?"

// minURLLength discards trimmed candidates at or below this length as
// likely false positives of the bare-domain recognizer.
const minURLLength = 5

// ExtractURLs applies the three URL recognizers independently and unions
// their matches, trimmed of surrounding punctuation and deduplicated in
// first-seen order.
func (e *Engine) ExtractURLs(text string) []string {
	seen := make(map[string]bool)
	var urls []string

	for _, re := range e.patterns.urls {
		for _, match := range re.FindAllString(text, -1) {
			url := strings.Trim(match, urlTrimCutset)
			if len(url) <= minURLLength {
				continue
			}
			if !seen[url] {
				seen[url] = true
				urls = append(urls, url)
			}
		}
	}
	return urls
}

// GitReferences returns distinct hosted-repository references and git
// invocations found in the text, in first-seen order.
func (e *Engine) GitReferences(text string) []string {
	return findAllDistinct(e.patterns.git, text)
}

// PackageDirectives returns distinct package-manager install commands and
// import directives found in the text, in first-seen order.
func (e *Engine) PackageDirectives(text string) []string {
	return findAllDistinct(e.patterns.packages, text)
}
