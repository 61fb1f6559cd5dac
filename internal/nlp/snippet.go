// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"strings"

	"github.com/pdiddy/yt-hoover/pkg/types"
)

const (
	// confidenceCodeBlock is fixed for triple-backtick fenced blocks.
	confidenceCodeBlock = 0.9

	// confidenceInlineCode is fixed for single-backtick spans.
	confidenceInlineCode = 0.6

	// confidenceCommand is fixed for recognized CLI invocations.
	confidenceCommand = 0.8

	// minInlineLength discards trimmed inline spans at or below this
	// length (stray backticks around single characters).
	minInlineLength = 2
)

// ExtractSnippets returns fenced code blocks followed by inline code
// spans. A fence's language tag becomes the snippet language; a missing
// tag yields "unknown". Inline spans are always "unknown". The inline
// scan runs over the whole text, so fence bodies can also surface as
// inline spans; callers wanting only blocks filter by kind.
func (e *Engine) ExtractSnippets(text string) []types.CodeSnippet {
	var snippets []types.CodeSnippet

	for _, m := range e.patterns.codeBlock.FindAllStringSubmatch(text, -1) {
		language := m[1]
		if language == "" {
			language = "unknown"
		}
		snippets = append(snippets, types.CodeSnippet{
			Kind:       types.SnippetCodeBlock,
			Language:   language,
			Code:       strings.TrimSpace(m[2]),
			Confidence: confidenceCodeBlock,
		})
	}

	for _, m := range e.patterns.inlineCode.FindAllStringSubmatch(text, -1) {
		code := strings.TrimSpace(m[1])
		if len(code) <= minInlineLength {
			continue
		}
		snippets = append(snippets, types.CodeSnippet{
			Kind:       types.SnippetInlineCode,
			Language:   "unknown",
			Code:       code,
			Confidence: confidenceInlineCode,
		})
	}

	return snippets
}

// ExtractCommands returns CLI invocations recognized by the fixed tool
// patterns (containers, cloud CLIs, version control, package managers).
// Each match is the tool plus its subcommand, trimmed.
func (e *Engine) ExtractCommands(text string) []types.CommandMatch {
	var commands []types.CommandMatch
	for _, re := range e.patterns.cli {
		for _, m := range re.FindAllString(text, -1) {
			commands = append(commands, types.CommandMatch{
				Command:    strings.TrimSpace(m),
				Kind:       types.CommandKindCLI,
				Confidence: confidenceCommand,
			})
		}
	}
	return commands
}
