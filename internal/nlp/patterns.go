// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"fmt"
	"regexp"
)

// patternSet holds every regular expression the engine uses, compiled once
// at construction. A compile failure is a construction error, never a
// runtime one.
type patternSet struct {
	urls     []*regexp.Regexp
	git      []*regexp.Regexp
	packages []*regexp.Regexp
	cli      []*regexp.Regexp

	codeBlock  *regexp.Regexp
	inlineCode *regexp.Regexp
}

// urlPatternSrcs recognize scheme-qualified URLs, www-prefixed hosts, and
// bare domains with a fixed TLD allow-list. Applied case-insensitively.
var urlPatternSrcs = []string{
	`(?i)https?://(?:[-\w.])+(?:[:\d]+)?(?:/(?:[\w/_.])*(?:\?(?:[\w&=%.])*)?(?:#(?:[\w.])*)?)?`,
	`(?i)www\.(?:[-\w.])+(?:[:\d]+)?(?:/(?:[\w/_.])*(?:\?(?:[\w&=%.])*)?(?:#(?:[\w.])*)?)?`,
	`(?i)(?:[-\w.])+\.(?:com|org|net|edu|gov|io|co|ai|dev|app|tech|cloud)(?:/(?:[\w/_.])*)?`,
}

// gitPatternSrcs recognize hosted-repository references and git invocations.
var gitPatternSrcs = []string{
	`github\.com/[\w-]+/[\w-]+`,
	`gitlab\.com/[\w-]+/[\w-]+`,
	`bitbucket\.org/[\w-]+/[\w-]+`,
	`git clone\s+\S+`,
	`git\s+(?:add|commit|push|pull|merge|checkout|branch)\s+\S*`,
}

// packagePatternSrcs recognize package-manager installs and import
// directives across ecosystems.
var packagePatternSrcs = []string{
	`npm\s+install\s+[\w@/-]+`,
	`pip\s+install\s+[\w-]+`,
	`yarn\s+add\s+[\w@/-]+`,
	`composer\s+require\s+[\w/-]+`,
	`gem\s+install\s+[\w-]+`,
	`cargo\s+add\s+[\w-]+`,
	`go\s+get\s+[\w/./-]+`,
	`import\s+[\w.]+`,
	`from\s+[\w.]+\s+import`,
	`require\s*\(\s*['"][\w@/-]+['"]\s*\)`,
	`@import\s+['"][\w@/-]+['"]`,
}

// cliPatternSrcs recognize tool-plus-subcommand invocations at a line
// start or word boundary. Multiline so ^ anchors at each line.
var cliPatternSrcs = []string{
	`(?m)(?:^|\s)(docker|kubectl|helm|terraform|ansible|vagrant|chef|puppet)\s+\w+`,
	`(?m)(?:^|\s)(aws|gcloud|az)\s+\w+`,
	`(?m)(?:^|\s)(git|svn|hg)\s+\w+`,
	`(?m)(?:^|\s)(npm|yarn|pip|composer|gem|cargo|go)\s+\w+`,
}

const (
	codeBlockSrc  = `(?s)` + "```" + `(\w+)?\n(.*?)\n` + "```"
	inlineCodeSrc = "`([^`]+)`"
)

// compilePatterns builds the full pattern set, failing on the first
// pattern that does not compile.
func compilePatterns() (*patternSet, error) {
	p := &patternSet{}

	groups := []struct {
		name string
		srcs []string
		dst  *[]*regexp.Regexp
	}{
		{"url", urlPatternSrcs, &p.urls},
		{"git", gitPatternSrcs, &p.git},
		{"package", packagePatternSrcs, &p.packages},
		{"cli", cliPatternSrcs, &p.cli},
	}
	for _, g := range groups {
		for _, src := range g.srcs {
			re, err := regexp.Compile(src)
			if err != nil {
				return nil, fmt.Errorf("compiling %s pattern %q: %w", g.name, src, err)
			}
			*g.dst = append(*g.dst, re)
		}
	}

	var err error
	if p.codeBlock, err = regexp.Compile(codeBlockSrc); err != nil {
		return nil, fmt.Errorf("compiling code block pattern: %w", err)
	}
	if p.inlineCode, err = regexp.Compile(inlineCodeSrc); err != nil {
		return nil, fmt.Errorf("compiling inline code pattern: %w", err)
	}

	return p, nil
}

// findAllDistinct applies each pattern in order and collects whole-match
// strings, deduplicated in first-seen order.
func findAllDistinct(patterns []*regexp.Regexp, text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, re := range patterns {
		for _, m := range re.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}
