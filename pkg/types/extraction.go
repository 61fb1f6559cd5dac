// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Category classifies a lexicon term. A term's category is resolved by
// membership in the category lexicons, checked in a fixed priority order:
// language, framework, platform, company, file format, protocol, concept.
type Category string

const (
	CategoryProgrammingLanguage Category = "programming_language"
	CategoryFrameworkLibrary    Category = "framework_library"
	CategoryPlatformService     Category = "platform_service"
	CategoryCompanyBrand        Category = "company_brand"
	CategoryFileFormat          Category = "file_format"
	CategoryAPIProtocol         Category = "api_protocol"
	CategoryTechnicalConcept    Category = "technical_concept"
	CategoryUnknown             Category = "unknown"
)

// MatchedEntity is a lexicon term found in the input text.
type MatchedEntity struct {
	// Text is the canonical term as stored in the lexicon (lower case),
	// not the casing found in the input.
	Text string `json:"text" yaml:"text"`

	// Confidence is a score between 0.0 and 1.0.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Category is the term's priority-resolved category.
	Category Category `json:"category" yaml:"category"`
}

// SnippetKind distinguishes fenced code blocks from inline code spans.
type SnippetKind string

const (
	SnippetCodeBlock  SnippetKind = "code_block"
	SnippetInlineCode SnippetKind = "inline_code"
)

// CodeSnippet is a code fragment found in the input text.
type CodeSnippet struct {
	// Kind is code_block for triple-backtick fences, inline_code for
	// single-backtick spans.
	Kind SnippetKind `json:"type" yaml:"type"`

	// Language is the fence language tag, or "unknown" when absent.
	// Inline spans are always "unknown".
	Language string `json:"language" yaml:"language"`

	// Code is the snippet content with surrounding whitespace trimmed.
	Code string `json:"code" yaml:"code"`

	// Confidence is 0.9 for fenced blocks and 0.6 for inline spans.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// CommandKindCLI is the kind recorded on every recognized shell command.
const CommandKindCLI = "cli_command"

// CommandMatch is a shell command invocation found in the input text.
type CommandMatch struct {
	// Command is the matched tool and subcommand, trimmed (e.g. "npm install").
	Command string `json:"command" yaml:"command"`

	// Kind is always "cli_command".
	Kind string `json:"type" yaml:"type"`

	// Confidence is fixed at 0.8.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// ConfidenceScores summarizes per-extractor confidence for one result.
// All fields are zero when the input text was empty.
type ConfidenceScores struct {
	// URLExtraction is 0.95 when any URL was found, 0.0 otherwise.
	URLExtraction float64 `json:"url_extraction" yaml:"url_extraction"`

	// EntityExtraction is the mean confidence across ToolsAndSoftware.
	EntityExtraction float64 `json:"entity_extraction" yaml:"entity_extraction"`

	// CodeDetection is the mean confidence across CodeSnippets.
	CodeDetection float64 `json:"code_detection" yaml:"code_detection"`

	// CommandDetection is the mean confidence across Commands.
	CommandDetection float64 `json:"command_detection" yaml:"command_detection"`
}

// ExtractionResult is the unified output of one extraction pass over a text.
// It is created fresh per call, owned by the caller, and never mutated by
// the engine afterwards. The JSON field names are a stable contract for
// report generation.
type ExtractionResult struct {
	// URLs are the distinct URLs found, in first-seen order.
	URLs []string `json:"urls" yaml:"urls"`

	// ToolsAndSoftware merges framework, platform, and software-ish concept
	// matches with their confidence and category retained.
	ToolsAndSoftware []MatchedEntity `json:"tools_and_software" yaml:"tools_and_software"`

	// The seven category lists carry canonical term text only,
	// highest-confidence first.
	ProgrammingLanguages   []string `json:"programming_languages" yaml:"programming_languages"`
	FrameworksAndLibraries []string `json:"frameworks_and_libraries" yaml:"frameworks_and_libraries"`
	PlatformsAndServices   []string `json:"platforms_and_services" yaml:"platforms_and_services"`
	CompaniesAndBrands     []string `json:"companies_and_brands" yaml:"companies_and_brands"`
	FileFormats            []string `json:"file_formats" yaml:"file_formats"`
	APIsAndProtocols       []string `json:"apis_and_protocols" yaml:"apis_and_protocols"`
	TechnicalConcepts      []string `json:"technical_concepts" yaml:"technical_concepts"`

	// CodeSnippets holds fenced blocks first, then inline spans.
	CodeSnippets []CodeSnippet `json:"code_snippets" yaml:"code_snippets"`

	// Commands holds recognized shell command invocations.
	Commands []CommandMatch `json:"commands" yaml:"commands"`

	// ConfidenceScores summarizes extractor confidence for this result.
	ConfidenceScores ConfidenceScores `json:"confidence_scores" yaml:"confidence_scores"`
}
