package redactor

// Options configures a redaction run. It is built once per CLI invocation
// from the persisted config and passed by value into every call; the core
// never defaults or mutates it.
type Options struct {
	Enabled           bool     `json:"enabled"`
	CustomPatterns    []string `json:"custom_patterns,omitempty"`
	RedactUsernames   []string `json:"redact_usernames,omitempty"`
	RedactStrings     []string `json:"redact_strings,omitempty"`
	RedactHighEntropy bool     `json:"redact_high_entropy,omitempty"`
}

// Result is the outcome of redacting a single string.
// RedactedCount == 0 implies Types is empty and Text equals the input.
type Result struct {
	Text          string
	RedactedCount int
	Types         []string
}

// Pattern is a single secret/PII detector: a category name, a match rule,
// an optional replacement builder, and an optional allow-predicate that
// exempts known-safe matches. Patterns are immutable and shared across calls.
type Pattern struct {
	// Name is the category tag reported in Result.Types and embedded in
	// the [REDACTED:name] placeholder. Names are unique across the library.
	Name string

	// Regexp is the match rule as regex source text. A matcher is derived
	// from it on each application so no matching state survives a call.
	Regexp string

	// Replace builds the replacement for a match, given the full match and
	// its submatches. Nil means replace the whole match with the standard
	// placeholder. Prefix-preserving patterns (CLI flags, URL parameters)
	// use this to keep the non-secret part.
	Replace func(match string, groups []string) string

	// Allow reports whether this specific match is known-safe and should be
	// left untouched and uncounted. Nil means always redact.
	Allow func(match string) bool
}

// placeholder returns the standard replacement marker for a category.
func placeholder(category string) string {
	return "[REDACTED:" + category + "]"
}
