package redactor

import (
	"regexp"
	"strings"
)

// Redact removes sensitive data from a single string. Stages run in a fixed
// order, each transforming the previous stage's output: built-in patterns,
// user-supplied custom patterns, literal redact-strings, username hashing,
// and finally the opt-in entropy pass. The reported category list preserves
// first-seen order with no duplicates.
func Redact(text string, opts Options) Result {
	if !opts.Enabled {
		return Result{Text: text}
	}

	total := 0
	var types []string
	seen := make(map[string]bool)
	record := func(category string) {
		if !seen[category] {
			seen[category] = true
			types = append(types, category)
		}
	}

	out := text

	for _, p := range DefaultPatterns() {
		var n int
		out, n = applyPattern(out, p)
		if n > 0 {
			total += n
			record(p.Name)
		}
	}

	for _, raw := range opts.CustomPatterns {
		re, err := regexp.Compile(raw)
		if err != nil {
			// A malformed user pattern must not abort the pipeline.
			continue
		}
		n := 0
		out = re.ReplaceAllStringFunc(out, func(string) string {
			n++
			return placeholder("custom")
		})
		if n > 0 {
			total += n
			record("custom")
		}
	}

	for _, literal := range opts.RedactStrings {
		if literal == "" {
			continue
		}
		if n := strings.Count(out, literal); n > 0 {
			out = strings.ReplaceAll(out, literal, placeholder("user-specified"))
			total += n
			record("user-specified")
		}
	}

	candidates := collectUsernameCandidates(opts.RedactUsernames)
	var n int
	out, n = redactUsernames(out, candidates)
	if n > 0 {
		total += n
		record("username")
	}

	if opts.RedactHighEntropy {
		replaced := make(map[string]bool)
		for _, token := range FindHighEntropyTokens(out) {
			if replaced[token] {
				continue
			}
			replaced[token] = true
			total += strings.Count(out, token)
			out = strings.ReplaceAll(out, token, placeholder("high-entropy"))
			record("high-entropy")
		}
	}

	return Result{Text: out, RedactedCount: total, Types: types}
}
