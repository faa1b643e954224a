package redactor

import "regexp"

// scanSnippetLen bounds how much of a surviving match a hit description
// quotes back to the operator.
const scanSnippetLen = 80

// ScanForRemaining re-applies every built-in pattern and the entropy
// detector against already-processed text without modifying it. Each
// surviving match yields a hit description of the form
// "[category] <first 80 chars of the match>". This is the last line of
// defense run immediately before output leaves the machine, and again when
// a human reviews an export.
func ScanForRemaining(text string) []string {
	var hits []string

	for _, p := range DefaultPatterns() {
		re, err := regexp.Compile(p.Regexp)
		if err != nil {
			continue
		}
		for _, match := range re.FindAllString(text, -1) {
			if p.Allow != nil && p.Allow(match) {
				continue
			}
			hits = append(hits, formatHit(p.Name, match))
		}
	}

	for _, token := range FindHighEntropyTokens(text) {
		hits = append(hits, formatHit("high-entropy", token))
	}

	return hits
}

func formatHit(category, match string) string {
	if len(match) > scanSnippetLen {
		match = match[:scanSnippetLen]
	}
	return "[" + category + "] " + match
}
