package redactor

import (
	"math"
	"regexp"
	"strings"
)

// Entropy detection tuning parameters. Empirically chosen; change only
// with corpus evidence.
const (
	// EntropyThreshold is the minimum Shannon entropy (bits/char) for a
	// token to be considered high-entropy.
	EntropyThreshold = 3.5

	// MinEntropyTokenLength is the minimum candidate length in bytes.
	MinEntropyTokenLength = 32
)

// entropyCandidateRegexp matches contiguous runs of base64/hex-alphabet
// characters long enough to be a machine-generated secret.
var entropyCandidateRegexp = regexp.MustCompile(`[A-Za-z0-9+/=_.-]{32,}`)

var uuidRegexp = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// shannonEntropy returns the character-frequency Shannon entropy of s in
// bits per character.
func shannonEntropy(s string) float64 {
	if len(s) == 0 {
		return 0
	}

	freq := make(map[rune]int)
	total := 0
	for _, r := range s {
		freq[r]++
		total++
	}

	entropy := 0.0
	for _, count := range freq {
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// looksLikeSecret applies secondary heuristics that suppress the common
// false positives of a pure entropy check: UUIDs, dotted version strings
// and domain names, and low character-diversity runs (prose, identifiers).
func looksLikeSecret(token string) bool {
	if uuidRegexp.MatchString(token) {
		return false
	}

	if strings.Count(token, ".") > 2 {
		return false
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range token {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// FindHighEntropyTokens returns every token in text that is long enough,
// random enough, and shaped like a secret. Used unconditionally by the
// post-redaction scanner and, when opted in, by the redaction engine.
func FindHighEntropyTokens(text string) []string {
	var tokens []string
	for _, candidate := range entropyCandidateRegexp.FindAllString(text, -1) {
		if len(candidate) < MinEntropyTokenLength {
			continue
		}
		if shannonEntropy(candidate) < EntropyThreshold {
			continue
		}
		if !looksLikeSecret(candidate) {
			continue
		}
		tokens = append(tokens, candidate)
	}
	return tokens
}
