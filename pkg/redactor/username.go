package redactor

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/user"
	"strings"
)

// IdentitySource supplies the ambient process identity consumed by username
// redaction. Production uses the real OS identity; tests inject a fake so
// the engine stays a pure function of its arguments.
type IdentitySource interface {
	Username() string
	HomeDir() string
}

type osIdentity struct{}

func (osIdentity) Username() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}

func (osIdentity) HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// identitySource is queried fresh on every redaction call, never cached.
var identitySource IdentitySource = osIdentity{}

// SetIdentitySource replaces the ambient identity provider and returns the
// previous one so tests can restore it.
func SetIdentitySource(s IdentitySource) IdentitySource {
	prev := identitySource
	identitySource = s
	return prev
}

// HashUsername returns a stable pseudonym for a username: "user_" plus the
// first 8 hex characters of its SHA-256 digest. Deliberately unsalted so
// sessions from the same contributor stay correlatable across runs without
// exposing the identity.
func HashUsername(name string) string {
	sum := sha256.Sum256([]byte(name))
	return "user_" + hex.EncodeToString(sum[:])[:8]
}

// collectUsernameCandidates builds the deduplicated, order-preserving list
// of identifying strings to anonymize: the OS account name, the home
// directory path, then any caller-supplied extras. Blank candidates are
// dropped.
func collectUsernameCandidates(extra []string) []string {
	raw := append([]string{identitySource.Username(), identitySource.HomeDir()}, extra...)

	seen := make(map[string]bool, len(raw))
	candidates := make([]string, 0, len(raw))
	for _, c := range raw {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		candidates = append(candidates, c)
	}
	return candidates
}

// redactUsernames replaces every candidate with its stable hash. Two passes
// run per candidate: a plain substring replace, and a replace of the
// hyphen-delimited form "-name-" that survives in path-derived directory
// encodings (project paths with "/" rewritten to "-").
func redactUsernames(text string, candidates []string) (string, int) {
	count := 0
	for _, name := range candidates {
		hashed := HashUsername(name)

		if n := strings.Count(text, name); n > 0 {
			text = strings.ReplaceAll(text, name, hashed)
			count += n
		}

		dashed := "-" + name + "-"
		if n := strings.Count(text, dashed); n > 0 {
			text = strings.ReplaceAll(text, dashed, "-"+hashed+"-")
			count += n
		}
	}
	return text, count
}
