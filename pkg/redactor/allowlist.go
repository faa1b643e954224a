package redactor

import (
	"strconv"
	"strings"
)

// publicResolvers are well-known resolver addresses that identify no one.
var publicResolvers = map[string]bool{
	"8.8.8.8": true,
	"8.8.4.4": true,
	"1.1.1.1": true,
	"1.0.0.1": true,
}

// allowedEmailDomains are example/test domains and bot/service senders that
// appear in ordinary technical text without identifying a person.
var allowedEmailDomains = map[string]bool{
	"example.com":              true,
	"example.org":              true,
	"example.net":              true,
	"noreply.github.com":       true,
	"users.noreply.github.com": true,
	"dependabot.com":           true,
	"snyk.io":                  true,
	"renovatebot.com":          true,
}

// isAllowedIP reports whether an IPv4 address is known-safe: loopback,
// unspecified, RFC1918 private, link-local, or a well-known public resolver.
// Malformed input is not allowed (it falls through to normal scanning).
func isAllowedIP(ip string) bool {
	if publicResolvers[ip] {
		return true
	}

	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return false
	}

	octets := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		octets[i] = n
	}

	switch {
	case octets[0] == 127: // loopback
		return true
	case octets[0] == 0 && octets[1] == 0 && octets[2] == 0 && octets[3] == 0: // unspecified
		return true
	case octets[0] == 10: // 10.0.0.0/8
		return true
	case octets[0] == 172 && octets[1] >= 16 && octets[1] <= 31: // 172.16.0.0/12
		return true
	case octets[0] == 192 && octets[1] == 168: // 192.168.0.0/16
		return true
	case octets[0] == 169 && octets[1] == 254: // link-local
		return true
	}

	return false
}

// isAllowedEmail reports whether the address's domain (the part after the
// last "@", case-insensitive) is on the fixed allowlist.
func isAllowedEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return allowedEmailDomains[strings.ToLower(email[at+1:])]
}
