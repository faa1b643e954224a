package redactor

import "regexp"

// DefaultPatterns returns the built-in detector library in application order.
// Order matters: earlier replacements can consume text a later pattern would
// otherwise re-match (e.g. bearer-token runs before jwt so an Authorization
// header is reported once). Value-matching rules exclude text starting with
// "[" so the [REDACTED:...] placeholders never re-match on a second pass.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:   "private-key",
			Regexp: `(?s)-----BEGIN [A-Z ]*(?:PRIVATE KEY|CERTIFICATE)-----[^-]*-----END [A-Z ]*(?:PRIVATE KEY|CERTIFICATE)-----`,
		},
		{
			Name:   "anthropic-key",
			Regexp: `\bsk-ant-[A-Za-z0-9_-]{24,}`,
		},
		{
			Name:   "openai-key",
			Regexp: `\bsk-(?:proj-)?[A-Za-z0-9]{32,}\b`,
		},
		{
			Name:   "github-token",
			Regexp: `\bgh[pousr]_[A-Za-z0-9]{36,255}\b`,
		},
		{
			Name:   "huggingface-token",
			Regexp: `\bhf_[A-Za-z0-9]{30,}\b`,
		},
		{
			Name:   "npm-token",
			Regexp: `\bnpm_[A-Za-z0-9]{36}\b`,
		},
		{
			Name:   "pypi-token",
			Regexp: `pypi-AgEIcHlwaS5vcmc[A-Za-z0-9_-]{50,}`,
		},
		{
			Name:   "slack-token",
			Regexp: `\bxox[baprs]-[A-Za-z0-9-]{10,72}`,
		},
		{
			Name:   "aws-access-key",
			Regexp: `\b(?:AKIA|ASIA|ABIA|ACCA)[0-9A-Z]{16}\b`,
		},
		{
			Name:   "aws-secret-key",
			Regexp: `(?i)(aws_secret_access_key|secret_access_key)(\s*[=:]\s*["']?)([A-Za-z0-9/+=]{40})`,
			Replace: func(match string, groups []string) string {
				return groups[1] + groups[2] + placeholder("aws-secret-key")
			},
		},
		{
			Name:   "connection-string",
			Regexp: `(?i)\b((?:postgres(?:ql)?|mysql|mongodb(?:\+srv)?|redis|amqp)://[^:/@\s]+:)([^@\s\[][^@\s]*)(@[^\s]+)`,
			Replace: func(match string, groups []string) string {
				return groups[1] + placeholder("connection-string") + groups[3]
			},
		},
		{
			Name:   "bearer-token",
			Regexp: `(?i)\b(Bearer\s+)([A-Za-z0-9_.+/=-]{20,})`,
			Replace: func(match string, groups []string) string {
				return groups[1] + placeholder("bearer-token")
			},
		},
		{
			Name:   "jwt",
			Regexp: `\beyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`,
		},
		{
			Name:   "webhook-url",
			Regexp: `https://hooks\.slack\.com/services/[A-Za-z0-9/_-]+|https://discord(?:app)?\.com/api/webhooks/[0-9]+/[A-Za-z0-9_-]+|https://[a-z0-9.-]+\.webhook\.office\.com/[^\s"']+`,
		},
		{
			Name:   "cli-secret",
			Regexp: `(--(?:token|api-key|apikey|secret|password|passwd|auth-token|access-token|private-key)[= ])([^\s\[]\S*)`,
			Replace: func(match string, groups []string) string {
				return groups[1] + placeholder("cli-secret")
			},
		},
		{
			Name:   "url-secret",
			Regexp: `(?i)([?&](?:token|api_key|apikey|key|secret|password|access_token|auth|signature|sig)=)([^&\s"'\[][^&\s"']*)`,
			Replace: func(match string, groups []string) string {
				return groups[1] + placeholder("url-secret")
			},
		},
		{
			Name:   "env-secret",
			Regexp: `([A-Z][A-Z0-9_]*(?:_TOKEN|_KEY|_SECRET|_PASSWORD|_CREDENTIAL|_CREDENTIALS|_ACCESS_TOKEN|_PRIVATE_KEY)=)("[^"\[][^"]*"|'[^'\[][^']*'|[^\s\[]\S*)`,
			Replace: func(match string, groups []string) string {
				return groups[1] + placeholder("env-secret")
			},
		},
		{
			Name:   "password",
			Regexp: `(?i)\b(password|passwd)(\s*[=:]\s*)([^\s\[]\S*)`,
			Replace: func(match string, groups []string) string {
				return groups[1] + groups[2] + placeholder("password")
			},
		},
		{
			Name:   "email",
			Regexp: `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
			Allow:  isAllowedEmail,
		},
		{
			Name:   "ipv4",
			Regexp: `\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`,
			Allow:  isAllowedIP,
		},
		{
			Name:   "phone",
			Regexp: `(?:\+1[-.\s]?)?\(?[2-9]\d{2}\)?[-.\s]\d{3}[-.\s]\d{4}\b|\+[1-9]\d{9,13}\b`,
		},
		{
			Name:   "payment-card",
			Regexp: `\b(?:4\d{3}|5[1-5]\d{2}|3[47]\d{2}|6(?:011|5\d{2}))(?:[ -]?\d{4}){2}[ -]?\d{1,4}\b`,
		},
	}
}

// applyPattern runs one detector over text, honoring its allow-predicate,
// and returns the transformed text plus the number of redactions made.
// The matcher is derived fresh from the pattern's rule on every call so
// no matching state can leak between invocations.
func applyPattern(text string, p Pattern) (string, int) {
	re, err := regexp.Compile(p.Regexp)
	if err != nil {
		// Built-in rules are covered by tests; a broken rule scans nothing.
		return text, 0
	}

	count := 0
	out := re.ReplaceAllStringFunc(text, func(match string) string {
		if p.Allow != nil && p.Allow(match) {
			return match
		}
		count++
		if p.Replace == nil {
			return placeholder(p.Name)
		}
		groups := re.FindStringSubmatch(match)
		if groups == nil {
			return placeholder(p.Name)
		}
		return p.Replace(match, groups)
	})
	return out, count
}
