// Package redact strips sensitive information from strings before they are
// logged. Provider access keys travel inside request URLs and bearer tokens
// inside headers, so both can end up in transport error messages.
package redact

import (
	"regexp"
	"strings"
)

// Placeholders substituted for redacted content.
const (
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedJWTPlaceholder   = "[REDACTED_JWT]"
	RedactedTokenPlaceholder = "[REDACTED_TOKEN]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; earlier rules see the raw input.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		replacement: "[STACK_TRACE_REDACTED]",
	},
	{
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		replacement: RedactedJWTPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]+`),
		replacement: RedactedTokenPlaceholder,
	},
	{
		// ExchangeRate-API style paths: /<key>/latest/USD
		pattern:     regexp.MustCompile(`/[A-Za-z0-9_-]{6,}/(latest|pair|enriched|history|codes|quota)\b`),
		replacement: "/" + RedactedKeyPlaceholder + "/$1",
	},
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|access[_-]?key|secret|token)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: "[REDACTED_EMAIL]",
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Secrets replaces every occurrence of the given secret values before
// applying the pattern rules. Empty secrets are ignored.
func Secrets(input string, secrets ...string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		input = strings.ReplaceAll(input, secret, RedactedKeyPlaceholder)
	}
	return String(input)
}
