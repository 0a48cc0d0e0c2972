// Package redact masks credentials, tokens and personal data in strings
// before they reach the logs.
package redact

import "regexp"

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules run in order; earlier rules see the unmodified input.
var rules = []rule{
	// user:password@ in connection URLs, keeping scheme and host.
	{regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*://)[^/@\s:]+:[^/@\s]+@`), "${1}[REDACTED]@"},
	// key=value / key: value secrets in DSNs and payloads.
	{regexp.MustCompile(`(?i)\b(password|passwd|pwd|secret|jwt_secret)(\s*[=:]\s*"?)[^\s"&,]+`), "${1}${2}[REDACTED]"},
	// JSON password fields inside logged request bodies.
	{regexp.MustCompile(`(?i)("password"\s*:\s*)"[^"]*"`), `${1}"[REDACTED]"`},
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), "[REDACTED_JWT]"},
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._~+/=-]{8,}`), "Bearer [REDACTED]"},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},
	// Literal values in SQL fragments quoted by driver errors.
	{regexp.MustCompile(`(?i)\b(values|where|set)\b[^;]*`), "${1} [REDACTED_SQL]"},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	out := input
	for _, r := range rules {
		out = r.pattern.ReplaceAllString(out, r.replacement)
	}
	return out
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
