package extraction

import (
	"regexp"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// ExtractEmail returns the first email address found in text, or the
// documented sentinel when none matches.
func ExtractEmail(text string) string {
	if match := emailRe.FindString(text); match != "" {
		return match
	}
	return types.SentinelEmail
}

// ExtractPhone returns the first North-American-style phone number found in
// text (optional country code, optional parens, `-`/`.`/space separators),
// or the documented sentinel when none matches.
func ExtractPhone(text string) string {
	if match := phoneRe.FindString(text); match != "" {
		return match
	}
	return types.SentinelPhone
}
