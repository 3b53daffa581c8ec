package extraction

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// educationKeywords flag a line as describing education.
var educationKeywords = []string{
	"bachelor", "master", "phd", "mba", "bs", "ms", "ba", "ma",
	"university", "college", "degree", "graduated",
}

// educationMaxLen caps the returned education snippet.
const educationMaxLen = 80

// ExtractEducation returns the first line mentioning an education keyword,
// truncated to a fixed length, or the documented sentinel.
func ExtractEducation(text string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, keyword := range educationKeywords {
			if strings.Contains(lower, keyword) {
				snippet := strings.TrimSpace(line)
				if len(snippet) > educationMaxLen {
					snippet = snippet[:educationMaxLen]
				}
				return snippet
			}
		}
	}
	return types.SentinelEducation
}
