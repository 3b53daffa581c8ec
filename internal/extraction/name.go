package extraction

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// NameStrategy is one way of finding a candidate's name in resume text.
// Strategies are tried in priority order; the first hit wins.
type NameStrategy interface {
	// ExtractName returns the candidate name and whether one was found.
	ExtractName(ctx context.Context, text string) (string, bool)
}

// nameScanLines bounds how far into the document line-based strategies look.
const nameScanLines = 10

// Tokens that label a name line, checked case-insensitively.
var nameLabels = []string{"name:", "full name:", "candidate:"}

// bareNameRe matches a line of 2-3 whitespace-separated alphabetic tokens,
// each at least 2 letters: a bare personal name with no punctuation.
var bareNameRe = regexp.MustCompile(`^[A-Za-z]{2,}(?:\s+[A-Za-z]{2,}){1,2}$`)

// labelLineStrategy finds lines like "Name: John Doe" near the top of the
// document and returns the text after the first colon.
type labelLineStrategy struct{}

func (labelLineStrategy) ExtractName(_ context.Context, text string) (string, bool) {
	for _, line := range headLines(text, nameScanLines) {
		lower := strings.ToLower(line)
		for _, label := range nameLabels {
			if !strings.Contains(lower, label) {
				continue
			}
			_, after, found := strings.Cut(line, ":")
			after = strings.TrimSpace(after)
			if found && len(after) > 2 {
				return after, true
			}
		}
	}
	return "", false
}

// bareNameLineStrategy finds the first top-of-document line that looks like
// a bare personal name.
type bareNameLineStrategy struct{}

func (bareNameLineStrategy) ExtractName(_ context.Context, text string) (string, bool) {
	for _, line := range headLines(text, nameScanLines) {
		if bareNameRe.MatchString(line) {
			return line, true
		}
	}
	return "", false
}

// emailLocalPartStrategy derives a name from the extracted email address:
// the local part with dots replaced by spaces, title-cased.
type emailLocalPartStrategy struct{}

func (emailLocalPartStrategy) ExtractName(_ context.Context, text string) (string, bool) {
	email := ExtractEmail(text)
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "", false
	}
	return titleCase(strings.ReplaceAll(local, ".", " ")), true
}

// defaultNameStrategies returns the rule-based fallback chain in priority
// order. The model-based strategy, when enabled, is prepended to this chain.
func defaultNameStrategies() []NameStrategy {
	return []NameStrategy{
		labelLineStrategy{},
		bareNameLineStrategy{},
		emailLocalPartStrategy{},
	}
}

// headLines returns up to n trimmed lines from the start of text.
func headLines(text string, n int) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed = append(trimmed, strings.TrimSpace(line))
	}
	return trimmed
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
