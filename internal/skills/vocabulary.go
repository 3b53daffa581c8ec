// Package skills provides the shared skill vocabulary used by both the
// resume extractor and the match scorer.
package skills

import "strings"

// Vocabulary is a finite, immutable set of recognized skill terms. It is
// loaded once at startup and injected wherever skills are matched, so the
// extractor and the scorer always agree on what counts as a skill.
type Vocabulary struct {
	entries []string
	index   map[string]bool
}

// defaultEntries is the built-in skill vocabulary. Entries are lower-cased;
// multi-word terms are matched as-is.
var defaultEntries = []string{
	"python", "java", "javascript", "sql", "aws", "docker", "kubernetes",
	"machine learning", "deep learning", "react", "angular", "vue",
	"node.js", "django", "flask", "fastapi", "mongodb", "postgresql",
	"mysql", "redis", "git", "jenkins", "ci/cd", "agile", "scrum",
	"tableau", "power bi", "excel", "tensorflow", "pytorch", "sklearn",
	"pandas", "numpy", "matplotlib", "seaborn", "plotly",
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	return New(defaultEntries)
}

// New builds a vocabulary from the given terms. Terms are lower-cased and
// deduplicated; order of first appearance is preserved so matching output
// is deterministic.
func New(terms []string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]bool, len(terms))}
	for _, term := range terms {
		normalized := strings.ToLower(strings.TrimSpace(term))
		if normalized == "" || v.index[normalized] {
			continue
		}
		v.entries = append(v.entries, normalized)
		v.index[normalized] = true
	}
	return v
}

// Entries returns the vocabulary terms in their canonical order.
func (v *Vocabulary) Entries() []string {
	entries := make([]string, len(v.entries))
	copy(entries, v.entries)
	return entries
}

// Len returns the number of terms in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// Contains reports whether term is a vocabulary entry. The term is expected
// to be lower-cased already.
func (v *Vocabulary) Contains(term string) bool {
	return v.index[term]
}

// FoundIn returns the vocabulary entries contained in text, matched by
// case-insensitive substring containment. No partial or fuzzy matching:
// an entry either appears verbatim (ignoring case) or it does not.
func (v *Vocabulary) FoundIn(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, entry := range v.entries {
		if strings.Contains(lower, entry) {
			found = append(found, entry)
		}
	}
	return found
}
