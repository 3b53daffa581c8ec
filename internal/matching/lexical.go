package matching

import (
	"context"
	"math"
	"regexp"
	"strings"
)

// termRe matches the word tokens used for lexical similarity.
var termRe = regexp.MustCompile(`\b[a-z0-9]{2,}\b`)

// LexicalSimilarity scores two texts by TF-IDF cosine over their shared
// term space. It needs no network or API key and is fully deterministic,
// which makes it the default similarity strategy.
type LexicalSimilarity struct{}

// NewLexicalSimilarity creates the default lexical similarity strategy.
func NewLexicalSimilarity() *LexicalSimilarity {
	return &LexicalSimilarity{}
}

// Score computes the TF-IDF cosine similarity of a and b. It returns an
// error when either text yields no usable terms.
func (s *LexicalSimilarity) Score(_ context.Context, a, b string) (float64, error) {
	termsA := termCounts(a)
	termsB := termCounts(b)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0, &SimilarityError{Message: "text yields no terms"}
	}

	// Smoothed IDF over the two-document corpus: terms shared by both
	// documents weigh less than terms unique to one.
	idf := func(term string) float64 {
		df := 0
		if termsA[term] > 0 {
			df++
		}
		if termsB[term] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	var dot, normA, normB float64
	union := make(map[string]bool, len(termsA)+len(termsB))
	for term := range termsA {
		union[term] = true
	}
	for term := range termsB {
		union[term] = true
	}
	for term := range union {
		weight := idf(term)
		wa := float64(termsA[term]) * weight
		wb := float64(termsB[term]) * weight
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0, &SimilarityError{Message: "zero-magnitude term vector"}
	}
	return clampUnit(dot / (math.Sqrt(normA) * math.Sqrt(normB))), nil
}

// termCounts tokenizes text into lower-case term frequencies, dropping
// stop words.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, term := range termRe.FindAllString(strings.ToLower(text), -1) {
		if stopWords[term] {
			continue
		}
		counts[term]++
	}
	return counts
}
