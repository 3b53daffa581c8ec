package matching

import "context"

// Similarity computes a semantic similarity score in [0, 1] between two
// texts. Implementations are swappable: the default is a purely lexical
// cosine measure, with a model-embedding variant available when an API key
// is configured.
type Similarity interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

// clampUnit bounds a score to [0, 1].
func clampUnit(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
