package matching

import (
	"context"
	"math"

	"github.com/jonathan/resume-matcher/internal/llm"
)

// EmbeddingSimilarity scores two texts by cosine similarity of their model
// embeddings. It captures paraphrase and synonym overlap the lexical
// strategy cannot see, at the cost of a network call per text.
type EmbeddingSimilarity struct {
	client llm.Client
}

// NewEmbeddingSimilarity creates an embedding-backed similarity strategy.
func NewEmbeddingSimilarity(client llm.Client) *EmbeddingSimilarity {
	return &EmbeddingSimilarity{client: client}
}

// Score embeds both texts and returns their cosine similarity, clamped
// to [0, 1].
func (s *EmbeddingSimilarity) Score(ctx context.Context, a, b string) (float64, error) {
	vecA, err := s.client.EmbedText(ctx, a)
	if err != nil {
		return 0, &SimilarityError{Message: "embedding first text", Cause: err}
	}
	vecB, err := s.client.EmbedText(ctx, b)
	if err != nil {
		return 0, &SimilarityError{Message: "embedding second text", Cause: err}
	}

	score, err := cosine(vecA, vecB)
	if err != nil {
		return 0, err
	}
	return clampUnit(score), nil
}

// cosine computes the cosine similarity of two equal-length vectors.
func cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, &SimilarityError{Message: "embedding vectors have mismatched dimensions"}
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, &SimilarityError{Message: "zero-magnitude embedding vector"}
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

var _ Similarity = (*EmbeddingSimilarity)(nil)
var _ Similarity = (*LexicalSimilarity)(nil)
