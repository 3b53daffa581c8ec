// Package matching scores structured candidate records against a job
// description. Each match combines four sub-scores (skills, experience,
// semantic similarity, keywords) into a weighted final score on a 0-100
// scale; a batch of candidates is scored concurrently and returned ranked.
package matching

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxConcurrentScores bounds how many candidates are scored in parallel.
const maxConcurrentScores = 8

// Matcher scores candidates against a job description with a fixed skill
// vocabulary, similarity strategy, and weight profile.
type Matcher struct {
	vocab      *skills.Vocabulary
	similarity Similarity
	weights    types.Weights
}

// NewMatcher creates a Matcher. A nil similarity falls back to the lexical
// strategy.
func NewMatcher(vocab *skills.Vocabulary, similarity Similarity, weights types.Weights) *Matcher {
	if similarity == nil {
		similarity = NewLexicalSimilarity()
	}
	return &Matcher{
		vocab:      vocab,
		similarity: similarity,
		weights:    weights,
	}
}

// Score evaluates one candidate against a job description.
func (m *Matcher) Score(ctx context.Context, record types.CandidateRecord, jobDescription string) types.MatchResult {
	requirements := DeriveRequirements(jobDescription, m.vocab)
	return m.scoreAgainst(ctx, record, jobDescription, requirements)
}

// MatchAll scores every candidate against the job description and returns
// the results ranked by final score, highest first. Candidates with equal
// scores keep their input order. A similarity failure zeroes that
// candidate's semantic sub-score instead of failing the batch; the only
// returned error is context cancellation.
func (m *Matcher) MatchAll(ctx context.Context, records []types.CandidateRecord, jobDescription string) ([]types.MatchResult, error) {
	requirements := DeriveRequirements(jobDescription, m.vocab)
	results := make([]types.MatchResult, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, record := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = m.scoreAgainst(ctx, record, jobDescription, requirements)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	return results, nil
}

// scoreAgainst computes the weighted match for one candidate given
// already-derived requirements.
func (m *Matcher) scoreAgainst(ctx context.Context, record types.CandidateRecord, jobDescription string, requirements types.JobRequirements) types.MatchResult {
	skillsScore := SkillsScore(record.Skills, requirements.RequiredSkills)
	experienceScore := ExperienceScore(record.ExperienceYears, requirements.RequiredExperienceYears)
	keywordScore := KeywordScore(record.RawText, jobDescription, m.vocab)

	semanticScore := 0.0
	if m.weights.Semantic > 0 {
		if score, err := m.similarity.Score(ctx, record.RawText, jobDescription); err == nil {
			semanticScore = score
		}
	}

	final := m.weights.Skills*skillsScore +
		m.weights.Experience*experienceScore +
		m.weights.Semantic*semanticScore +
		m.weights.Keywords*keywordScore

	return types.MatchResult{
		Candidate:       record,
		SkillsScore:     round2(skillsScore),
		ExperienceScore: round2(experienceScore),
		SemanticScore:   round2(semanticScore),
		KeywordScore:    round2(keywordScore),
		FinalScore:      round2(clampPercent(final * 100)),
	}
}

// clampPercent bounds a final score to [0, 100].
func clampPercent(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// round2 rounds to two decimal places for stable report output.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
