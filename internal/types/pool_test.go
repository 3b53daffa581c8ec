package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poolWithScores(scores ...float64) *Pool {
	pool := NewPool()
	for _, s := range scores {
		pool.Add(MatchResult{FinalScore: s})
	}
	return pool
}

func TestPool_RankedDescending(t *testing.T) {
	pool := poolWithScores(92.0, 65.0, 78.0)

	ranked := pool.Ranked()
	require.Len(t, ranked, 3)
	assert.Equal(t, 92.0, ranked[0].FinalScore)
	assert.Equal(t, 78.0, ranked[1].FinalScore)
	assert.Equal(t, 65.0, ranked[2].FinalScore)
}

func TestPool_TopN(t *testing.T) {
	pool := poolWithScores(50.0, 90.0, 70.0, 30.0)

	top := pool.TopN(2)
	require.Len(t, top, 2)
	assert.Equal(t, 90.0, top[0].FinalScore)
	assert.Equal(t, 70.0, top[1].FinalScore)
}

func TestPool_TopN_ZeroReturnsAll(t *testing.T) {
	pool := poolWithScores(50.0, 90.0)

	top := pool.TopN(0)
	assert.Len(t, top, 2)
}

func TestPool_TopN_LargerThanPool(t *testing.T) {
	pool := poolWithScores(50.0)

	top := pool.TopN(10)
	assert.Len(t, top, 1)
}

func TestPool_FilterByScore(t *testing.T) {
	pool := poolWithScores(92.0, 65.0, 78.0, 40.0)

	filtered := pool.FilterByScore(60.0)
	require.Len(t, filtered, 3)
	assert.Equal(t, 92.0, filtered[0].FinalScore)
	assert.Equal(t, 78.0, filtered[1].FinalScore)
	assert.Equal(t, 65.0, filtered[2].FinalScore)
}

func TestPool_TiesKeepInsertionOrder(t *testing.T) {
	pool := NewPool()
	pool.Add(MatchResult{Candidate: CandidateRecord{Name: "first"}, FinalScore: 70.0})
	pool.Add(MatchResult{Candidate: CandidateRecord{Name: "second"}, FinalScore: 70.0})

	ranked := pool.Ranked()
	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].Candidate.Name)
	assert.Equal(t, "second", ranked[1].Candidate.Name)
}

func TestMatchResult_Status(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"excellent at threshold", 80.0, "Excellent"},
		{"excellent above threshold", 95.5, "Excellent"},
		{"good at threshold", 60.0, "Good"},
		{"good below excellent", 79.9, "Good"},
		{"needs review", 59.9, "Needs Review"},
		{"zero", 0.0, "Needs Review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MatchResult{FinalScore: tt.score}
			assert.Equal(t, tt.want, result.Status())
		})
	}
}

func TestCandidateRecord_HasSkill(t *testing.T) {
	record := CandidateRecord{Skills: []string{"python", "sql"}}

	assert.True(t, record.HasSkill("python"))
	assert.False(t, record.HasSkill("java"))
}

func TestWeights_Presets(t *testing.T) {
	four := DefaultWeights()
	assert.InDelta(t, 1.0, four.Skills+four.Experience+four.Semantic+four.Keywords, 0.0001)

	three := LexicalWeights()
	assert.Equal(t, 0.0, three.Keywords)
	assert.InDelta(t, 1.0, three.Skills+three.Experience+three.Semantic, 0.0001)
}
