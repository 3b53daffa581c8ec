package types

import "sort"

// Pool collects the match results of one session. It is an in-memory,
// session-scoped container; anything longer-lived is handled by external
// storage collaborators.
type Pool struct {
	results []MatchResult
}

// NewPool returns an empty candidate pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add appends a result to the pool.
func (p *Pool) Add(result MatchResult) {
	p.results = append(p.results, result)
}

// Len returns the number of results in the pool.
func (p *Pool) Len() int {
	return len(p.results)
}

// TopN returns up to n results sorted by final score descending. Ties keep
// insertion order (stable sort, no secondary key).
func (p *Pool) TopN(n int) []MatchResult {
	ranked := p.Ranked()
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Ranked returns all results sorted by final score descending.
func (p *Pool) Ranked() []MatchResult {
	ranked := make([]MatchResult, len(p.results))
	copy(ranked, p.results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})
	return ranked
}

// FilterByScore returns the results whose final score is at least min,
// sorted by final score descending.
func (p *Pool) FilterByScore(min float64) []MatchResult {
	filtered := make([]MatchResult, 0, len(p.results))
	for _, r := range p.Ranked() {
		if r.FinalScore >= min {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
