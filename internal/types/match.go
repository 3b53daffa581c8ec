package types

// JobRequirements holds the requirements derived from a job description.
// It is ephemeral: derived per matching run and never stored.
type JobRequirements struct {
	RequiredSkills          []string `json:"required_skills"`
	RequiredExperienceYears float64  `json:"required_experience_years"` // 0 means unconstrained
}

// Weights configures the linear combination of sub-scores. The caller is
// responsible for keeping the sum at 1.0 so the final score stays in [0,100];
// this is a documented contract, not a runtime check.
type Weights struct {
	Skills     float64 `json:"skills" validate:"gte=0"`
	Experience float64 `json:"experience" validate:"gte=0"`
	Semantic   float64 `json:"semantic" validate:"gte=0"`
	Keywords   float64 `json:"keywords" validate:"gte=0"`
}

// DefaultWeights returns the four-factor preset.
func DefaultWeights() Weights {
	return Weights{Skills: 0.4, Experience: 0.3, Semantic: 0.2, Keywords: 0.1}
}

// LexicalWeights returns the three-factor preset with keywords omitted.
func LexicalWeights() Weights {
	return Weights{Skills: 0.5, Experience: 0.3, Semantic: 0.2, Keywords: 0}
}

// Score thresholds for bucketing a final score into a review status.
const (
	ExcellentMatchThreshold = 80.0
	GoodMatchThreshold      = 60.0
)

// MatchResult combines a candidate record with its sub-scores and final score
// against one job description. Sub-scores are in [0,1]; FinalScore in [0,100].
type MatchResult struct {
	Candidate       CandidateRecord `json:"candidate"`
	SkillsScore     float64         `json:"skills_score"`
	ExperienceScore float64         `json:"experience_score"`
	SemanticScore   float64         `json:"semantic_score"`
	KeywordScore    float64         `json:"keyword_score"`
	FinalScore      float64         `json:"final_score"`
}

// Status buckets the final score for presentation.
func (m *MatchResult) Status() string {
	switch {
	case m.FinalScore >= ExcellentMatchThreshold:
		return "Excellent"
	case m.FinalScore >= GoodMatchThreshold:
		return "Good"
	default:
		return "Needs Review"
	}
}
