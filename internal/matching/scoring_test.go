package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/skills"
)

func TestSkillsScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate []string
		required  []string
		want      float64
	}{
		{"all required present", []string{"python", "sql", "docker"}, []string{"python", "sql"}, 1.0},
		{"half present", []string{"python"}, []string{"python", "sql"}, 0.5},
		{"none present", []string{"java"}, []string{"python", "sql"}, 0.0},
		{"no requirements", []string{"python"}, nil, 0.0},
		{"empty candidate", nil, []string{"python"}, 0.0},
		{"case insensitive", []string{"Python"}, []string{"python"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SkillsScore(tt.candidate, tt.required), 0.001)
		})
	}
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate float64
		required  float64
		want      float64
	}{
		{"meets exactly", 3, 3, 1.0},
		{"exceeds", 5, 3, 1.0},
		{"partial credit", 1, 3, 1.0 / 3.0},
		{"no requirement", 0, 0, 1.0},
		{"no requirement with experience", 7, 0, 1.0},
		{"no experience against requirement", 0, 3, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExperienceScore(tt.candidate, tt.required), 0.001)
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	text := "Python python looking looking with this data data pipelines"

	keywords := ExtractKeywords(text, skills.Default())
	assert.Equal(t, []string{"looking", "data", "pipelines"}, keywords)
}

func TestExtractKeywords_Capped(t *testing.T) {
	var words []string
	for i := 0; i < 26; i++ {
		words = append(words, "keyword"+string(rune('a'+i)))
	}

	keywords := ExtractKeywords(strings.Join(words, " "), skills.Default())
	assert.Len(t, keywords, maxKeywords)
}

func TestExtractKeywords_ShortTokensDropped(t *testing.T) {
	keywords := ExtractKeywords("go api ml ops big data", skills.Default())
	assert.Equal(t, []string{"data"}, keywords)
}

func TestKeywordScore(t *testing.T) {
	// Job keywords: looking, developer, years, experience, skills.
	// The resume shares developer, years, experience.
	resume := "Senior developer. Experience: many years shipping."

	score := KeywordScore(resume, sampleJob, skills.Default())
	assert.InDelta(t, 0.6, score, 0.001)
}

func TestKeywordScore_EmptyJobText(t *testing.T) {
	assert.Equal(t, 0.0, KeywordScore("some resume text here", "", skills.Default()))
}

func TestKeywordScore_NoOverlap(t *testing.T) {
	assert.Equal(t, 0.0, KeywordScore("completely different resume", sampleJob, skills.Default()))
}
