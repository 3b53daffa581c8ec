package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
)

// stopWords are common filler words excluded from keyword comparison.
var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "have": true,
	"from": true, "they": true, "what": true,
}

// keywordRe matches purely alphabetic tokens of at least four characters.
var keywordRe = regexp.MustCompile(`\b[a-z]{4,}\b`)

// maxKeywords caps the derived keyword set so one verbose posting cannot
// dominate the comparison.
const maxKeywords = 20

// SkillsScore is the fraction of required skills the candidate has.
// Returns 0 when the job names no required skills, so an empty requirement
// never inflates a candidate.
func SkillsScore(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0.0
	}

	have := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		have[strings.ToLower(skill)] = true
	}

	matched := 0
	for _, required := range requiredSkills {
		if have[strings.ToLower(required)] {
			matched++
		}
	}
	return float64(matched) / float64(len(requiredSkills))
}

// ExperienceScore compares candidate years against the requirement.
// A job with no stated requirement accepts everyone; a candidate short of
// the requirement gets linear partial credit.
func ExperienceScore(candidateYears, requiredYears float64) float64 {
	if requiredYears <= 0 {
		return 1.0
	}
	if candidateYears >= requiredYears {
		return 1.0
	}
	if candidateYears <= 0 {
		return 0.0
	}
	return candidateYears / requiredYears
}

// ExtractKeywords derives the distinctive keyword set of a text: alphabetic
// tokens of four or more characters, minus stop words and vocabulary skills
// (those are already credited by the skills sub-score). Order of first
// appearance is preserved and the set is capped, keeping the derivation
// deterministic for identical input.
func ExtractKeywords(text string, vocab *skills.Vocabulary) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, token := range keywordRe.FindAllString(strings.ToLower(text), -1) {
		if stopWords[token] || vocab.Contains(token) || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// KeywordScore is the fraction of the job's keywords that also appear in
// the resume. Returns 0 when the job text yields no keywords.
func KeywordScore(resumeText, jobDescription string, vocab *skills.Vocabulary) float64 {
	jobKeywords := ExtractKeywords(jobDescription, vocab)
	if len(jobKeywords) == 0 {
		return 0.0
	}

	resumeSet := make(map[string]bool)
	for _, keyword := range ExtractKeywords(resumeText, vocab) {
		resumeSet[keyword] = true
	}

	matched := 0
	for _, keyword := range jobKeywords {
		if resumeSet[keyword] {
			matched++
		}
	}
	return float64(matched) / float64(len(jobKeywords))
}
