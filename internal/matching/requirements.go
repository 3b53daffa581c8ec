package matching

import (
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DeriveRequirements extracts the hiring signal from free-form job
// description text: the vocabulary skills it mentions and the years of
// experience it asks for. The experience figure uses the first pattern
// match, since job postings state their requirement up front.
func DeriveRequirements(jobDescription string, vocab *skills.Vocabulary) types.JobRequirements {
	return types.JobRequirements{
		RequiredSkills:          vocab.FoundIn(jobDescription),
		RequiredExperienceYears: extraction.ExtractExperience(jobDescription, extraction.PolicyFirstMatch),
	}
}
