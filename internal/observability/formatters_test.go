package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(&types.JobRequirements{
		RequiredSkills:          []string{"python", "sql"},
		RequiredExperienceYears: 3,
	})
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENTS")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "sql")
	assert.Contains(t, output, "3 years")
}

func TestPrintRequirements_Unconstrained(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(&types.JobRequirements{})
	output := buf.String()

	assert.Contains(t, output, "none detected")
	assert.Contains(t, output, "unconstrained")
}

func TestPrintRequirements_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCandidate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidate(&types.CandidateRecord{
		SourceFile:      "resume.pdf",
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Phone:           "555-123-4567",
		Skills:          []string{"python", "sql"},
		ExperienceYears: 5,
		Education:       "BSc Mathematics",
	})
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE (resume.pdf)")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "ada@example.com")
	assert.Contains(t, output, "5.0 years")
	assert.Contains(t, output, "python, sql")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking([]types.MatchResult{
		{Candidate: types.CandidateRecord{Name: "Ada"}, FinalScore: 92.5},
		{Candidate: types.CandidateRecord{Name: "Grace"}, FinalScore: 61},
		{Candidate: types.CandidateRecord{Name: "Edsger"}, FinalScore: 40},
	})
	output := buf.String()

	assert.Contains(t, output, "RANKED CANDIDATES")
	assert.Contains(t, output, "#1  Ada")
	assert.Contains(t, output, "Excellent")
	assert.Contains(t, output, "#2  Grace")
	assert.Contains(t, output, "Good")
	assert.Contains(t, output, "#3  Edsger")
	assert.Contains(t, output, "Needs Review")

	// Top-ranked candidate appears before the others
	assert.Less(t, strings.Index(output, "Ada"), strings.Index(output, "Grace"))
}

func TestPrintRanking_TruncatesLongList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.MatchResult, 8)
	for i := range results {
		results[i] = types.MatchResult{Candidate: types.CandidateRecord{Name: "Candidate"}}
	}

	p.PrintRanking(results)
	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary([]types.MatchResult{
		{FinalScore: 90},
		{FinalScore: 50},
	})
	output := buf.String()

	assert.Contains(t, output, "MATCH SUMMARY")
	assert.Contains(t, output, "Candidates processed: 2")
	assert.Contains(t, output, "90.00")
	assert.Contains(t, output, "70.00")
}

func TestPrintSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(nil)
	assert.Contains(t, buf.String(), "No candidates matched")
}
