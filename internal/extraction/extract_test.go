package extraction

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

const sampleResume = `John Smith
Contact: jane.doe@example.com
Phone: (555) 123-4567

Bachelor of Science in Computer Science, State University, graduated 2018

Senior software engineer with 5 years of experience building Python services.
Skills: Python, SQL, Docker, Machine Learning
`

func newTestExtractor(opts ...Option) *Extractor {
	return New(skills.Default(), opts...)
}

func TestExtract_FullResume(t *testing.T) {
	record := newTestExtractor().Extract(context.Background(), sampleResume)

	assert.Equal(t, "John Smith", record.Name)
	assert.Equal(t, "jane.doe@example.com", record.Email)
	assert.Equal(t, "(555) 123-4567", record.Phone)
	assert.Contains(t, record.Skills, "python")
	assert.Contains(t, record.Skills, "sql")
	assert.Contains(t, record.Skills, "docker")
	assert.Contains(t, record.Skills, "machine learning")
	assert.Equal(t, 5.0, record.ExperienceYears)
	assert.Contains(t, record.Education, "Bachelor of Science")
	assert.Equal(t, sampleResume, record.RawText)
}

func TestExtract_AlwaysPopulated(t *testing.T) {
	// Every field must carry a value (sentinel or real) for any input
	inputs := []string{
		"",
		"\n\n\n",
		"no structured information here whatsoever",
		strings.Repeat("x", 10000),
	}

	for _, input := range inputs {
		record := newTestExtractor().Extract(context.Background(), input)

		assert.NotEmpty(t, record.Name)
		assert.NotEmpty(t, record.Email)
		assert.NotEmpty(t, record.Phone)
		assert.NotEmpty(t, record.Education)
		assert.GreaterOrEqual(t, record.ExperienceYears, 0.0)
	}
}

func TestExtract_SentinelsWhenNothingFound(t *testing.T) {
	record := newTestExtractor().Extract(context.Background(), "completely unrelated prose without signals")

	assert.Equal(t, types.SentinelEmail, record.Email)
	assert.Equal(t, types.SentinelPhone, record.Phone)
	assert.Equal(t, types.SentinelEducation, record.Education)
	assert.Equal(t, 0.0, record.ExperienceYears)
	assert.Empty(t, record.Skills)
}

func TestExtract_Idempotent(t *testing.T) {
	extractor := newTestExtractor()

	first := extractor.Extract(context.Background(), sampleResume)
	second := extractor.Extract(context.Background(), sampleResume)
	assert.Equal(t, first, second)
}

func TestExtractDocument_DecodeFailureDegrades(t *testing.T) {
	record := newTestExtractor().ExtractDocument(context.Background(), []byte("garbage"), ingestion.FormatPDF, "broken.pdf")

	assert.Equal(t, types.SentinelName, record.Name)
	assert.Equal(t, types.SentinelEmail, record.Email)
	assert.Equal(t, types.SentinelPhone, record.Phone)
	assert.Equal(t, types.SentinelEducation, record.Education)
	assert.Equal(t, "broken.pdf", record.SourceFile)
	assert.True(t, strings.HasPrefix(record.RawText, "Error reading file: "))
	// The diagnostic string is not re-parsed for structured fields
	assert.Empty(t, record.Skills)
}

func TestExtractDocument_PlainText(t *testing.T) {
	record := newTestExtractor().ExtractDocument(context.Background(), []byte(sampleResume), ingestion.FormatText, "resume.txt")

	assert.Equal(t, "John Smith", record.Name)
	assert.Equal(t, "resume.txt", record.SourceFile)
}

func TestExtractName_LabelLine(t *testing.T) {
	text := "Resume\nFull Name: Alice Wonder\nalice@example.com"

	record := newTestExtractor().Extract(context.Background(), text)
	assert.Equal(t, "Alice Wonder", record.Name)
}

func TestExtractName_LabelBeatsBareLine(t *testing.T) {
	text := "Candidate: Bob Stone\nCarol Danvers\n"

	record := newTestExtractor().Extract(context.Background(), text)
	assert.Equal(t, "Bob Stone", record.Name)
}

func TestExtractName_BareLine(t *testing.T) {
	text := "Mary Jane Watson\nSoftware Developer, 3 years experience"

	record := newTestExtractor().Extract(context.Background(), text)
	assert.Equal(t, "Mary Jane Watson", record.Name)
}

func TestExtractName_EmailFallback(t *testing.T) {
	text := "Resume 2024!\nReach me at jane.doe@example.com for details."

	record := newTestExtractor().Extract(context.Background(), text)
	assert.Equal(t, "Jane Doe", record.Name)
}

func TestExtractName_Sentinel(t *testing.T) {
	record := newTestExtractor().Extract(context.Background(), "### no name anywhere ###")
	assert.Equal(t, types.SentinelName, record.Name)
}

func TestExtractName_OnlyScansFirstTenLines(t *testing.T) {
	text := strings.Repeat("...\n", 12) + "Deep Name\n"

	record := newTestExtractor().Extract(context.Background(), text)
	assert.Equal(t, types.SentinelName, record.Name)
}

func TestExtractName_CustomStrategyRunsFirst(t *testing.T) {
	extractor := newTestExtractor(WithNameStrategy(fixedNameStrategy{"Model Name"}))

	record := extractor.Extract(context.Background(), sampleResume)
	assert.Equal(t, "Model Name", record.Name)
}

type fixedNameStrategy struct{ name string }

func (s fixedNameStrategy) ExtractName(_ context.Context, _ string) (string, bool) {
	return s.name, true
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", ExtractEmail("Contact: jane.doe@example.com"))
	assert.Equal(t, types.SentinelEmail, ExtractEmail("no address here"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"parenthesized area code", "call (555) 123-4567 today", "(555) 123-4567"},
		{"dotted", "555.123.4567", "555.123.4567"},
		{"country code", "+1 555 123 4567", "+1 555 123 4567"},
		{"missing", "no digits", types.SentinelPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractExperience_MaxAcrossAll(t *testing.T) {
	text := "2 years at Acme, then 7 years at Globex. Total experience: 9"

	years := ExtractExperience(text, PolicyMaxAcrossAll)
	assert.Equal(t, 9.0, years)
}

func TestExtractExperience_FirstMatch(t *testing.T) {
	text := "2 years at Acme, then 7 years at Globex"

	years := ExtractExperience(text, PolicyFirstMatch)
	assert.Equal(t, 2.0, years)
}

func TestExtractExperience_PlusSuffix(t *testing.T) {
	years := ExtractExperience("3+ years experience required", PolicyMaxAcrossAll)
	assert.Equal(t, 3.0, years)
}

func TestExtractExperience_YrAbbreviation(t *testing.T) {
	years := ExtractExperience("4 yr tenure", PolicyMaxAcrossAll)
	assert.Equal(t, 4.0, years)
}

func TestExtractExperience_NoMatch(t *testing.T) {
	assert.Equal(t, 0.0, ExtractExperience("fresh graduate", PolicyMaxAcrossAll))
	assert.Equal(t, 0.0, ExtractExperience("fresh graduate", PolicyFirstMatch))
}

func TestExtractEducation(t *testing.T) {
	text := "Work history\nMaster of Science, MIT\nmore text"

	snippet := ExtractEducation(text)
	assert.Equal(t, "Master of Science, MIT", snippet)
}

func TestExtractEducation_Truncated(t *testing.T) {
	long := "Bachelor degree " + strings.Repeat("x", 200)

	snippet := ExtractEducation(long)
	require.LessOrEqual(t, len(snippet), 80)
	assert.True(t, strings.HasPrefix(snippet, "Bachelor degree"))
}

func TestExtractEducation_Sentinel(t *testing.T) {
	assert.Equal(t, types.SentinelEducation, ExtractEducation("just work experience, no schooling keywords"))
}
