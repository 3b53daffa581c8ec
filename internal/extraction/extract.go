// Package extraction turns raw resume text into a structured candidate
// record. Every sub-extraction is a pure function of the input text; fields
// that cannot be found degrade to documented sentinel values, so extraction
// is total and never propagates a failure.
package extraction

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Extractor extracts structured candidate records from resume text.
type Extractor struct {
	vocab            *skills.Vocabulary
	nameStrategies   []NameStrategy
	experiencePolicy ExperiencePolicy
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithNameStrategy prepends a name strategy to the rule-based fallback
// chain. Used to plug in model-based named-entity extraction.
func WithNameStrategy(strategy NameStrategy) Option {
	return func(e *Extractor) {
		e.nameStrategies = append([]NameStrategy{strategy}, e.nameStrategies...)
	}
}

// WithExperiencePolicy overrides the experience aggregation policy.
func WithExperiencePolicy(policy ExperiencePolicy) Option {
	return func(e *Extractor) {
		e.experiencePolicy = policy
	}
}

// New creates an Extractor around the shared skill vocabulary.
func New(vocab *skills.Vocabulary, opts ...Option) *Extractor {
	e := &Extractor{
		vocab:            vocab,
		nameStrategies:   defaultNameStrategies(),
		experiencePolicy: PolicyMaxAcrossAll,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract produces a candidate record from resume text. It always returns a
// fully populated record: missing fields carry sentinel values. Calling it
// twice on the same text yields the same record.
func (e *Extractor) Extract(ctx context.Context, text string) types.CandidateRecord {
	return types.CandidateRecord{
		Name:            e.extractName(ctx, text),
		Email:           ExtractEmail(text),
		Phone:           ExtractPhone(text),
		Skills:          e.vocab.FoundIn(text),
		ExperienceYears: ExtractExperience(text, e.experiencePolicy),
		Education:       ExtractEducation(text),
		RawText:         text,
	}
}

// ExtractDocument decodes document bytes and extracts a candidate record.
// Decode failure does not propagate: the result is a sentinel-filled record
// whose raw text carries a diagnostic string. That diagnostic is never
// re-parsed for structured fields.
func (e *Extractor) ExtractDocument(ctx context.Context, data []byte, format ingestion.Format, source string) types.CandidateRecord {
	text, err := ingestion.DecodeDocument(data, format)
	if err != nil {
		return e.FailedDocument(err, source)
	}

	record := e.Extract(ctx, text)
	record.SourceFile = source
	return record
}

// FailedDocument returns the degraded record for a document that could not
// be read or decoded. Callers use it to keep one record per input even when
// the file itself is unreadable.
func (e *Extractor) FailedDocument(cause error, source string) types.CandidateRecord {
	record := sentinelRecord(cause)
	record.SourceFile = source
	return record
}

// extractName runs the name strategy chain; the sentinel is the final
// fallback when no strategy finds anything.
func (e *Extractor) extractName(ctx context.Context, text string) string {
	for _, strategy := range e.nameStrategies {
		if name, ok := strategy.ExtractName(ctx, text); ok {
			return name
		}
	}
	return types.SentinelName
}

// sentinelRecord is the degraded record produced when a document cannot be
// decoded to text.
func sentinelRecord(cause error) types.CandidateRecord {
	return types.CandidateRecord{
		Name:      types.SentinelName,
		Email:     types.SentinelEmail,
		Phone:     types.SentinelPhone,
		Skills:    nil,
		Education: types.SentinelEducation,
		RawText:   fmt.Sprintf("Error reading file: %v", cause),
	}
}
