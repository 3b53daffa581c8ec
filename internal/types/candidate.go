// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentinel values used when a field cannot be extracted from a resume.
// They are normal output, not error states.
const (
	SentinelName      = "Candidate"
	SentinelEmail     = "No email found"
	SentinelPhone     = "No phone found"
	SentinelEducation = "Education not specified"
)

// CandidateRecord represents the structured fields extracted from a single resume.
// Every field is always populated: extraction that finds nothing falls back to
// the documented sentinel value (or 0 for ExperienceYears).
type CandidateRecord struct {
	ID              string   `json:"id,omitempty"`          // Assigned per matching run
	SourceFile      string   `json:"source_file,omitempty"` // Original filename, if known
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Skills          []string `json:"skills"` // Lower-cased vocabulary entries found in the text
	ExperienceYears float64  `json:"experience_years"`
	Education       string   `json:"education"`
	RawText         string   `json:"-"` // Full document text; carries a diagnostic string after decode failure
}

// HasSkill reports whether the record lists the given (lower-cased) skill.
func (c *CandidateRecord) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
