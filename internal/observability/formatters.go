// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs the requirements derived from the job description.
func (p *Printer) PrintRequirements(requirements *types.JobRequirements) {
	if requirements == nil {
		return
	}

	var sb strings.Builder

	if len(requirements.RequiredSkills) > 0 {
		sb.WriteString("Required skills:\n")
		count := min(len(requirements.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", requirements.RequiredSkills[i]))
		}
		if len(requirements.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(requirements.RequiredSkills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("Required skills: none detected\n")
	}

	sb.WriteString("\n")
	if requirements.RequiredExperienceYears > 0 {
		sb.WriteString(fmt.Sprintf("Required experience: %.0f years", requirements.RequiredExperienceYears))
	} else {
		sb.WriteString("Required experience: unconstrained")
	}

	p.printBox("JOB REQUIREMENTS", sb.String())
}

// PrintCandidate outputs a human-readable summary of one extracted candidate.
func (p *Printer) PrintCandidate(candidate *types.CandidateRecord) {
	if candidate == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", candidate.Name))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", candidate.Email))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", candidate.Phone))
	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", candidate.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", candidate.Education))

	if len(candidate.Skills) > 0 {
		skills := strings.Join(candidate.Skills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:     %s", skills))
	} else {
		sb.WriteString("Skills:     none detected")
	}

	title := "CANDIDATE"
	if candidate.SourceFile != "" {
		title = fmt.Sprintf("CANDIDATE (%s)", candidate.SourceFile)
	}
	p.printBox(title, sb.String())
}

// PrintRanking outputs the ranked match results with scores and status.
func (p *Printer) PrintRanking(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.Candidate.Name))
		sb.WriteString(fmt.Sprintf("    Final: %.2f (%s)\n", result.FinalScore, result.Status()))
		sb.WriteString(fmt.Sprintf("    Skills %.2f · Experience %.2f · Semantic %.2f · Keywords %.2f\n",
			result.SkillsScore, result.ExperienceScore, result.SemanticScore, result.KeywordScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs aggregate statistics for a completed matching run.
func (p *Printer) PrintSummary(results []types.MatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidates processed: %d\n", len(results)))

	if len(results) > 0 {
		top := results[0].FinalScore
		total := 0.0
		for _, result := range results {
			total += result.FinalScore
			if result.FinalScore > top {
				top = result.FinalScore
			}
		}
		sb.WriteString(fmt.Sprintf("Top score:            %.2f\n", top))
		sb.WriteString(fmt.Sprintf("Average score:        %.2f", total/float64(len(results))))
	} else {
		sb.WriteString("No candidates matched")
	}

	p.printBox("MATCH SUMMARY", sb.String())
}
