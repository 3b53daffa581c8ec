package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// ExperiencePolicy selects how numeric experience matches are aggregated.
type ExperiencePolicy string

const (
	// PolicyMaxAcrossAll takes the maximum numeric value across all matches
	// of all patterns. This is the default.
	PolicyMaxAcrossAll ExperiencePolicy = "max"
	// PolicyFirstMatch takes the first pattern's first match, stopping at the
	// first pattern that matches at all. Kept as a compatibility toggle.
	PolicyFirstMatch ExperiencePolicy = "first"
)

// experiencePatterns are tried against lower-cased text, in order.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*yr`),
	regexp.MustCompile(`experience.*?(\d+)`),
}

// ExtractExperience estimates years of experience mentioned in text.
// Returns 0 when no pattern matches.
func ExtractExperience(text string, policy ExperiencePolicy) float64 {
	lower := strings.ToLower(text)

	if policy == PolicyFirstMatch {
		for _, pattern := range experiencePatterns {
			if match := pattern.FindStringSubmatch(lower); match != nil {
				return parseYears(match[1])
			}
		}
		return 0
	}

	maxYears := 0.0
	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			if years := parseYears(match[1]); years > maxYears {
				maxYears = years
			}
		}
	}
	return maxYears
}

func parseYears(digits string) float64 {
	years, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return years
}
