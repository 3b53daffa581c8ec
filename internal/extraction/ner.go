package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
)

// nerPromptMaxChars bounds how much resume text is sent to the model.
// The name almost always appears near the top of the document.
const nerPromptMaxChars = 2000

// NERNameStrategy extracts the candidate name with a model-based
// named-entity recognizer. It is an optional enhancement behind the same
// NameStrategy interface as the rule-based chain; when the model call fails
// the chain simply falls through to the next strategy.
type NERNameStrategy struct {
	client llm.Client
}

// NewNERNameStrategy creates a model-based name strategy.
func NewNERNameStrategy(client llm.Client) *NERNameStrategy {
	return &NERNameStrategy{client: client}
}

// SentinelUnknown is the sentinel the model-based recognizer reports when
// it finds no person name in the text.
const SentinelUnknown = "Unknown Candidate"

type nerResponse struct {
	Name string `json:"name"`
}

// ExtractName asks the model for the person name at the top of the resume.
func (s *NERNameStrategy) ExtractName(ctx context.Context, text string) (string, bool) {
	if s.client == nil {
		return "", false
	}

	snippet := text
	if len(snippet) > nerPromptMaxChars {
		snippet = snippet[:nerPromptMaxChars]
	}

	prompt := buildNERPrompt(snippet)
	response, err := s.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", false
	}

	var parsed nerResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &parsed); err != nil {
		return "", false
	}

	name := strings.TrimSpace(parsed.Name)
	if name == "" || name == SentinelUnknown {
		return SentinelUnknown, true
	}
	return name, true
}

// buildNERPrompt constructs the named-entity extraction prompt.
func buildNERPrompt(snippet string) string {
	var sb strings.Builder
	sb.WriteString("You are a named-entity recognizer for resumes. ")
	sb.WriteString("Find the candidate's full personal name in the text below.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\n  \"name\": string // the person's full name, or \"" + SentinelUnknown + "\" if none is present\n}\n\n")
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract the name directly from the text, do not invent one.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(snippet)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

var _ NameStrategy = (*NERNameStrategy)(nil)
