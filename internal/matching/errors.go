package matching

import "fmt"

// SimilarityError indicates a semantic similarity computation failed.
// Callers treat a failed similarity as a zero sub-score rather than
// aborting the whole match.
type SimilarityError struct {
	Message string
	Cause   error
}

func (e *SimilarityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("similarity error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("similarity error: %s", e.Message)
}

func (e *SimilarityError) Unwrap() error {
	return e.Cause
}
