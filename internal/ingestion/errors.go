package ingestion

import "fmt"

// DecodeError represents a failure to turn document bytes into text.
// It is a catchable condition: callers degrade to a sentinel candidate
// record instead of aborting the batch.
type DecodeError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode %s: %s", e.Format, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError is returned when no decoder exists for the
// declared format.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Format)
}
