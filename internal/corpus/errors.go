// Package corpus provides the reference-corpus store and retrieval over it.
package corpus

import "fmt"

// IngestError represents a failure while loading reference documents into
// the corpus
type IngestError struct {
	Message string
	Cause   error
}

func (e *IngestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest error: %s", e.Message)
}

func (e *IngestError) Unwrap() error {
	return e.Cause
}
