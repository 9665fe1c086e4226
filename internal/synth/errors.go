// Package synth builds retrieval-augmented generation requests for document
// sections and invokes the external generation capability.
package synth

import "fmt"

// RetrievalError represents a failure of the retrieval capability.
// Retrieval failures are fatal to the section being synthesized; there is no
// local fallback.
type RetrievalError struct {
	Query string
	Cause error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed for query %q: %v", e.Query, e.Cause)
}

func (e *RetrievalError) Unwrap() error {
	return e.Cause
}

// GenerationError represents a failure of the text-generation capability
type GenerationError struct {
	Section string
	Cause   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for section %q: %v", e.Section, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
