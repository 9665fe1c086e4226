// Package types provides type definitions for structured data used throughout the termsmith system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Gap severity levels
const (
	SeverityError = "error"
	SeverityWarn  = "warn"
)

// Gap is an advisory, severity-tagged finding that generated content appears
// structurally incomplete. Gaps never block document return; they travel as a
// sidecar list alongside the generated text.
type Gap struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ErrorGap builds an error-severity gap
func ErrorGap(message string) Gap {
	return Gap{Severity: SeverityError, Message: message}
}

// WarnGap builds a warn-severity gap
func WarnGap(message string) Gap {
	return Gap{Severity: SeverityWarn, Message: message}
}
