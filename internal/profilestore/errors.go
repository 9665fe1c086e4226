package profilestore

import "fmt"

// NotFoundError indicates that no profile exists with the requested ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ID)
}

// AlreadyExistsError indicates a create collided with an existing profile.
type AlreadyExistsError struct {
	ID string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("profile already exists: %s", e.ID)
}

// ValidationError wraps a schema or structural validation failure.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid profile: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid profile: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
