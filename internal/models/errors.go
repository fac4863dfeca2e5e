// ABOUTME: Validation error type for goal submission
// ABOUTME: Reported synchronously before any collaborator is invoked
package models

import "fmt"

// ValidationError reports a rejected goal submission (empty goal,
// missing space, no pages selected)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a named input field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
