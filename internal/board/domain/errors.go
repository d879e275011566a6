package domain

import "fmt"

// FieldError is a validation failure attributed to a single named input
// field. Mutation responses carry these as structured data rather than as
// transport-level failures.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError builds a FieldError for the given field.
func NewFieldError(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}
