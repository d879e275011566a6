package service

import (
	"strings"

	"github.com/driftlab/driftboard/internal/board/domain"
)

// ValidateRegister checks raw registration input before any persistence
// attempt. Rules run in a fixed order and short-circuit on the first
// failure, so the result is either empty or holds exactly one field error.
func ValidateRegister(email, username, password string) []domain.FieldError {
	if !strings.Contains(email, "@") {
		return []domain.FieldError{domain.NewFieldError("email", "invalid email")}
	}
	if len(username) <= 3 {
		return []domain.FieldError{domain.NewFieldError("username", "length must be greater than 3")}
	}
	if len(password) <= 3 {
		return []domain.FieldError{domain.NewFieldError("password", "length must be greater than 3")}
	}
	return nil
}
