package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by UserUsecase. Match them with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrValidationFailed = errors.New("validation failed")
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one request.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func notFound(id int64) error {
	return fmt.Errorf("%w: could not find user with id %d", ErrNotFound, id)
}
