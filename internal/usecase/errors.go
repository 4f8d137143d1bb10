package usecase

import (
	"errors"

	"ride-api/pkg/utils"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPage        = errors.New("invalid page")
)

// ValidationError carries per-field messages keyed by payload field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func validationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// validate runs the struct tags of req and wraps failures.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}
	return nil
}
