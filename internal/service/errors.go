package service

import (
	"errors"
	"fmt"

	"github.com/JahangirOsman/hdp-webapp/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrHashingFailed       = errors.New("password hashing failed")
)

// ValidationError reports every invalid field of one prediction request.
// Callers should use [errors.As] to retrieve it and render the field list.
type ValidationError struct {
	Fields []models.FieldError
}

// Error satisfies the error interface with a one-line summary; the field
// details are carried in Fields.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid prediction input: %d invalid field(s)", len(e.Fields))
}
