package models

import (
	"errors"
	"strings"
)

// Sentinel errors translated at the repository boundary. Handlers match on
// these with errors.Is to pick the HTTP status.
var (
	// ErrHospitalNotFound means the referenced id names no record.
	ErrHospitalNotFound = errors.New("hospital not found")

	// ErrDuplicateHospital means another record already holds the same
	// (name, address) pair.
	ErrDuplicateHospital = errors.New("a hospital with this name and address already exists")
)

// FieldError describes a single violated field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every constraint violated by a candidate record.
// It implements error so it can travel through the service layer, but it is
// never a partial result: no write happens while it is non-empty.
type ValidationErrors []FieldError

// Add appends a violation and returns the extended list.
func (v ValidationErrors) Add(field, message string) ValidationErrors {
	return append(v, FieldError{Field: field, Message: message})
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
