package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validation error codes
const (
	CodeInsufficientParticipants = "insufficient-participants"
	CodeDuplicateParticipant     = "duplicate-participant"
	CodeMissingParticipantID     = "missing-participant-id"
	CodeManualOrderIncomplete    = "manual-order-incomplete"
	CodeInvalidRange             = "invalid-range"
	CodeInvalidOption            = "invalid-option"
	CodeConflictingOptions       = "conflicting-options"
)

// ValidationError is one problem found in a config
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Code)
}

// ValidationResult is reported by a format validator, it is never thrown
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Add records a problem and marks the result invalid
func (r *ValidationResult) Add(field, code, format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Code: code})
}

// Err folds every recorded problem into a single error, nil for a valid result
func (r ValidationResult) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	var result *multierror.Error
	for _, e := range r.Errors {
		result = multierror.Append(result, e)
	}
	return result.ErrorOrNil()
}
