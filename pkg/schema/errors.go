package schema

import (
	"errors"
	"fmt"
)

// ErrInvalidSchema is the root of every column schema configuration error.
var ErrInvalidSchema = errors.New("invalid column schema")

// UnknownTokenError reports an unrecognized enum token in a column declaration.
type UnknownTokenError struct {
	Field string // "type" or "alignment"
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Token)
}

func (e *UnknownTokenError) Unwrap() error {
	return ErrInvalidSchema
}

// ValidationError represents a single schema validation failure.
type ValidationError struct {
	Key    string // Location of the offending entry, e.g. "column_conditions.Step"
	Reason string // Human-readable reason for failure
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSchema
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
