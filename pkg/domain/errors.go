package domain

import (
	"errors"
	"fmt"
)

// ErrMissingTitle is returned in strict mode when a document has no "# Title" line.
var ErrMissingTitle = errors.New("title is not set, it must begin with \"#\" at the top of the file")

// ErrMissingSummary is returned when a document has no "## Summary" marker.
var ErrMissingSummary = errors.New("summary marker \"## Summary\" not found")

// ErrUnknownFormat is returned when an output format selector is not registered.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrSourceNotFound is returned when the project directory does not exist.
var ErrSourceNotFound = errors.New("source directory not found")

// DocumentError ties a failure to the source document being processed.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
