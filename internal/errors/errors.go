// Package errors provides a lightweight structured error type (DocError)
// for category-based classification and exit code mapping in the CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory classifies a generator error for exit codes and messages.
type ErrorCategory string

const (
	// Problems the user fixes in llmsdocs.yaml or on the command line.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Reading sources, writing outputs and checking them.
	CategoryBuild      ErrorCategory = "build"
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity tells whether the run was aborted by the error.
type ErrorSeverity string

const (
	SeverityFatal ErrorSeverity = "fatal" // run aborted
	SeverityError ErrorSeverity = "error" // run finished, result rejected
)

// DocError is a structured error with category, severity, and context
type DocError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DocError
type ContextFields map[string]any

// Error implements the error interface
func (e *DocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DocError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocError) WithContext(key string, value any) *DocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DocError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocError {
	return &DocError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DocError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocError {
	return &DocError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As returns the first DocError in err's chain.
func As(err error) (*DocError, bool) {
	var dbe *DocError
	if stdErrors.As(err, &dbe) {
		return dbe, true
	}
	return nil, false
}

// IsCategory checks if an error (or anything it wraps) belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if dbe, ok := As(err); ok {
		return dbe.Category == category
	}
	return false
}
