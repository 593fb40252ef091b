package errors

import (
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey = New("API key is required")
	ErrInvalidConfig = New("invalid configuration")

	// Upload errors
	ErrNoFile            = New("no audio file uploaded")
	ErrUnsupportedFormat = New("unsupported audio format")

	// Model errors
	ErrTranscription = New("transcription failed")
	ErrSummarization = New("summarization failed")
	ErrEmptyResponse = New("empty model response")

	// File errors
	ErrFileWrite = New("file write failed")
	ErrFileRead  = New("file read failed")

	// Run errors
	ErrRunNotFound = New("run not found")
	ErrNotSaved    = New("report has not been saved")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Mark attaches a sentinel kind to err so callers can match it with errors.Is
// while the message keeps the underlying detail.
func Mark(err error, kind *Error) error {
	if err == nil {
		return nil
	}
	return &marked{kind: kind, cause: err}
}

type marked struct {
	kind  *Error
	cause error
}

func (m *marked) Error() string {
	return fmt.Sprintf("%s: %v", m.kind.message, m.cause)
}

func (m *marked) Unwrap() []error {
	return []error{m.kind, m.cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Wrapf(ErrInvalidConfig, "%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Wrapf(ErrInvalidConfig, "%s is invalid: %s", field, reason)
}

// RunNotFound returns an error for an unknown run id
func RunNotFound(id string) error {
	return Wrapf(ErrRunNotFound, "run %s", id)
}
