package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	apperrors "audio-summarizer/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindBadRequest ErrorKind = "bad_request"
	KindNotFound   ErrorKind = "not_found"
	KindUpstream   ErrorKind = "upstream"
	KindInternal   ErrorKind = "internal"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewUpstreamError reports a failure of a transcription or summarization model.
func NewUpstreamError(message string) *APIError {
	return &APIError{
		Kind:    KindUpstream,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// FromDomain maps a domain error onto the API error taxonomy. Unknown errors
// become internal errors.
func FromDomain(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case stderrors.Is(err, apperrors.ErrNoFile):
		return NewBadRequestError(err.Error())
	case stderrors.Is(err, apperrors.ErrUnsupportedFormat):
		return NewValidationError(err.Error(), map[string]string{"file": "must be an mp3, wav or m4a file"})
	case stderrors.Is(err, apperrors.ErrRunNotFound):
		return NewNotFoundError("run")
	case stderrors.Is(err, apperrors.ErrNotSaved):
		return &APIError{Kind: KindNotFound, Message: "summary has not been saved yet"}
	case stderrors.Is(err, apperrors.ErrTranscription), stderrors.Is(err, apperrors.ErrSummarization):
		return NewUpstreamError(err.Error())
	case stderrors.Is(err, apperrors.ErrMissingAPIKey), stderrors.Is(err, apperrors.ErrInvalidConfig):
		return NewUpstreamError(err.Error())
	default:
		return NewInternalError(err.Error())
	}
}
