package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a scoring failure. The kind strings are part of the
// wire contract and appear verbatim in API error responses.
type ErrorKind string

const (
	// ErrorKindInvalidInput marks malformed, missing, or non-finite feature
	// data. The caller can recover by fixing the request.
	ErrorKindInvalidInput ErrorKind = "InvalidInput"

	// ErrorKindModelUnavailable marks a failure of the external prediction
	// capability. Possibly transient; the service does not retry.
	ErrorKindModelUnavailable ErrorKind = "ModelUnavailable"

	// ErrorKindInvalidModelOutput marks a non-finite or otherwise unmappable
	// model prediction. This indicates an upstream model or integration bug.
	ErrorKindInvalidModelOutput ErrorKind = "InvalidModelOutput"
)

// ScoringError is the single failure type produced by the scoring domain.
// It always carries a kind and a human-readable message; opaque errors from
// collaborators are translated into it and never leak to callers.
type ScoringError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *ScoringError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewInvalidInput creates an InvalidInput scoring error.
func NewInvalidInput(format string, args ...any) *ScoringError {
	return &ScoringError{Kind: ErrorKindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewModelUnavailable creates a ModelUnavailable scoring error.
func NewModelUnavailable(format string, args ...any) *ScoringError {
	return &ScoringError{Kind: ErrorKindModelUnavailable, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidModelOutput creates an InvalidModelOutput scoring error.
func NewInvalidModelOutput(format string, args ...any) *ScoringError {
	return &ScoringError{Kind: ErrorKindInvalidModelOutput, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from err. The second return value is false
// when err is not a ScoringError.
func KindOf(err error) (ErrorKind, bool) {
	var se *ScoringError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return "", false
}
