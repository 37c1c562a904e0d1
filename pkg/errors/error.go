// Package errors provides structured error handling with typed error kinds.
//
// Every error produced by the tick pipeline carries a Kind describing which
// stage failed and, where available, the underlying cause:
//   - KindValidation: the request violated the client contract (for example
//     hour bounds that are not aligned to a full hour)
//   - KindNetwork: the transport call failed for a reason other than
//     "no data published"
//   - KindDecode: the payload was fetched but could not be decompressed
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.KindNetwork, "unexpected status")
//
//	// Wrap an underlying cause
//	err := errors.Wrap(errors.KindDecode, "corrupt lzma stream", cause)
//
//	// Check the kind
//	if errors.HasKind(err, errors.KindNetwork) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with a kind and message.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New creates a new Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given kind and formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given kind and message.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given kind and formatted message.
func Wrapf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetKind extracts the Kind from an error if it's an *Error type.
// Returns KindUnknown if the error is not an *Error type.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// HasKind checks if an error has a specific Kind.
func HasKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
