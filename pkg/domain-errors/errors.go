// Package domainerrors provides coded errors for the service boundary.
//
// Services and parsers return these so the transport layer can map a code
// to an HTTP status without inspecting error strings. Infrastructure facts
// (not found, unavailable) live in pkg/platform/sentinel instead.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for transport mapping and logging.
type Code string

const (
	// CodeBadRequest is a malformed request body or missing body.
	CodeBadRequest Code = "bad_request"

	// CodeValidation is a well-formed request carrying invalid data:
	// malformed timestamps, missing required fields, unknown sources.
	CodeValidation Code = "validation_error"

	// CodeContract is a violated construction invariant, e.g. an
	// out-of-enum check outcome. Always a programming error.
	CodeContract Code = "contract_violation"

	// CodeRateLimited means the client exceeded its request budget.
	CodeRateLimited Code = "rate_limited"

	// CodeUnavailable means a downstream dependency is unreachable.
	CodeUnavailable Code = "unavailable"

	// CodeInternal is everything else. The description is never exposed
	// to callers.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. Field is set for validation errors so
// callers learn which payload field was rejected.
type Error struct {
	Code        Code
	Description string
	Field       string
	cause       error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.Code, e.Field, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a coded error.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// Newf builds a coded error with a formatted description.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Description: fmt.Sprintf(format, args...)}
}

// Validation builds a CodeValidation error naming the offending field.
func Validation(field, description string) *Error {
	return &Error{Code: CodeValidation, Description: description, Field: field}
}

// Wrap attaches a cause so errors.Is/As keep working through the code.
func Wrap(code Code, description string, cause error) *Error {
	return &Error{Code: code, Description: description, cause: cause}
}

// HasCode reports whether err (or anything it wraps) carries the code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// uncoded errors so unexpected failures never leak details.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// FieldOf extracts the offending field name, if any.
func FieldOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}
