// Package domainerrors carries user-facing failures across layers.
//
// Services return *Error values tagged with a Code; transport translates the
// code into a status and renders the message verbatim. Infrastructure faults
// stay as plain wrapped errors until a service decides what they mean.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain failure.
type Code string

const (
	CodeValidation  Code = "validation_error"
	CodeNetwork     Code = "network_error"
	CodeNotFound    Code = "not_found"
	CodeAnalysis    Code = "analysis_error"
	CodeUnavailable Code = "unavailable"
	CodeBadRequest  Code = "bad_request"
	CodeInternal    Code = "internal"
)

// Error is a coded, user-presentable failure.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error without an underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// As extracts the outermost *Error from err.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}

// Is is an alias of HasCode kept for call sites that read better with it.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code carried by err, or CodeInternal for uncoded errors.
func CodeOf(err error) Code {
	if de, ok := As(err); ok {
		return de.Code
	}
	return CodeInternal
}

// Message returns the user-facing message, hiding uncoded internals.
func Message(err error) string {
	if de, ok := As(err); ok {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a code to the HTTP status the transport responds with.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNetwork:
		return http.StatusBadGateway
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
