package common

import (
	"errors"
	"fmt"
)

// The client distinguishes four failure kinds. Each is an explicit tagged
// type carrying a human-readable message; callers match with errors.As.
//
//   - ValidationError: a required field is missing, detected before any I/O.
//   - AuthError: an operation requires a session token and none is available.
//   - ServerError: the server answered with a non-success HTTP status.
//   - NetworkError: transport failure or a response that could not be decoded.

// ValidationError reports client-side input validation failures.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// AuthError reports a missing or unusable session.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

// NewAuthError builds an AuthError with the given message.
func NewAuthError(msg string) error {
	return &AuthError{Msg: msg}
}

// ServerError reports a non-success HTTP response. Msg is the server-supplied
// message when the body carried one, else a per-operation fallback.
type ServerError struct {
	Op         string
	StatusCode int
	Msg        string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Msg)
}

// NetworkError reports a transport failure or an undecodable response body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// GenericErrorMessage is the fallback shown when a failure carries no
// server-supplied message.
const GenericErrorMessage = "An unexpected error occurred"

// ErrorMessage extracts the user-facing message for err. Server messages and
// validation/auth messages pass through unchanged; transport and decode
// failures collapse to the generic fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Msg
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Msg
	}
	var se *ServerError
	if errors.As(err, &se) {
		return se.Msg
	}

	return GenericErrorMessage
}
