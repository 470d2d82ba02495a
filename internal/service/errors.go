package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure so callers can render a precise message
// and decide whether to retry.
type Kind string

const (
	// KindInvalidInput marks malformed, missing or out-of-range caller data.
	// Always correctable by the caller.
	KindInvalidInput Kind = "invalid_input"
	// KindNotFound marks a reference to a group or user that does not exist.
	KindNotFound Kind = "not_found"
	// KindForbidden marks an authenticated caller who is not a member of the
	// referenced group.
	KindForbidden Kind = "forbidden"
	// KindUnauthenticated marks a caller with no valid identity.
	KindUnauthenticated Kind = "unauthenticated"
	// KindUnavailable marks a durable-store failure. The only kind a caller
	// should retry automatically.
	KindUnavailable Kind = "unavailable"
)

// Error is a classified service failure. Every failure the services surface
// carries exactly one Kind; raw store or driver errors never reach callers.
type Error struct {
	Kind    Kind
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf extracts the Kind from an error, or "" if the error is not a
// service error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

func invalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func unavailable(message string, err error) *Error {
	return &Error{Kind: KindUnavailable, Message: message, err: err}
}
