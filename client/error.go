package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus is the sentinel error wrapped by [APIError].
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrAuthFailure is joined with [ErrUnexpectedStatus] when the server
	// responds with 401 Unauthorized or 403 Forbidden.
	ErrAuthFailure = errors.New("auth failure")
	// ErrTransport is wrapped around failures of the underlying transport,
	// i.e. the call failed before any response was obtained.
	ErrTransport = errors.New("transport failure")
	// ErrTimeout is wrapped around calls cancelled by the per-call timeout.
	// A timed-out call is terminal; reissue it if desired.
	ErrTimeout = errors.New("request timed out")
	// ErrDecode is the sentinel error wrapped by [ParseError].
	ErrDecode = errors.New("invalid response body")
)

// APIError is returned when the service responds with a status outside
// the 2xx range. Body carries the parsed JSON error payload, or a
// {"detail": <raw text>} wrapper when the payload wasn't JSON, or nil
// when the response body was empty.
type APIError struct {
	StatusCode int
	Message    string
	Body       any
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: %d, message: %s", e.Err, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a successful response carries a body that
// isn't valid JSON. It is distinct from [APIError]: the request itself
// succeeded.
type ParseError struct {
	StatusCode int
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v, status: %d", e.Err, e.StatusCode)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
