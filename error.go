package llm

import (
	"errors"
	"fmt"
	"net/http"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrBadParameter
	ErrMissingField
	ErrNotImplemented
	ErrDecode
	ErrRemote
	ErrInternalServerError
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// RemoteError is returned when the remote service responds with a
// non-2xx status. Status and Body hold the response status code and body
// text as received.
type RemoteError struct {
	Status int
	Body   string
	err    error
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewRemoteError wraps a failed response
func NewRemoteError(status int, body string, err error) *RemoteError {
	return &RemoteError{Status: status, Body: body, err: err}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrBadParameter:
		return "bad parameter"
	case ErrMissingField:
		return "missing required field"
	case ErrNotImplemented:
		return "not implemented"
	case ErrDecode:
		return "decode error"
	case ErrRemote:
		return "API failed"
	case ErrInternalServerError:
		return "internal server error"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// Wrap returns an error which matches both e and err
func (e Err) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", e, err)
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%v: %d %s", ErrRemote, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%v: %s", ErrRemote, e.Body)
}

// Is reports a match against ErrRemote, so callers can use errors.Is
func (e *RemoteError) Is(target error) bool {
	var code Err
	if errors.As(target, &code) {
		return code == ErrRemote
	}
	return false
}

func (e *RemoteError) Unwrap() error {
	return e.err
}
