package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// InternalMessage is the only message clients see for server-side failures.
const InternalMessage = "Internal Server Error"

// Error is a client-facing failure carrying the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an Error for the given status.
func New(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

// BadRequest reports malformed client input (identifiers, bodies).
func BadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

// NotFound reports a missing resource on routes that surface 404s.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Resolve maps any error onto a status and a client-safe message.
// Errors that are not *Error are treated as internal failures.
func Resolve(err error) (int, string) {
	var ae *Error
	if errors.As(err, &ae) {
		msg := ae.Message
		if ae.Err != nil && ae.Status < http.StatusInternalServerError {
			msg = ae.Error()
		}
		return ae.Status, msg
	}
	return http.StatusInternalServerError, InternalMessage
}
