package recast

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFIG     = "config"     // missing or unusable configuration
	ECONFLICT   = "conflict"   // action conflicts with existing state
	EGENERATION = "generation" // text generation provider failure
	EINTERNAL   = "internal"   // unexpected internal error
	EINVALID    = "invalid"    // validation failed
	ENETWORK    = "network"    // fetch timeout, connection failure, or non-2xx status
	ENOTFOUND   = "not_found"  // entity does not exist
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("recast error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
