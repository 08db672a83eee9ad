package app

import "errors"

// ErrExpectation is returned when a run's answer differs from the expected one.
var ErrExpectation = errors.New("app: answer does not match expectation")

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError wraps a bad flag or argument as exit code 2.
func usageError(msg string) *ExitError {
	return &ExitError{Code: 2, Message: msg}
}
