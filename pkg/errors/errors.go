// Package errors gives solvers, the runner and the CLI one error type with
// a machine-readable [Code].
//
// Solvers return [Input] for malformed puzzle input and [NoSolution] when
// a well-formed input admits no answer. Everything above them wraps with
// [Wrap] so the code survives fmt.Errorf("%w") chains:
//
//	if errors.Is(err, errors.ErrCodeUnauthorized) {
//	    // ask for a new session cookie
//	}
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Code classifies an [Error].
type Code string

const (
	// Bad puzzle input, command-line arguments or aoc.toml.
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Unknown year or day, missing input or saved answer.
	ErrCodeNotFound Code = "NOT_FOUND"

	// The part has no registered solver, or the input has no answer.
	ErrCodeUnsolved   Code = "UNSOLVED"
	ErrCodeNoSolution Code = "NO_SOLUTION"

	// Downloading inputs.
	ErrCodeNetwork      Code = "NETWORK_ERROR"
	ErrCodeRateLimited  Code = "RATE_LIMITED"
	ErrCodeUnauthorized Code = "UNAUTHORIZED"
	ErrCodeLocked       Code = "LOCKED"

	ErrCodeTimeout  Code = "TIMEOUT"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error carries a code, a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches code and a formatted message to cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Input reports malformed puzzle input.
func Input(format string, args ...any) *Error {
	return New(ErrCodeInvalidInput, format, args...)
}

// NoSolution reports a valid input for which the search found no answer.
func NoSolution(format string, args ...any) *Error {
	return New(ErrCodeNoSolution, format, args...)
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err without code prefixes, joining nested messages
// with ": ".
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + UserMessage(e.Cause)
	}
	return e.Message
}

// RetryAfter is the cause of a RATE_LIMITED error when the server said
// how long to back off.
type RetryAfter struct {
	Wait time.Duration
}

func (e *RetryAfter) Error() string {
	if e.Wait > 0 {
		return fmt.Sprintf("rate limited: retry after %s", e.Wait)
	}
	return "rate limited"
}
