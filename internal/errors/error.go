package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryGuard     Category = "guard"
	CategoryConfig    Category = "config"
	CategoryServer    Category = "server"
	CategoryFormState Category = "formstate"
	CategoryCLI       Category = "cli"
)

// Error is a structured error with a code, explanation and suggestion.
type Error struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detailed explanation to the error.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}
