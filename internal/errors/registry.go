package errors

import "fmt"

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Guard binding (E1xx)
	"E101": {
		Category:   CategoryGuard,
		Message:    "Form container not found",
		Suggestion: "Make sure the page has an element with the configured container id (default \"tabs\").",
	},
	"E102": {
		Category:   CategoryGuard,
		Message:    "Submit button not found",
		Suggestion: "Make sure the page has an element with the configured button id (default \"submit\").",
	},

	// Configuration (E2xx)
	"E201": {
		Category:   CategoryConfig,
		Message:    "Invalid file filter",
		Suggestion: "Check the regular expression syntax in file_filter_regex.",
	},
	"E202": {
		Category:   CategoryConfig,
		Message:    "Root directory not found",
		Suggestion: "Point root at an existing directory, or pass --root.",
	},
	"E203": {
		Category:   CategoryConfig,
		Message:    "Config file could not be read",
		Suggestion: "Check the path given to --config and the YAML syntax.",
	},

	// Form state (E3xx)
	"E301": {
		Category:   CategoryFormState,
		Message:    "Invalid form state",
		Suggestion: "A form state file is YAML or JSON with an \"inputs\" list of {type, checked} records.",
	},

	// Server (E4xx)
	"E401": {
		Category:   CategoryServer,
		Message:    "HTTP server failed",
		Suggestion: "Check that the listen address is free and valid (server.host, server.port or --addr).",
	},
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	t, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:       code,
		Category:   t.Category,
		Message:    t.Message,
		Suggestion: t.Suggestion,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error with the given code.
// It returns nil for a nil error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	return New(code).Wrap(err)
}
