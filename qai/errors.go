// Package qai provides the HTTP client for the QAI platform API.
package qai

import "errors"

// Dispatch errors.
var (
	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("connection timed out")

	// ErrTransport indicates the request failed below the HTTP layer.
	ErrTransport = errors.New("connection failed")

	// ErrUnsupportedMethod indicates a method outside GET, POST, DELETE.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")

	// ErrMissingResourceIDs indicates a metrics call with no resource ids.
	ErrMissingResourceIDs = errors.New("resource_ids cannot be empty")
)

// RequestError describes a failed API request.
type RequestError struct {
	// Method is the HTTP method of the failed request.
	Method string

	// Path is the URL path of the failed request.
	Path string

	// Err is the underlying cause. It wraps ErrTimeout or ErrTransport
	// for network-level failures.
	Err error
}

func (e *RequestError) Error() string {
	return e.Method + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause for errors.Is/As matching.
func (e *RequestError) Unwrap() error {
	return e.Err
}
