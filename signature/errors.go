// Package signature implements request canonicalization and HMAC-SHA256
// signing for the QAI API.
package signature

import "errors"

// Signing errors.
var (
	// ErrInvalidParameterKind indicates a parameter value is not one of the
	// supported kinds (scalar, bool, string list).
	ErrInvalidParameterKind = errors.New("parameter value is not a scalar, bool, or string list")

	// ErrEmptyMethodOrPath indicates the HTTP method or URL path is empty.
	ErrEmptyMethodOrPath = errors.New("method and path must be non-empty")
)
