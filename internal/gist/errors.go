// Package gist is the single source of truth for reading and mutating the
// remote catalog document of a guild. This file centralizes the error
// taxonomy so callers can branch with errors.Is / errors.As and translate
// into user-facing messages at the handler layer.
package gist

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when the guild has no stored gist token
	// or gist ID yet. User-fixable; handlers surface it as a setup hint.
	ErrNotConfigured = errors.New("guild not configured")

	// ErrInvalidDocument is returned when the remote document has no
	// content or its content is not parseable JSON. No repair is attempted
	// automatically; the explicit /repair path exists for that.
	ErrInvalidDocument = errors.New("remote document missing or not valid JSON")
)

// Operation names carried by RemoteError.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// RemoteError reports a non-success status from the gist API. No retry is
// performed; the status is surfaced verbatim to the caller.
type RemoteError struct {
	Op     string // OpRead or OpWrite
	Status int    // HTTP status code returned by the remote
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("gist %s failed: status %d", e.Op, e.Status)
}
