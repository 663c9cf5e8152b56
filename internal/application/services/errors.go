package services

import "errors"

// Error taxonomy surfaced to the HTTP layer. Anything else that services
// return is treated as a server error.
var (
	// ErrForbidden marks a request path that resolves outside the root
	// directory.
	ErrForbidden = errors.New("path escapes root directory")

	// ErrNotFound marks a resolved path that does not exist.
	ErrNotFound = errors.New("path not found")
)
