package domain

import "errors"

var (
	// ErrNotFound covers both a genuinely missing row and a row owned by a
	// different user. Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrStorageUnavailable wraps driver-level failures so the transport
	// layer can answer with a retryable status.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
