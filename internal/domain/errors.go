package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when input fails a client-side check before any
// request is sent, or when the backend rejects a registration with 400.
// Handlers map it to HTTP 422.
var ErrValidation = errors.New("validation error")

// ErrPasswordMismatch is returned by registration when the password and its
// confirmation differ. It wraps ErrValidation.
var ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidation)

// ErrInvalidCredentials is returned by login when the backend answers 404.
var ErrInvalidCredentials = errors.New("email or password not correct")

// ErrConflict is returned by tourist registration when the email is taken (409).
var ErrConflict = errors.New("email already exists")

// ErrNetwork covers transport failures and, for login and registration,
// any status the backend contract does not name.
var ErrNetwork = errors.New("network error")

// ErrGuideNotFound is returned when no guide's route list contains a route id.
var ErrGuideNotFound = errors.New("no guide found for route")

// ErrSessionNotFound is returned for an unknown or ended session id.
var ErrSessionNotFound = errors.New("session not found")

// FetchError reports a non-success HTTP status from the backend.
type FetchError struct {
	Op     string // e.g. "GET /GuidesRW"
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}
