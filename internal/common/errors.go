// Package common defines shared sentinel errors used across the repository,
// service and HTTP layers of the art catalog. Callers should use errors.Is
// (or errors.As for *ValidationError) to match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Authentication / authorization errors.
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin access required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")

	// Moderation workflow errors.
	ErrInvalidTransition = errors.New("status change not permitted")

	// Persistence errors (underlying write did not complete).
	ErrStorageFailure = errors.New("storage failure")
)

// ValidationError aggregates every input violation found in a request so the
// caller gets the full list in one round trip rather than one field at a time.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// Add records a violation. A nil-safe no-op is intentionally not provided;
// callers construct the value first and check Empty before returning it.
func (e *ValidationError) Add(msg string) {
	e.Violations = append(e.Violations, msg)
}

func (e *ValidationError) Empty() bool {
	return len(e.Violations) == 0
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
