package apperrors

import "errors"

// Sentinel error kinds. Callers branch on these with errors.Is rather
// than matching message text.
var (
	// ErrMalformedID marks an identifier that fails the format check.
	ErrMalformedID = errors.New("malformed id")
	// ErrNotFound marks a well-formed identifier with no matching record.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks a valid credential that does not own the target.
	ErrForbidden = errors.New("forbidden")
	// ErrStoreUnavailable marks an unreachable backing store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError is a client-correctable input problem. The message is
// part of the observable contract and is shown to the user verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidation builds a ValidationError with the given user-facing reason.
func NewValidation(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
