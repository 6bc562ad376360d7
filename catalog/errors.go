package catalog

import "errors"

// ErrNotFound reports that an operation targeted an id absent from the store.
// It is an expected outcome, not an infrastructure failure; callers match it
// with errors.Is or IsNotFound.
var ErrNotFound = errors.New("product not found")

// ValidationError reports that input violated an entity invariant. No partial
// write happens when it is returned. The cause carries the per-field errors
// produced by ozzo-validation.
type ValidationError struct {
	cause error
}

func (e *ValidationError) Error() string { return "invalid product: " + e.cause.Error() }

// Unwrap exposes the underlying field errors.
func (e *ValidationError) Unwrap() error { return e.cause }

// IsNotFound reports whether err is the not-found outcome.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
