// Package errs defines the failures the business packages report to the api layer.
package errs

import "errors"

// ErrNotFound is wrapped by lookups that match no record
var ErrNotFound = errors.New("not found")

// ValidationError rejects a payload. Reason is safe to show to callers.
type ValidationError struct {
	Reason string
}

func (v *ValidationError) Error() string {
	return v.Reason
}

// Validation creates a *ValidationError
func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

// AsValidation reports whether err is a *ValidationError, returning it
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
