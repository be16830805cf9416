package store

import "errors"

// ErrNotFound reports that no document carries the requested natural key.
var ErrNotFound = errors.New("not found")

// ErrConflict reports a natural-key collision on create.
var ErrConflict = errors.New("already exists")

// ValidationError reports a document that violates a schema constraint
// (missing required field, out-of-range value, bad enum value). A write
// that fails validation persists nothing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a schema validation failure.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
