package course

import (
	"errors"
	"strings"
)

// ErrStoreFailure is a fatal persistence fault, surfaced as a 500.
var ErrStoreFailure = errors.New("internal store failure")

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Fields, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
