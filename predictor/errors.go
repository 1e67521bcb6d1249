package predictor

import (
	"errors"
	"fmt"
)

// ErrMissingField marks a feature that was absent from the request.
var ErrMissingField = errors.New("missing field")

// InputError reports why a request could not be turned into a Vector.
// Field is empty when the payload as a whole was unusable.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("malformed payload: %v", e.Err)
	case errors.Is(e.Err, ErrMissingField):
		return fmt.Sprintf("missing field '%s'", e.Field)
	default:
		return fmt.Sprintf("field '%s': %v", e.Field, e.Err)
	}
}

func (e *InputError) Unwrap() error {
	return e.Err
}
