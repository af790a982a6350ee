package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is the sentinel every [*ValidationError] unwraps to.
	ErrValidation = errors.New("validation failed")
)

// ValidationError collects one message per failed rule in the order the
// rules were declared.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
