package validators

import "errors"

var (
	// ErrInvalidRequest wraps every rule violation found by a Validator.
	ErrInvalidRequest = errors.New("invalid request")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)
