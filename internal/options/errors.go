package options

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOption matches every *UnknownOptionError.
	ErrUnknownOption = errors.New("unknown option")

	// ErrTypeMismatch matches every *TypeMismatchError.
	ErrTypeMismatch = errors.New("option value type mismatch")

	// ErrCorruptValue matches a *TypeMismatchError found in a value read
	// back from storage, as opposed to one supplied by a caller.
	ErrCorruptValue = errors.New("stored option value does not match its option")

	// ErrNotOverridable is returned when a client or group value is written
	// for an option that only exists at global scope.
	ErrNotOverridable = errors.New("option cannot be overridden")

	// ErrDerivedOption is returned when a global value is written for an
	// option whose global value is computed from another option.
	ErrDerivedOption = errors.New("option is derived from another global option")

	// ErrInvalidCatalog is returned by Load for malformed catalog documents.
	ErrInvalidCatalog = errors.New("invalid option catalog")
)

// UnknownOptionError reports an option name that is not in the catalog.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Name)
}

// Is lets errors.Is(err, ErrUnknownOption) match.
func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

// TypeMismatchError reports a value whose kind does not match the kind
// declared for the option.
type TypeMismatchError struct {
	Option string
	Want   Kind
	Got    Kind
	Raw    string
	// Stored is set when the value came from storage.
	Stored bool
}

func (e *TypeMismatchError) Error() string {
	prefix := ""
	if e.Stored {
		prefix = "stored "
	}
	if e.Raw != "" {
		return fmt.Sprintf("%soption %q expects %s value, got %q", prefix, e.Option, e.Want, e.Raw)
	}
	return fmt.Sprintf("%soption %q expects %s value, got %s", prefix, e.Option, e.Want, e.Got)
}

// Is lets errors.Is(err, ErrTypeMismatch) match, and ErrCorruptValue as well
// for stored values.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch || (e.Stored && target == ErrCorruptValue)
}

// MarkStored flags a *TypeMismatchError in err as coming from storage. Other
// errors are returned unchanged.
func MarkStored(err error) error {
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		return err
	}
	marked := *mismatch
	marked.Stored = true
	return &marked
}
