package options

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Value is a concrete option value. A nil *Value stands for "not set",
// meaning the scope inherits from the next broader one.
type Value struct {
	Kind Kind
	Int  int64
	Text string
}

// Int builds an integer value.
func Int(v int64) Value {
	return Value{Kind: KindInteger, Int: v}
}

// Text builds a string value.
func Text(v string) Value {
	return Value{Kind: KindString, Text: v}
}

// Ptr returns a pointer to v, handy for override arguments.
func Ptr(v Value) *Value {
	return &v
}

// ParseValue converts raw into a value of the given kind. Integer values
// must consist of an optional minus sign followed by digits.
func ParseValue(opt Option, raw string) (Value, error) {
	switch opt.Kind {
	case KindInteger:
		if !integerPattern.MatchString(raw) {
			return Value{}, &TypeMismatchError{Option: opt.Name, Want: KindInteger, Raw: raw}
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &TypeMismatchError{Option: opt.Name, Want: KindInteger, Raw: raw}
		}
		return Int(n), nil
	case KindString:
		return Text(raw), nil
	default:
		return Value{}, fmt.Errorf("%w: option %q has no kind", ErrInvalidCatalog, opt.Name)
	}
}

// Check returns a *TypeMismatchError if v does not belong to opt's domain.
func (v Value) Check(opt Option) error {
	if v.Kind != opt.Kind {
		return &TypeMismatchError{Option: opt.Name, Want: opt.Kind, Got: v.Kind}
	}
	return nil
}

// Equal compares kind and payload.
func (v Value) Equal(other Value) bool {
	return v.Kind == other.Kind && v.Int == other.Int && v.Text == other.Text
}

// IsDisabled reports whether an integer value is the "disabled" sentinel 0.
func (v Value) IsDisabled() bool {
	return v.Kind == KindInteger && v.Int == 0
}

func (v Value) String() string {
	if v.Kind == KindInteger {
		return strconv.FormatInt(v.Int, 10)
	}
	return v.Text
}

// MarshalJSON writes integers as JSON numbers and strings as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindInteger {
		return []byte(strconv.FormatInt(v.Int, 10)), nil
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON reads a JSON number as an integer value and a JSON string as
// a string value. It is meant for API consumers that have no catalog at hand;
// server-side decoding goes through DecodeJSON.
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}

	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrTypeMismatch, b)
	}
	*v = Int(n)
	return nil
}

// DecodeJSON decodes a JSON scalar into an override for opt. JSON null and
// an empty document yield nil. Integer options accept numbers and numeric
// strings.
func DecodeJSON(opt Option, raw json.RawMessage) (*Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decoding value for %q: %w", opt.Name, err)
		}
	} else {
		s = string(raw)
	}

	v, err := ParseValue(opt, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
