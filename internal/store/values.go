package store

import (
	"database/sql"

	"github.com/MKhiriev/go-braintacle/internal/options"
)

// storedValue is one row of the ivalue/tvalue column pair used by the
// "config" and "devices" tables.
type storedValue struct {
	ivalue sql.NullInt64
	tvalue sql.NullString
}

// value converts the row for opt. Integer options live in ivalue, strings in
// tvalue. An integer option stored as text is parsed. Mismatches are
// *options.TypeMismatchError values marked as stored, so they also match
// options.ErrCorruptValue. A row without a usable column reads as nil.
func (s storedValue) value(opt options.Option) (*options.Value, error) {
	switch opt.Kind {
	case options.KindInteger:
		if s.ivalue.Valid {
			return options.Ptr(options.Int(s.ivalue.Int64)), nil
		}
		if s.tvalue.Valid {
			v, err := options.ParseValue(opt, s.tvalue.String)
			if err != nil {
				return nil, options.MarkStored(err)
			}
			return &v, nil
		}
	case options.KindString:
		if s.tvalue.Valid {
			return options.Ptr(options.Text(s.tvalue.String)), nil
		}
		if s.ivalue.Valid {
			return nil, &options.TypeMismatchError{Option: opt.Name, Want: options.KindString, Got: options.KindInteger, Stored: true}
		}
	}
	return nil, nil
}

// columns returns the ivalue and tvalue arguments for v.
func columns(v options.Value) (any, any) {
	if v.Kind == options.KindInteger {
		return v.Int, nil
	}
	return nil, v.Text
}
