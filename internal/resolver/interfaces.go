package resolver

import (
	"context"

	"github.com/MKhiriev/go-braintacle/internal/options"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// GlobalReader returns the stored global value of an option, or nil when no
// value is stored.
type GlobalReader interface {
	GlobalValue(ctx context.Context, opt options.Option) (*options.Value, error)
}

// GroupValuesReader returns one entry per group the client is a member of.
// Entries are nil for groups that do not override the option.
type GroupValuesReader interface {
	GroupValues(ctx context.Context, opt options.Option, clientID int64) ([]*options.Value, error)
}

// OverrideStore reads and writes client or group overrides. A nil value
// means "not set".
type OverrideStore interface {
	Override(ctx context.Context, opt options.Option, id int64) (*options.Value, error)
	SetOverride(ctx context.Context, opt options.Option, id int64, value *options.Value) error
}
