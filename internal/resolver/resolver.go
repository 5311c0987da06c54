package resolver

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/options"
)

// Resolver hands out per-client and per-group configuration views that
// share the same data sources.
type Resolver struct {
	catalog   *options.Catalog
	global    GlobalReader
	groups    GroupValuesReader
	overrides OverrideStore
}

// New creates a Resolver over the given catalog and data sources. The same
// OverrideStore serves client and group overrides, since both live in the
// same table keyed by id.
func New(catalog *options.Catalog, global GlobalReader, groups GroupValuesReader, overrides OverrideStore) *Resolver {
	return &Resolver{
		catalog:   catalog,
		global:    global,
		groups:    groups,
		overrides: overrides,
	}
}

// Client returns a fresh configuration view for one client.
func (r *Resolver) Client(id int64) *ClientConfig {
	return &ClientConfig{scope: newScope(r, id, true)}
}

// Group returns a fresh configuration view for one group.
func (r *Resolver) Group(id int64) *GroupConfig {
	return &GroupConfig{scope: newScope(r, id, false)}
}

// Catalog returns the option catalog the resolver works on.
func (r *Resolver) Catalog() *options.Catalog {
	return r.catalog
}

// GlobalValue returns the global value of opt, falling back to the built-in
// default when nothing is stored. Derived options read their source option
// and apply its cap.
func (r *Resolver) GlobalValue(ctx context.Context, opt options.Option) (options.Value, error) {
	if opt.Derived() {
		src, err := r.catalog.Lookup(opt.GlobalSource)
		if err != nil {
			return options.Value{}, err
		}
		v, err := r.GlobalValue(ctx, src)
		if err != nil {
			return options.Value{}, err
		}
		if opt.GlobalCap > 0 && v.Int > opt.GlobalCap {
			v.Int = opt.GlobalCap
		}
		return v, nil
	}

	v, err := r.global.GlobalValue(ctx, opt)
	if err != nil {
		return options.Value{}, fmt.Errorf("reading global %s: %w", opt.Name, err)
	}
	if v == nil {
		return opt.Default, nil
	}
	if err = v.Check(opt); err != nil {
		return options.Value{}, options.MarkStored(err)
	}
	return *v, nil
}
