package resolver

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/options"
)

// ClientConfig is the configuration of one client. It is not safe for
// concurrent use.
type ClientConfig struct {
	*scope
}

// GroupConfig is the configuration of one group. Groups have no parent
// groups, so their default is the global value. It is not safe for
// concurrent use.
type GroupConfig struct {
	*scope
}

type scope struct {
	r  *Resolver
	id int64
	// client scopes inherit from their groups, group scopes do not
	client bool

	globals   map[string]options.Value
	overrides map[string]*options.Value
	groups    map[string][]options.Value
	defaults  map[string]options.Value
	effective map[string]options.Value
}

func newScope(r *Resolver, id int64, client bool) *scope {
	return &scope{
		r:         r,
		id:        id,
		client:    client,
		globals:   make(map[string]options.Value),
		overrides: make(map[string]*options.Value),
		groups:    make(map[string][]options.Value),
		defaults:  make(map[string]options.Value),
		effective: make(map[string]options.Value),
	}
}

// ID returns the client or group id.
func (s *scope) ID() int64 {
	return s.id
}

// Effective returns the value the object actually runs with.
func (s *scope) Effective(ctx context.Context, name string) (options.Value, error) {
	if v, ok := s.effective[name]; ok {
		return v, nil
	}

	opt, rl, err := s.lookup(name)
	if err != nil {
		return options.Value{}, err
	}
	def, err := s.Default(ctx, name)
	if err != nil {
		return options.Value{}, err
	}
	global, err := s.globalValue(ctx, opt)
	if err != nil {
		return options.Value{}, err
	}
	groups, err := s.groupValues(ctx, opt)
	if err != nil {
		return options.Value{}, err
	}
	own, err := s.override(ctx, opt)
	if err != nil {
		return options.Value{}, err
	}

	v := rl.effectiveValue(global, groups, own, def)
	s.effective[name] = v
	return v, nil
}

// Default returns the value inherited from groups and global configuration,
// ignoring the object's own override.
func (s *scope) Default(ctx context.Context, name string) (options.Value, error) {
	if v, ok := s.defaults[name]; ok {
		return v, nil
	}

	opt, rl, err := s.lookup(name)
	if err != nil {
		return options.Value{}, err
	}
	global, err := s.globalValue(ctx, opt)
	if err != nil {
		return options.Value{}, err
	}
	groups, err := s.groupValues(ctx, opt)
	if err != nil {
		return options.Value{}, err
	}

	v := rl.defaultValue(global, groups)
	s.defaults[name] = v
	return v, nil
}

// Override returns the object's own value for an option, nil if unset.
func (s *scope) Override(ctx context.Context, name string) (*options.Value, error) {
	opt, _, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return s.override(ctx, opt)
}

// SetOverride stores the object's own value, nil removes it. Cached results
// for the option are dropped.
func (s *scope) SetOverride(ctx context.Context, name string, value *options.Value) error {
	opt, _, err := s.lookup(name)
	if err != nil {
		return err
	}
	if !opt.Overridable || (opt.ClientsOnly && !s.client) {
		return fmt.Errorf("%w: %s", options.ErrNotOverridable, name)
	}
	if value != nil {
		if err = value.Check(opt); err != nil {
			return err
		}
	}

	if err = s.r.overrides.SetOverride(ctx, opt, s.id, value); err != nil {
		return fmt.Errorf("writing override %s for %d: %w", name, s.id, err)
	}

	delete(s.overrides, name)
	delete(s.defaults, name)
	delete(s.effective, name)
	return nil
}

func (s *scope) lookup(name string) (options.Option, rule, error) {
	opt, err := s.r.catalog.Lookup(name)
	if err != nil {
		return options.Option{}, nil, err
	}
	rl, err := ruleFor(opt.Class)
	if err != nil {
		return options.Option{}, nil, err
	}
	return opt, rl, nil
}

func (s *scope) globalValue(ctx context.Context, opt options.Option) (options.Value, error) {
	if v, ok := s.globals[opt.Name]; ok {
		return v, nil
	}
	v, err := s.r.GlobalValue(ctx, opt)
	if err != nil {
		return options.Value{}, err
	}
	s.globals[opt.Name] = v
	return v, nil
}

func (s *scope) override(ctx context.Context, opt options.Option) (*options.Value, error) {
	if v, ok := s.overrides[opt.Name]; ok {
		return v, nil
	}
	if !opt.Overridable || (opt.ClientsOnly && !s.client) {
		s.overrides[opt.Name] = nil
		return nil, nil
	}

	v, err := s.r.overrides.Override(ctx, opt, s.id)
	if err != nil {
		return nil, fmt.Errorf("reading override %s for %d: %w", opt.Name, s.id, err)
	}
	if v != nil {
		if err = v.Check(opt); err != nil {
			return nil, options.MarkStored(err)
		}
	}
	s.overrides[opt.Name] = v
	return v, nil
}

// groupValues returns the non-nil overrides of the client's groups.
func (s *scope) groupValues(ctx context.Context, opt options.Option) ([]options.Value, error) {
	if !s.client || opt.Class == options.ClassSimple {
		return nil, nil
	}
	if v, ok := s.groups[opt.Name]; ok {
		return v, nil
	}

	raw, err := s.r.groups.GroupValues(ctx, opt, s.id)
	if err != nil {
		return nil, fmt.Errorf("reading group values %s for %d: %w", opt.Name, s.id, err)
	}
	values := make([]options.Value, 0, len(raw))
	for _, v := range raw {
		if v == nil {
			continue
		}
		if err = v.Check(opt); err != nil {
			return nil, options.MarkStored(err)
		}
		values = append(values, *v)
	}
	s.groups[opt.Name] = values
	return values, nil
}
