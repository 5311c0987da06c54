package resolver

import (
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/options"
)

// rule combines the values of one option across scopes. Group values passed
// in are never nil.
type rule interface {
	// defaultValue is what a client inherits before its own override.
	defaultValue(global options.Value, groups []options.Value) options.Value
	// effectiveValue applies the client's own override (nil if unset) on top
	// of def, the result of defaultValue.
	effectiveValue(global options.Value, groups []options.Value, own *options.Value, def options.Value) options.Value
}

var rules = map[options.Class]rule{
	options.ClassSimple:            simpleRule{},
	options.ClassInventoryInterval: inventoryIntervalRule{},
	options.ClassSmallestGroup:     groupAggregateRule{pick: smallest},
	options.ClassLargestGroup:      groupAggregateRule{pick: largest},
	options.ClassDisableWins:       disableWinsRule{},
}

func ruleFor(class options.Class) (rule, error) {
	r, ok := rules[class]
	if !ok {
		return nil, fmt.Errorf("no combination rule for %s", class)
	}
	return r, nil
}

type simpleRule struct{}

func (simpleRule) defaultValue(global options.Value, _ []options.Value) options.Value {
	return global
}

func (simpleRule) effectiveValue(_ options.Value, _ []options.Value, own *options.Value, def options.Value) options.Value {
	if own != nil {
		return *own
	}
	return def
}

// inventoryIntervalRule: global values 0 ("always") and -1 ("never") take
// precedence over everything.
type inventoryIntervalRule struct{}

func (inventoryIntervalRule) defaultValue(global options.Value, groups []options.Value) options.Value {
	if global.Int <= 0 || len(groups) == 0 {
		return global
	}
	return smallest(groups)
}

func (inventoryIntervalRule) effectiveValue(global options.Value, groups []options.Value, own *options.Value, _ options.Value) options.Value {
	if global.Int <= 0 {
		return global
	}
	candidates := groups
	if own != nil {
		candidates = append([]options.Value{*own}, groups...)
	}
	if len(candidates) == 0 {
		return global
	}
	return smallest(candidates)
}

type groupAggregateRule struct {
	pick func([]options.Value) options.Value
}

func (r groupAggregateRule) defaultValue(global options.Value, groups []options.Value) options.Value {
	if len(groups) == 0 {
		return global
	}
	return r.pick(groups)
}

func (groupAggregateRule) effectiveValue(_ options.Value, _ []options.Value, own *options.Value, def options.Value) options.Value {
	if own != nil {
		return *own
	}
	return def
}

// disableWinsRule: 0 means disabled. A 0 at global or group scope cannot be
// lifted by a client, a client can only disable for itself.
type disableWinsRule struct{}

func (disableWinsRule) defaultValue(global options.Value, groups []options.Value) options.Value {
	for _, v := range groups {
		if v.IsDisabled() {
			return options.Int(0)
		}
	}
	return global
}

func (disableWinsRule) effectiveValue(_ options.Value, _ []options.Value, own *options.Value, def options.Value) options.Value {
	if def.IsDisabled() {
		return def
	}
	if own != nil && own.IsDisabled() {
		return options.Int(0)
	}
	return def
}

func smallest(values []options.Value) options.Value {
	out := values[0]
	for _, v := range values[1:] {
		if v.Int < out.Int {
			out = v
		}
	}
	return out
}

func largest(values []options.Value) options.Value {
	out := values[0]
	for _, v := range values[1:] {
		if v.Int > out.Int {
			out = v
		}
	}
	return out
}
