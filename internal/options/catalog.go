package options

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalogYAML []byte

var builtin = mustLoad(builtinCatalogYAML)

type catalogYAML struct {
	Options []optionYAML `yaml:"options"`
}

type optionYAML struct {
	Name         string  `yaml:"name"`
	Identifier   string  `yaml:"identifier"`
	Kind         Kind    `yaml:"kind"`
	Class        Class   `yaml:"class"`
	Section      Section `yaml:"section,omitempty"`
	Overridable  bool    `yaml:"overridable,omitempty"`
	ClientsOnly  bool    `yaml:"clients_only,omitempty"`
	Default      *string `yaml:"default,omitempty"`
	GlobalSource string  `yaml:"global_source,omitempty"`
	GlobalCap    int64   `yaml:"global_cap,omitempty"`
}

// Catalog is an immutable, ordered set of options.
type Catalog struct {
	byName  map[string]Option
	ordered []Option
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return builtin
}

// Lookup is shorthand for Builtin().Lookup(name).
func Lookup(name string) (Option, error) {
	return builtin.Lookup(name)
}

// Load parses a YAML catalog document and checks its consistency.
func Load(data []byte) (*Catalog, error) {
	var doc catalogYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		byName:  make(map[string]Option, len(doc.Options)),
		ordered: make([]Option, 0, len(doc.Options)),
	}
	for _, entry := range doc.Options {
		opt, err := entry.option()
		if err != nil {
			return nil, err
		}
		if _, dup := c.byName[opt.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate option %q", ErrInvalidCatalog, opt.Name)
		}
		c.byName[opt.Name] = opt
		c.ordered = append(c.ordered, opt)
	}

	for _, opt := range c.ordered {
		if !opt.Derived() {
			continue
		}
		src, ok := c.byName[opt.GlobalSource]
		if !ok || src.Kind != opt.Kind {
			return nil, fmt.Errorf("%w: option %q has invalid global source %q", ErrInvalidCatalog, opt.Name, opt.GlobalSource)
		}
	}

	return c, nil
}

func mustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(err)
	}
	return c
}

func (y optionYAML) option() (Option, error) {
	if y.Name == "" || y.Identifier == "" {
		return Option{}, fmt.Errorf("%w: option without name or identifier", ErrInvalidCatalog)
	}
	if y.Kind == 0 || y.Class == 0 {
		return Option{}, fmt.Errorf("%w: option %q needs kind and class", ErrInvalidCatalog, y.Name)
	}
	if y.Class != ClassSimple && y.Kind != KindInteger {
		return Option{}, fmt.Errorf("%w: option %q: class %s requires integer values", ErrInvalidCatalog, y.Name, y.Class)
	}

	opt := Option{
		Name:         y.Name,
		Identifier:   y.Identifier,
		Kind:         y.Kind,
		Class:        y.Class,
		Section:      y.Section,
		Overridable:  y.Overridable,
		ClientsOnly:  y.ClientsOnly,
		GlobalSource: y.GlobalSource,
		GlobalCap:    y.GlobalCap,
		Default:      Value{Kind: y.Kind},
	}
	if y.Default != nil {
		def, err := ParseValue(opt, *y.Default)
		if err != nil {
			return Option{}, fmt.Errorf("%w: default of %q: %w", ErrInvalidCatalog, y.Name, err)
		}
		opt.Default = def
	}
	return opt, nil
}

// Lookup returns the option called name or an *UnknownOptionError.
func (c *Catalog) Lookup(name string) (Option, error) {
	opt, ok := c.byName[name]
	if !ok {
		return Option{}, &UnknownOptionError{Name: name}
	}
	return opt, nil
}

// All returns every option in catalog order.
func (c *Catalog) All() []Option {
	out := make([]Option, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Overridable returns the options that clients may override, in catalog
// order.
func (c *Catalog) Overridable() []Option {
	out := make([]Option, 0, len(c.ordered))
	for _, opt := range c.ordered {
		if opt.Overridable {
			out = append(out, opt)
		}
	}
	return out
}

// Section returns the overridable options of one section.
func (c *Catalog) Section(s Section) []Option {
	var out []Option
	for _, opt := range c.ordered {
		if opt.Overridable && opt.Section == s {
			out = append(out, opt)
		}
	}
	return out
}
