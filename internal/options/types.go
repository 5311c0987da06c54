package options

import "fmt"

// Kind is the value domain of an option.
type Kind int

const (
	KindInteger Kind = iota + 1
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for catalog decoding.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "integer":
		*k = KindInteger
	case "string":
		*k = KindString
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidCatalog, string(b))
	}
	return nil
}

// Class selects the combination rule applied when an option is cascaded
// from client over groups to the global value.
type Class int

const (
	// ClassSimple: own override, else global. Groups do not participate.
	ClassSimple Class = iota + 1
	// ClassInventoryInterval: a global value <= 0 wins unconditionally,
	// otherwise the smallest of own and group overrides, else global.
	ClassInventoryInterval
	// ClassSmallestGroup: own override, else smallest group value, else global.
	ClassSmallestGroup
	// ClassLargestGroup: own override, else largest group value, else global.
	ClassLargestGroup
	// ClassDisableWins: 0 at global or any group disables absolutely; a
	// client may only disable further.
	ClassDisableWins
)

var classNames = map[Class]string{
	ClassSimple:            "simple",
	ClassInventoryInterval: "inventory_interval",
	ClassSmallestGroup:     "smallest_group",
	ClassLargestGroup:      "largest_group",
	ClassDisableWins:       "disable_wins",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// UnmarshalText implements encoding.TextUnmarshaler for catalog decoding.
func (c *Class) UnmarshalText(b []byte) error {
	for class, name := range classNames {
		if name == string(b) {
			*c = class
			return nil
		}
	}
	return fmt.Errorf("%w: unknown class %q", ErrInvalidCatalog, string(b))
}

// Section groups overridable options the way the console presents them.
type Section string

const (
	SectionAgent    Section = "Agent"
	SectionDownload Section = "Download"
	SectionScan     Section = "Scan"
)

// Option is a single catalog entry.
type Option struct {
	Name        string
	Identifier  string
	Kind        Kind
	Class       Class
	Section     Section
	Overridable bool
	// ClientsOnly options may be overridden per client but not per group.
	ClientsOnly bool
	// Default is used when no global value is stored.
	Default Value
	// GlobalSource names another option whose global value stands in for
	// this option's global value, limited to GlobalCap when GlobalCap > 0.
	GlobalSource string
	GlobalCap    int64
}

// Derived reports whether the option's global value comes from another
// option.
func (o Option) Derived() bool {
	return o.GlobalSource != ""
}
