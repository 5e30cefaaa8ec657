package args

import "strings"

// Flags configure an [Argument], [Option], or [CommandOption].
// They are combined with a bitwise or, like Optional|MultiValued|Integer.
type Flags uint32

const (
	Required    Flags = 1 << iota // Required marks an [Argument] that must be given.
	Optional                      // Optional marks an [Argument] that may be omitted. This is the default.
	MultiValued                   // MultiValued marks a slot that collects every given value in order.

	NoValue       // NoValue marks an [Option] that is a plain switch. This is the default.
	RequiredValue // RequiredValue marks an [Option] that must be followed by a value.
	OptionalValue // OptionalValue marks an [Option] that may be followed by a value.

	String   // String values are passed through as given. This is the default value type.
	Boolean  // Boolean values accept true/false, 1/0, yes/no, on/off.
	Integer  // Integer values accept any numeric token.
	Float    // Float values accept any numeric token.
	Nullable // Nullable slots translate the literal "null" into nil.

	PreferLongName  // PreferLongName renders an option by its long name. This is the default.
	PreferShortName // PreferShortName renders an option by its short name.
)

const (
	argumentModes = Required | Optional
	valueModes    = NoValue | RequiredValue | OptionalValue
	valueTypes    = String | Boolean | Integer | Float
	namePrefs     = PreferLongName | PreferShortName
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Required, "Required"},
	{Optional, "Optional"},
	{MultiValued, "MultiValued"},
	{NoValue, "NoValue"},
	{RequiredValue, "RequiredValue"},
	{OptionalValue, "OptionalValue"},
	{String, "String"},
	{Boolean, "Boolean"},
	{Integer, "Integer"},
	{Float, "Float"},
	{Nullable, "Nullable"},
	{PreferLongName, "PreferLongName"},
	{PreferShortName, "PreferShortName"},
}

func (f Flags) Has(other Flags) bool {
	return f&other == other
}

func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// exclusive reports whether at most one of the bits in mask is set.
func (f Flags) exclusive(mask Flags) bool {
	set := f & mask
	return set&(set-1) == 0
}

// ValueType returns the value type bit of f, which is [String] if none is set.
func (f Flags) ValueType() Flags {
	if t := f & valueTypes; t != 0 {
		return t
	}
	return String
}
