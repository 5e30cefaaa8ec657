package args

import (
	"regexp"
	"slices"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9\-]*$`)

// Argument is a positional value slot in a [Format].
type Argument struct {
	name         string
	flags        Flags
	description  string
	defaultValue any
}

// NewArgument creates an [Argument].
// The flags may include one of [Required] or [Optional] (the default), [MultiValued], one value type, and [Nullable].
// A default value may be given for optional arguments. The default of a [MultiValued] argument should be a slice.
func NewArgument(name string, flags Flags, description string, defaultValue ...any) (*Argument, error) {
	if !namePattern.MatchString(name) {
		return nil, newSchemaError(ReasonInvalidName, name, "The argument name %q must start with a letter and contain only letters, digits and hyphens.", name)
	}
	if flags&(valueModes|namePrefs) != 0 {
		return nil, newSchemaError(ReasonInvalidFlags, name, "The flags %s are not valid for argument %q.", flags&(valueModes|namePrefs), name)
	}
	if !flags.exclusive(argumentModes) {
		return nil, newSchemaError(ReasonInvalidFlags, name, "The argument flags Required and Optional must not be combined for %q.", name)
	}
	if !flags.exclusive(valueTypes) {
		return nil, newSchemaError(ReasonInvalidFlags, name, "Only one value type may be given for argument %q, got %s.", name, flags&valueTypes)
	}
	if flags&argumentModes == 0 {
		flags |= Optional
	}
	arg := &Argument{name: name, flags: flags, description: description}
	if flags.Has(MultiValued) {
		arg.defaultValue = []any{}
	}
	if len(defaultValue) > 0 {
		if flags.Has(Required) {
			return nil, newSchemaError(ReasonInvalidDefault, name, "Required arguments do not accept default values, but %q has one.", name)
		}
		def, err := coerceDefault(defaultValue[0], flags)
		if err != nil {
			return nil, newSchemaError(ReasonInvalidDefault, name, "The default value of argument %q is invalid: %v", name, err)
		}
		arg.defaultValue = def
	}
	return arg, nil
}

// MustArgument is the same as [NewArgument], but panics if the [Argument] is not valid.
func MustArgument(name string, flags Flags, description string, defaultValue ...any) *Argument {
	arg, err := NewArgument(name, flags, description, defaultValue...)
	if err != nil {
		panic(err)
	}
	return arg
}

func coerceDefault(value any, flags Flags) (any, error) {
	if flags.Has(MultiValued) {
		return coerceAll(value, flags)
	}
	if value == nil {
		return nil, nil
	}
	return Coerce(value, flags)
}

func (a *Argument) Name() string {
	return a.name
}

func (a *Argument) Flags() Flags {
	return a.flags
}

func (a *Argument) Description() string {
	return a.description
}

func (a *Argument) IsRequired() bool {
	return a.flags.Has(Required)
}

func (a *Argument) IsOptional() bool {
	return a.flags.Has(Optional)
}

func (a *Argument) IsMultiValued() bool {
	return a.flags.Has(MultiValued)
}

// Default returns the coerced default value, which is nil if none was given.
// [MultiValued] arguments always return a (possibly empty) slice.
func (a *Argument) Default() any {
	if values, ok := a.defaultValue.([]any); ok {
		return slices.Clone(values)
	}
	return a.defaultValue
}

// Parse coerces a raw value according to the argument's value type.
func (a *Argument) Parse(value any) (any, error) {
	return Coerce(value, a.flags)
}

func (a *Argument) addTo(b *FormatBuilder) error {
	return b.AddArgument(a)
}
