package args

import (
	"regexp"
	"slices"
	"strings"
)

var shortNamePattern = regexp.MustCompile(`^[a-zA-Z]$`)

// Option is a named value slot in a [Format], given as --long-name or -s on the command line.
type Option struct {
	longName     string
	shortName    string
	flags        Flags
	description  string
	defaultValue any
}

// NewOption creates an [Option].
// Leading dashes are stripped from both names, and the short name may be empty.
//
// The flags may include one of [NoValue] (the default), [RequiredValue], or [OptionalValue], [MultiValued], one value type, [Nullable], and one of [PreferLongName] (the default) or [PreferShortName].
// [MultiValued] options always require a value.
func NewOption(longName, shortName string, flags Flags, description string, defaultValue ...any) (*Option, error) {
	longName, shortName, err := validateOptionNames(longName, shortName, flags)
	if err != nil {
		return nil, err
	}
	if flags&argumentModes != 0 {
		return nil, newSchemaError(ReasonInvalidFlags, longName, "The flags %s are not valid for option %q.", flags&argumentModes, longName)
	}
	if !flags.exclusive(valueModes) {
		return nil, newSchemaError(ReasonInvalidFlags, longName, "Only one of NoValue, RequiredValue and OptionalValue may be given for option %q.", longName)
	}
	if !flags.exclusive(valueTypes) {
		return nil, newSchemaError(ReasonInvalidFlags, longName, "Only one value type may be given for option %q, got %s.", longName, flags&valueTypes)
	}
	if flags.Has(MultiValued) {
		if flags.Has(NoValue) || flags.Has(OptionalValue) {
			return nil, newSchemaError(ReasonInvalidFlags, longName, "The multi-valued option %q must require a value.", longName)
		}
		flags |= RequiredValue
	}
	if flags&valueModes == 0 {
		flags |= NoValue
	}

	opt := &Option{longName: longName, shortName: shortName, flags: flags, description: description}
	if flags.Has(MultiValued) {
		opt.defaultValue = []any{}
	}
	if len(defaultValue) > 0 {
		if flags.Has(NoValue) {
			return nil, newSchemaError(ReasonInvalidDefault, longName, "Options that don't accept values cannot have default values, but %q has one.", longName)
		}
		def, err := coerceDefault(defaultValue[0], flags)
		if err != nil {
			return nil, newSchemaError(ReasonInvalidDefault, longName, "The default value of option %q is invalid: %v", longName, err)
		}
		opt.defaultValue = def
	}
	return opt, nil
}

// MustOption is the same as [NewOption], but panics if the [Option] is not valid.
func MustOption(longName, shortName string, flags Flags, description string, defaultValue ...any) *Option {
	opt, err := NewOption(longName, shortName, flags, description, defaultValue...)
	if err != nil {
		panic(err)
	}
	return opt
}

func validateOptionNames(longName, shortName string, flags Flags) (string, string, error) {
	longName = strings.TrimPrefix(longName, "--")
	shortName = strings.TrimPrefix(shortName, "-")
	if len(longName) < 2 || !namePattern.MatchString(longName) {
		return "", "", newSchemaError(ReasonInvalidName, longName, "The long name %q must have at least two characters, start with a letter and contain only letters, digits and hyphens.", longName)
	}
	if len(shortName) > 0 && !shortNamePattern.MatchString(shortName) {
		return "", "", newSchemaError(ReasonInvalidName, shortName, "The short name %q of %q must be a single letter.", shortName, longName)
	}
	if !flags.exclusive(namePrefs) {
		return "", "", newSchemaError(ReasonInvalidFlags, longName, "The flags PreferLongName and PreferShortName must not be combined for %q.", longName)
	}
	if flags.Has(PreferShortName) && len(shortName) == 0 {
		return "", "", newSchemaError(ReasonInvalidFlags, longName, "The option %q prefers its short name, but has none.", longName)
	}
	return longName, shortName, nil
}

func (o *Option) LongName() string {
	return o.longName
}

// ShortName returns the single letter short name, which may be empty.
func (o *Option) ShortName() string {
	return o.shortName
}

// PreferredName returns the name that should be used to display the option, including the leading dash(es).
func (o *Option) PreferredName() string {
	if o.flags.Has(PreferShortName) {
		return "-" + o.shortName
	}
	return "--" + o.longName
}

func (o *Option) Flags() Flags {
	return o.flags
}

func (o *Option) Description() string {
	return o.description
}

func (o *Option) AcceptsValue() bool {
	return !o.flags.Has(NoValue)
}

func (o *Option) IsValueRequired() bool {
	return o.flags.Has(RequiredValue)
}

func (o *Option) IsValueOptional() bool {
	return o.flags.Has(OptionalValue)
}

func (o *Option) IsMultiValued() bool {
	return o.flags.Has(MultiValued)
}

// Default returns the coerced default value.
// This is false for [NoValue] options, a (possibly empty) slice for [MultiValued] options, and nil if no default was given otherwise.
func (o *Option) Default() any {
	if o.flags.Has(NoValue) {
		return false
	}
	if values, ok := o.defaultValue.([]any); ok {
		return slices.Clone(values)
	}
	return o.defaultValue
}

// Parse coerces a raw value according to the option's value type.
func (o *Option) Parse(value any) (any, error) {
	return Coerce(value, o.flags)
}

func (o *Option) addTo(b *FormatBuilder) error {
	return b.AddOption(o)
}
