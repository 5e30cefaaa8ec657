package args

import (
	"maps"
	"slices"
)

// FormatBuilder is used to declare the elements of a [Format] one at a time.
// Every add method validates the element against everything declared so far (including the base chain), and leaves the builder unchanged if it returns an error.
//
// A FormatBuilder is not concurrency safe.
type FormatBuilder struct {
	f *Format
}

// NewFormatBuilder creates a [FormatBuilder] for a [Format] that extends base, which may be nil.
func NewFormatBuilder(base *Format) *FormatBuilder {
	return &FormatBuilder{f: &Format{
		base:            base,
		argumentsByName: map[string]*Argument{},
		optionsByLong:   map[string]*Option{},
		optionsByShort:  map[string]*Option{},
	}}
}

// Add adds each element in order, stopping at the first error.
func (b *FormatBuilder) Add(elements ...Element) error {
	for _, el := range elements {
		if el == nil {
			continue
		}
		if err := el.addTo(b); err != nil {
			return err
		}
	}
	return nil
}

func (b *FormatBuilder) AddCommandName(name *CommandName) error {
	b.f.commandNames = append(b.f.commandNames, name)
	return nil
}

// AddCommandOption adds a command option, which must not clash with any option or command option name.
func (b *FormatBuilder) AddCommandOption(opt *CommandOption) error {
	names := append([]string{opt.longName}, opt.aliases...)
	for _, name := range names {
		if b.f.HasOption(name) || b.f.HasCommandOption(name) {
			return newSchemaError(ReasonExistsAlready, name, "An option named \"--%s\" exists already.", name)
		}
	}
	if len(opt.shortName) > 0 && (b.shortNameTaken(opt.shortName) || b.f.HasCommandOption(opt.shortName)) {
		return newSchemaError(ReasonExistsAlready, opt.shortName, "An option named \"-%s\" exists already.", opt.shortName)
	}
	b.f.commandOptions = append(b.f.commandOptions, opt)
	return nil
}

// AddArgument adds a positional argument after all previously declared arguments.
//
// It fails with [ReasonExistsAlready] if the name is taken, with [ReasonMultiValuedExists] if a multi-valued argument was declared before, and with [ReasonRequiredAfterOptional] if a required argument follows an optional one.
func (b *FormatBuilder) AddArgument(arg *Argument) error {
	if b.f.HasArgument(arg.name) {
		return newSchemaError(ReasonExistsAlready, arg.name, "An argument named %q exists already.", arg.name)
	}
	if b.f.HasMultiValuedArgument() {
		return newSchemaError(ReasonMultiValuedExists, arg.name, "Cannot add argument %q after a multi-valued argument.", arg.name)
	}
	if arg.IsRequired() && b.f.HasOptionalArgument() {
		return newSchemaError(ReasonRequiredAfterOptional, arg.name, "Cannot add required argument %q after optional arguments.", arg.name)
	}
	b.f.arguments = append(b.f.arguments, arg)
	b.f.argumentsByName[arg.name] = arg
	return nil
}

// AddOption adds an option whose long and short names must be unique in the [Format] and its base chain.
func (b *FormatBuilder) AddOption(opt *Option) error {
	if b.longNameTaken(opt.longName) || b.f.HasCommandOption(opt.longName) {
		return newSchemaError(ReasonExistsAlready, opt.longName, "An option named \"--%s\" exists already.", opt.longName)
	}
	if len(opt.shortName) > 0 && (b.shortNameTaken(opt.shortName) || b.f.HasCommandOption(opt.shortName)) {
		return newSchemaError(ReasonExistsAlready, opt.shortName, "An option named \"-%s\" exists already.", opt.shortName)
	}
	b.f.options = append(b.f.options, opt)
	b.f.optionsByLong[opt.longName] = opt
	if len(opt.shortName) > 0 {
		b.f.optionsByShort[opt.shortName] = opt
	}
	return nil
}

func (b *FormatBuilder) longNameTaken(name string) bool {
	for cur := b.f; cur != nil; cur = cur.base {
		if _, ok := cur.optionsByLong[name]; ok {
			return true
		}
	}
	return false
}

func (b *FormatBuilder) shortNameTaken(name string) bool {
	for cur := b.f; cur != nil; cur = cur.base {
		if _, ok := cur.optionsByShort[name]; ok {
			return true
		}
	}
	return false
}

// Format returns the [Format] declared so far.
// Later changes to the builder don't affect a returned [Format].
func (b *FormatBuilder) Format() *Format {
	return &Format{
		base:            b.f.base,
		commandNames:    slices.Clone(b.f.commandNames),
		commandOptions:  slices.Clone(b.f.commandOptions),
		arguments:       slices.Clone(b.f.arguments),
		options:         slices.Clone(b.f.options),
		argumentsByName: maps.Clone(b.f.argumentsByName),
		optionsByLong:   maps.Clone(b.f.optionsByLong),
		optionsByShort:  maps.Clone(b.f.optionsByShort),
	}
}
