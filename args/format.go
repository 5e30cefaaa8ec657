package args

import (
	"slices"
)

// Format describes what a command accepts: its command names, command options, positional arguments, and options.
//
// A Format may extend a base Format, which is how commands inherit the command names and options of their parents.
// Queries include the base chain, with base elements first.
// A Format is immutable once built, so it's safe to share between goroutines.
type Format struct {
	base           *Format
	commandNames   []*CommandName
	commandOptions []*CommandOption
	arguments      []*Argument
	options        []*Option

	argumentsByName map[string]*Argument
	optionsByLong   map[string]*Option
	optionsByShort  map[string]*Option
}

// Element is anything that may be declared in a [Format]: a [*CommandName], [*CommandOption], [*Argument], or [*Option].
type Element interface {
	addTo(b *FormatBuilder) error
}

// NewFormat builds a [Format] from the given elements, in order.
// The first element that can't be added stops the build, and its [SchemaError] is returned.
func NewFormat(base *Format, elements ...Element) (*Format, error) {
	b := NewFormatBuilder(base)
	if err := b.Add(elements...); err != nil {
		return nil, err
	}
	return b.Format(), nil
}

// MustFormat is the same as [NewFormat], but panics if the [Format] is not valid.
func MustFormat(base *Format, elements ...Element) *Format {
	f, err := NewFormat(base, elements...)
	if err != nil {
		panic(err)
	}
	return f
}

// Base returns the base [Format], or nil if there is none.
func (f *Format) Base() *Format {
	return f.base
}

// chain returns this Format and all of its bases, root first.
func (f *Format) chain() []*Format {
	var formats []*Format
	for cur := f; cur != nil; cur = cur.base {
		formats = append(formats, cur)
	}
	slices.Reverse(formats)
	return formats
}

// CommandNames returns all command names, including those of the base chain.
func (f *Format) CommandNames() []*CommandName {
	var names []*CommandName
	for _, cur := range f.chain() {
		names = append(names, cur.commandNames...)
	}
	return names
}

// CommandOptions returns all command options, including those of the base chain.
func (f *Format) CommandOptions() []*CommandOption {
	var opts []*CommandOption
	for _, cur := range f.chain() {
		opts = append(opts, cur.commandOptions...)
	}
	return opts
}

// CommandOption looks up a command option by its long name, short name, or alias. Nil is returned if it isn't found.
func (f *Format) CommandOption(name string) *CommandOption {
	for cur := f; cur != nil; cur = cur.base {
		for _, co := range cur.commandOptions {
			if co.MatchName(name) {
				return co
			}
		}
	}
	return nil
}

func (f *Format) HasCommandOption(name string) bool {
	return f.CommandOption(name) != nil
}

// Arguments returns all positional arguments in binding order, including those of the base chain.
func (f *Format) Arguments() []*Argument {
	var arguments []*Argument
	for _, cur := range f.chain() {
		arguments = append(arguments, cur.arguments...)
	}
	return arguments
}

// OwnArguments returns only the arguments declared in this [Format].
func (f *Format) OwnArguments() []*Argument {
	return slices.Clone(f.arguments)
}

// Argument looks up an argument by name. Nil is returned if it isn't found.
func (f *Format) Argument(name string) *Argument {
	for cur := f; cur != nil; cur = cur.base {
		if arg, ok := cur.argumentsByName[name]; ok {
			return arg
		}
	}
	return nil
}

// ArgumentAt looks up an argument by its 0-based position. Nil is returned if the position is out of range.
func (f *Format) ArgumentAt(pos int) *Argument {
	arguments := f.Arguments()
	if pos < 0 || pos >= len(arguments) {
		return nil
	}
	return arguments[pos]
}

func (f *Format) HasArgument(name string) bool {
	return f.Argument(name) != nil
}

func (f *Format) HasArguments() bool {
	return f.NumberOfArguments() > 0
}

func (f *Format) NumberOfArguments() int {
	var n int
	for cur := f; cur != nil; cur = cur.base {
		n += len(cur.arguments)
	}
	return n
}

func (f *Format) NumberOfRequiredArguments() int {
	var n int
	for _, arg := range f.Arguments() {
		if arg.IsRequired() {
			n++
		}
	}
	return n
}

func (f *Format) HasMultiValuedArgument() bool {
	return slices.ContainsFunc(f.Arguments(), (*Argument).IsMultiValued)
}

func (f *Format) HasOptionalArgument() bool {
	return slices.ContainsFunc(f.Arguments(), (*Argument).IsOptional)
}

func (f *Format) HasRequiredArgument() bool {
	return slices.ContainsFunc(f.Arguments(), (*Argument).IsRequired)
}

// Options returns all options in declaration order, including those of the base chain.
func (f *Format) Options() []*Option {
	var opts []*Option
	for _, cur := range f.chain() {
		opts = append(opts, cur.options...)
	}
	return opts
}

// OwnOptions returns only the options declared in this [Format].
func (f *Format) OwnOptions() []*Option {
	return slices.Clone(f.options)
}

// Option looks up an option by its long name, or by its short name if no long name matches.
// Leading dashes are ignored. Nil is returned if it isn't found.
func (f *Format) Option(name string) *Option {
	name = trimDashes(name)
	for cur := f; cur != nil; cur = cur.base {
		if opt, ok := cur.optionsByLong[name]; ok {
			return opt
		}
	}
	for cur := f; cur != nil; cur = cur.base {
		if opt, ok := cur.optionsByShort[name]; ok {
			return opt
		}
	}
	return nil
}

func (f *Format) HasOption(name string) bool {
	return f.Option(name) != nil
}

func (f *Format) HasOptions() bool {
	for cur := f; cur != nil; cur = cur.base {
		if len(cur.options) > 0 {
			return true
		}
	}
	return false
}

func trimDashes(name string) string {
	if len(name) > 2 && name[:2] == "--" {
		return name[2:]
	}
	if len(name) == 2 && name[0] == '-' {
		return name[1:]
	}
	return name
}
