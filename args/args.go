package args

import (
	"errors"
	"fmt"
	"slices"
)

// Args holds the values bound to a [Format] for one invocation.
//
// Only explicitly given values are stored. Defaults are read from the [Format] when a value is requested and absent,
// so [Args.IsOptionSet] and [Args.IsArgumentSet] can tell the difference.
type Args struct {
	format    *Format
	tokens    []string
	options   map[string]any
	arguments map[string]any
}

// NewArgs creates an empty [Args] for the given [Format].
// The raw tokens are kept for reference, and are not parsed.
func NewArgs(format *Format, tokens []string) *Args {
	if format == nil {
		panic("nil format")
	}
	return &Args{
		format:    format,
		tokens:    slices.Clone(tokens),
		options:   map[string]any{},
		arguments: map[string]any{},
	}
}

func (a *Args) Format() *Format {
	return a.format
}

// Tokens returns the raw tokens these [Args] were parsed from.
func (a *Args) Tokens() []string {
	return slices.Clone(a.tokens)
}

func (a *Args) CommandNames() []*CommandName {
	return a.format.CommandNames()
}

func (a *Args) CommandOptions() []*CommandOption {
	return a.format.CommandOptions()
}

func (a *Args) lookupOption(name string) (*Option, error) {
	opt := a.format.Option(name)
	if opt == nil {
		return nil, newParseError(ErrNoSuchOption, name, "The option %q does not exist.", name)
	}
	return opt, nil
}

func (a *Args) lookupArgument(name string) (*Argument, error) {
	arg := a.format.Argument(name)
	if arg == nil {
		return nil, newParseError(ErrNoSuchArgument, name, "The argument %q does not exist.", name)
	}
	return arg, nil
}

// Option returns the value of an option, by long or short name, falling back to its default.
// A [NoValue] option is true if it was given, and false otherwise.
func (a *Args) Option(name string) (any, error) {
	opt, err := a.lookupOption(name)
	if err != nil {
		return nil, err
	}
	if val, ok := a.options[opt.longName]; ok {
		return cloneValue(val), nil
	}
	return opt.Default(), nil
}

// Options returns the option values keyed by long name.
// If includeDefaults is true, then options that were not given are included with their default value.
func (a *Args) Options(includeDefaults bool) map[string]any {
	values := map[string]any{}
	if includeDefaults {
		for _, opt := range a.format.Options() {
			values[opt.longName] = opt.Default()
		}
	}
	for name, val := range a.options {
		values[name] = cloneValue(val)
	}
	return values
}

// SetOption sets the value of an option, coercing it to the option's value type.
// A [NoValue] option is set to true if no value is given.
// A [MultiValued] option replaces its values, and a scalar value is boxed as a single element slice.
func (a *Args) SetOption(name string, value ...any) error {
	opt, err := a.lookupOption(name)
	if err != nil {
		return err
	}
	if !opt.AcceptsValue() {
		val := true
		if len(value) > 0 {
			b, err := coerceBool(value[0])
			if err != nil {
				return invalidOptionValue(opt, value[0], err)
			}
			val = b.(bool)
		}
		a.options[opt.longName] = val
		return nil
	}
	if len(value) == 0 {
		if opt.IsValueRequired() {
			return newParseError(ErrMissingOptionValue, opt.longName, "The option \"--%s\" requires a value.", opt.longName)
		}
		a.options[opt.longName] = opt.Default()
		return nil
	}
	if opt.IsMultiValued() {
		values, err := coerceAll(value[0], opt.flags)
		if err != nil {
			return invalidOptionValue(opt, value[0], err)
		}
		a.options[opt.longName] = values
		return nil
	}
	val, err := opt.Parse(value[0])
	if err != nil {
		return invalidOptionValue(opt, value[0], err)
	}
	a.options[opt.longName] = val
	return nil
}

// AddOption appends a value to a [MultiValued] option, or sets the value of any other option.
func (a *Args) AddOption(name string, value any) error {
	opt, err := a.lookupOption(name)
	if err != nil {
		return err
	}
	if !opt.IsMultiValued() {
		return a.SetOption(name, value)
	}
	val, err := opt.Parse(value)
	if err != nil {
		return invalidOptionValue(opt, value, err)
	}
	existing, _ := a.options[opt.longName].([]any)
	a.options[opt.longName] = append(existing, val)
	return nil
}

// IsOptionSet determines if a value was explicitly given for the option.
func (a *Args) IsOptionSet(name string) bool {
	opt := a.format.Option(name)
	if opt == nil {
		return false
	}
	_, ok := a.options[opt.longName]
	return ok
}

// IsOptionDefined determines if the [Format] declares the option.
func (a *Args) IsOptionDefined(name string) bool {
	return a.format.HasOption(name)
}

// Argument returns the value of an argument, falling back to its default.
func (a *Args) Argument(name string) (any, error) {
	arg, err := a.lookupArgument(name)
	if err != nil {
		return nil, err
	}
	if val, ok := a.arguments[arg.name]; ok {
		return cloneValue(val), nil
	}
	return arg.Default(), nil
}

// ArgumentAt returns the value of the argument at the 0-based position, falling back to its default.
func (a *Args) ArgumentAt(pos int) (any, error) {
	arg := a.format.ArgumentAt(pos)
	if arg == nil {
		return nil, newParseError(ErrNoSuchArgument, fmt.Sprint(pos), "The argument at position %d does not exist.", pos)
	}
	return a.Argument(arg.name)
}

// Arguments returns the argument values keyed by name.
// If includeDefaults is true, then arguments that were not given are included with their default value.
func (a *Args) Arguments(includeDefaults bool) map[string]any {
	values := map[string]any{}
	if includeDefaults {
		for _, arg := range a.format.Arguments() {
			values[arg.name] = arg.Default()
		}
	}
	for name, val := range a.arguments {
		values[name] = cloneValue(val)
	}
	return values
}

// SetArgument sets the value of an argument, coercing it to the argument's value type.
// A [MultiValued] argument replaces its values, and a scalar value is boxed as a single element slice.
func (a *Args) SetArgument(name string, value any) error {
	arg, err := a.lookupArgument(name)
	if err != nil {
		return err
	}
	if arg.IsMultiValued() {
		values, err := coerceAll(value, arg.flags)
		if err != nil {
			return invalidArgumentValue(arg, value, err)
		}
		a.arguments[arg.name] = values
		return nil
	}
	val, err := arg.Parse(value)
	if err != nil {
		return invalidArgumentValue(arg, value, err)
	}
	a.arguments[arg.name] = val
	return nil
}

// IsArgumentSet determines if a value was explicitly given for the argument.
func (a *Args) IsArgumentSet(name string) bool {
	_, ok := a.arguments[name]
	return ok
}

// IsArgumentDefined determines if the [Format] declares the argument.
func (a *Args) IsArgumentDefined(name string) bool {
	return a.format.HasArgument(name)
}

func invalidOptionValue(opt *Option, value any, cause error) error {
	return newParseError(ErrInvalidValue, opt.longName, "Invalid value for option \"--%s\": %s.", opt.longName, reason(value, cause))
}

func invalidArgumentValue(arg *Argument, value any, cause error) error {
	return newParseError(ErrInvalidValue, arg.name, "Invalid value for argument %q: %s.", arg.name, reason(value, cause))
}

func reason(value any, cause error) string {
	var ve valueError
	if errors.As(cause, &ve) {
		return string(ve)
	}
	return fmt.Sprintf("%v (%v)", value, cause)
}

func cloneValue(val any) any {
	if values, ok := val.([]any); ok {
		return slices.Clone(values)
	}
	return val
}

// As narrows a value returned from [Args.Option] or [Args.Argument] to the expected type.
// Multi-valued slots may be narrowed to a slice of the element type, like []string.
//
//	port, err := args.As[int](a.Option("port"))
func As[T any](value any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, nil
	}
	if typed, ok := value.(T); ok {
		return typed, nil
	}
	if values, ok := value.([]any); ok {
		if converted, ok := convertSlice[T](values); ok {
			return converted, nil
		}
	}
	return zero, fmt.Errorf("%w: %v is %T, not %T", ErrInvalidValue, value, value, zero)
}

func convertSlice[T any](values []any) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case []string:
		return convertElements[string, T](values)
	case []int:
		return convertElements[int, T](values)
	case []float64:
		return convertElements[float64, T](values)
	case []bool:
		return convertElements[bool, T](values)
	}
	return zero, false
}

func convertElements[E any, T any](values []any) (T, bool) {
	var zero T
	out := make([]E, len(values))
	for i, v := range values {
		e, ok := v.(E)
		if !ok {
			return zero, false
		}
		out[i] = e
	}
	result, ok := any(out).(T)
	return result, ok
}
