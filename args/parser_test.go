package args

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParse_OptionalValueInteger(t *testing.T) {
	f := MustFormat(nil, MustOption("value", "v", OptionalValue|Integer, ""))

	a, err := Parse([]string{"-v", "7"}, f)
	require.NoError(t, err)
	val, err := a.Option("value")
	require.NoError(t, err)
	assert.Equal(t, 7, val, "Should be an integer, not a string")

	_, err = Parse([]string{"-v", "x"}, f)
	assert.ErrorIs(t, err, ErrInvalidValue)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "value", parseErr.Name)
}

func TestParse_MultiValuedArgument(t *testing.T) {
	f := MustFormat(nil, MustArgument("items", MultiValued, ""))
	a, err := Parse([]string{"a", "b", "c"}, f)
	require.NoError(t, err)
	items, err := a.Argument("items")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", "c"}, items)

	a, err = Parse([]string{"only"}, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, must(As[[]string](a.Argument("items"))), "A single value should still be a sequence")
}

func TestParse_DefaultRoundTrip(t *testing.T) {
	f := MustFormat(nil, MustOption("level", "l", RequiredValue|Integer, "", 3))

	a, err := Parse(nil, f)
	require.NoError(t, err)
	assert.Equal(t, 3, must(a.Option("level")))
	assert.False(t, a.IsOptionSet("level"), "Defaults should not be stored")

	a, err = Parse([]string{"--level=5"}, f)
	require.NoError(t, err)
	assert.Equal(t, 5, must(a.Option("level")))
	assert.True(t, a.IsOptionSet("level"))
}

func TestParse_Tokens(t *testing.T) {
	f := MustFormat(nil,
		MustArgument("source", Required, ""),
		MustArgument("target", Optional, "", "default-target"),
		MustOption("all", "a", NoValue, ""),
		MustOption("bare", "b", NoValue, ""),
		MustOption("output", "o", RequiredValue, ""),
		MustOption("color", "c", OptionalValue, "", "auto"),
		MustOption("tag", "t", MultiValued, ""),
		MustOption("ratio", "r", RequiredValue|Float, ""),
	)

	tests := map[string]struct {
		tokens    []string
		options   map[string]any
		arguments map[string]any
		err       error
	}{
		"Positional only": {
			tokens:    []string{"src"},
			arguments: map[string]any{"source": "src"},
		},
		"Long with inline value": {
			tokens:    []string{"--output=file", "src"},
			options:   map[string]any{"output": "file"},
			arguments: map[string]any{"source": "src"},
		},
		"Long with next token value": {
			tokens:    []string{"--output", "file", "src", "dst"},
			options:   map[string]any{"output": "file"},
			arguments: map[string]any{"source": "src", "target": "dst"},
		},
		"Short fused value": {
			tokens:    []string{"-ofile", "src"},
			options:   map[string]any{"output": "file"},
			arguments: map[string]any{"source": "src"},
		},
		"Short with equals": {
			tokens:    []string{"-o=file", "src"},
			options:   map[string]any{"output": "file"},
			arguments: map[string]any{"source": "src"},
		},
		"Fused switches": {
			tokens:    []string{"-ab", "src"},
			options:   map[string]any{"all": true, "bare": true},
			arguments: map[string]any{"source": "src"},
		},
		"Fused switches with trailing value option": {
			tokens:    []string{"-abo", "file", "src"},
			options:   map[string]any{"all": true, "bare": true, "output": "file"},
			arguments: map[string]any{"source": "src"},
		},
		"Optional value without value": {
			tokens:    []string{"src", "--color"},
			options:   map[string]any{"color": "auto"},
			arguments: map[string]any{"source": "src"},
		},
		"Optional value followed by an option": {
			tokens:    []string{"--color", "-a", "src"},
			options:   map[string]any{"color": "auto", "all": true},
			arguments: map[string]any{"source": "src"},
		},
		"Multi-valued option": {
			tokens:    []string{"-t", "one", "--tag=two", "src"},
			options:   map[string]any{"tag": []any{"one", "two"}},
			arguments: map[string]any{"source": "src"},
		},
		"Terminator": {
			tokens:    []string{"--", "-a", "--output"},
			arguments: map[string]any{"source": "-a", "target": "--output"},
		},
		"Dash is positional": {
			tokens:    []string{"-"},
			arguments: map[string]any{"source": "-"},
		},
		"Float option": {
			tokens:    []string{"-r", "0.5", "src"},
			options:   map[string]any{"ratio": 0.5},
			arguments: map[string]any{"source": "src"},
		},
		"Missing required value": {
			tokens: []string{"src", "--output"},
			err:    ErrMissingOptionValue,
		},
		"Required value followed by option": {
			tokens: []string{"--output", "-a", "src"},
			err:    ErrMissingOptionValue,
		},
		"Missing required argument": {
			tokens: []string{"--all"},
			err:    ErrMissingRequiredArgument,
		},
		"Too many arguments": {
			tokens: []string{"a", "b", "c"},
			err:    ErrTooManyArguments,
		},
		"Unknown long option": {
			tokens: []string{"--outptu", "x", "src"},
			err:    ErrNoSuchOption,
		},
		"Unknown short option": {
			tokens: []string{"-z", "src"},
			err:    ErrNoSuchOption,
		},
		"Value for a switch": {
			tokens: []string{"--all=yes", "src"},
			err:    ErrInvalidValue,
		},
		"Invalid float": {
			tokens: []string{"--ratio", "half", "src"},
			err:    ErrInvalidValue,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := Parse(tc.tokens, f)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			if tc.options == nil {
				tc.options = map[string]any{}
			}
			assert.Equal(t, tc.options, a.Options(false))
			assert.Equal(t, tc.arguments, a.Arguments(false))
		})
	}
}

func TestParse_UnknownOptionSuggestion(t *testing.T) {
	f := MustFormat(nil, MustOption("output", "o", RequiredValue, ""))
	_, err := Parse([]string{"--outptu"}, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `The option "--outptu" does not exist.`)
	assert.Contains(t, err.Error(), "Did you mean this?\n    --output")
}

func TestParse_SkipsCommandTokens(t *testing.T) {
	base := MustFormat(nil,
		MustOption("verbose", "v", NoValue, ""),
		MustCommandName("server", "srv"),
	)
	list := MustFormat(base,
		MustCommandName("list"),
		MustArgument("filter", Optional, ""),
	)
	del := MustFormat(base,
		MustCommandOption("delete", "D", 0),
		MustArgument("name", Required, ""),
	)

	tests := map[string]struct {
		format   *Format
		tokens   []string
		expected map[string]any
		err      error
	}{
		"All command names present": {
			format:   list,
			tokens:   []string{"server", "list", "abc"},
			expected: map[string]any{"filter": "abc"},
		},
		"Alias of a command name": {
			format:   list,
			tokens:   []string{"srv", "-v", "list", "abc"},
			expected: map[string]any{"filter": "abc"},
		},
		"Missing default command name": {
			format:   list,
			tokens:   []string{"server", "abc"},
			expected: map[string]any{"filter": "abc"},
		},
		"No command names": {
			format:   list,
			tokens:   nil,
			expected: map[string]any{},
		},
		"Command option is skipped": {
			format:   del,
			tokens:   []string{"server", "--delete", "abc"},
			expected: map[string]any{"name": "abc"},
		},
		"Short command option is skipped": {
			format:   del,
			tokens:   []string{"server", "abc", "-D"},
			expected: map[string]any{"name": "abc"},
		},
		"Command name after terminator is data": {
			format:   list,
			tokens:   []string{"server", "--", "list"},
			expected: map[string]any{"filter": "list"},
		},
		"Required argument still enforced": {
			format: del,
			tokens: []string{"server", "-D"},
			err:    ErrMissingRequiredArgument,
		},
		"Missing command option tolerates missing argument": {
			format:   del,
			tokens:   []string{"server"},
			expected: map[string]any{},
		},
		"Missing command name tolerates missing argument": {
			format:   MustFormat(base, MustCommandName("add"), MustArgument("name", Required, "")),
			tokens:   []string{"server"},
			expected: map[string]any{},
		},
		"Surplus arguments are never tolerated": {
			format: del,
			tokens: []string{"a", "b"},
			err:    ErrTooManyArguments,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := Parse(tc.tokens, tc.format)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, a.Arguments(false))
		})
	}
}

func TestDefaultParser_Lenient(t *testing.T) {
	f := MustFormat(nil,
		MustArgument("name", Required, ""),
		MustOption("count", "c", RequiredValue|Integer, ""),
	)
	p := DefaultParser{Lenient: true}

	a, err := p.Parse(nil, f)
	require.NoError(t, err, "Missing arguments should be tolerated")
	assert.False(t, a.IsArgumentSet("name"))

	a, err = p.Parse([]string{"a", "b"}, f)
	require.NoError(t, err, "Surplus arguments should be tolerated")
	assert.Equal(t, "a", must(a.Argument("name")))

	_, err = p.Parse([]string{"a", "-c", "many"}, f)
	assert.ErrorIs(t, err, ErrInvalidValue, "Type errors should never be tolerated")
}

func TestDefaultParser_ImplyCommand(t *testing.T) {
	base := MustFormat(nil, MustCommandName("package"))
	list := MustFormat(base, MustCommandName("list"), MustArgument("name", Required, ""))
	remove := MustFormat(base, MustCommandOption("remove", "r", 0), MustArgument("name", Required, ""))
	p := DefaultParser{ImplyCommand: true}

	_, err := p.Parse([]string{"package"}, list)
	assert.ErrorIs(t, err, ErrMissingRequiredArgument, "An implied command name should count as given")
	_, err = p.Parse([]string{"package"}, remove)
	assert.ErrorIs(t, err, ErrMissingRequiredArgument, "An implied command option should count as given")

	a, err := p.Parse([]string{"package", "foo"}, list)
	require.NoError(t, err)
	assert.Equal(t, "foo", must(a.Argument("name")))

	_, err = p.Parse(nil, list)
	assert.NoError(t, err, "Names of the base format are not implied")
}

func must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
