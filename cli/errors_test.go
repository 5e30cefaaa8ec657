package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cmdkit/args"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func TestUsageError(t *testing.T) {
	var ErrTesting = errors.New("test")
	err := NewUsageError("bad input: %w", ErrTesting)
	assert.ErrorIs(t, err, &UsageError{})
	assert.ErrorIs(t, err, ErrTesting)
	assert.Equal(t, "usage error: bad input: test", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	var usageErr *UsageError
	require.True(t, errors.As(wrapped, &usageErr))
	assert.Same(t, err, usageErr)

	assert.Equal(t, "usage error", (&UsageError{}).Error(), "Default error output should be returned when there is no wrapped error")
	assert.Nil(t, AsUsageError(nil))
	assert.ErrorIs(t, AsUsageError(ErrTesting), &UsageError{})
	assert.NotErrorIs(t, ErrTesting, &UsageError{})
}

func TestCommandNotDefinedError(t *testing.T) {
	err := &CommandNotDefinedError{Name: "lst"}
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, `The command "lst" is not defined.`, err.Error())

	err.Suggestions = []string{"list"}
	assert.Equal(t, "The command \"lst\" is not defined.\n\nDid you mean this?\n    list", err.Error())
}

func TestUnknownSubCommandError(t *testing.T) {
	cause := &args.ParseError{Kind: args.ErrTooManyArguments, Name: "lst"}
	err := &UnknownSubCommandError{Command: "tool package", Name: "lst", Suggestions: []string{"list", "last"}, err: cause}
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.ErrorIs(t, err, args.ErrTooManyArguments)
	assert.Contains(t, err.Error(), `The command "tool package" does not have a sub-command "lst".`)
	assert.Contains(t, err.Error(), "Did you mean one of these?\n    list\n    last")
}

func TestExitError(t *testing.T) {
	quiet := Exit(2, nil)
	assert.Equal(t, "exit status 2", quiet.Error())
	assert.Equal(t, 2, quiet.ExitCode())

	var ErrTesting = errors.New("test")
	loud := Exit(3, ErrTesting)
	assert.Equal(t, "test", loud.Error())
	assert.ErrorIs(t, loud, ErrTesting)

	var coder exitCoder
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", loud), &coder))
	assert.Equal(t, 3, coder.ExitCode())
}

func ExampleNewUsageError() {
	app := NewApplication("parent")
	app.AddCommand("command", "test command").Does(func(_ *args.Args, _ *Printer) error {
		return NewUsageError("test usage error")
	})
	// Done for testing purposes
	app.Printer().Redirect(os.Stdout)
	// Exit code not handled for brevity
	_ = app.Run([]string{"command"})

	// Output:
	// usage error: test usage error
	//
	// test command
	//
	// USAGE:
	// parent command [FLAGS]
	//
	// FLAGS
	//   -h, --help   Prints this usage information
}
