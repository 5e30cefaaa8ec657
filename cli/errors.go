package cli

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/cmdkit/suggest"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNoDefaultCommand = errors.New("no command given, and no default command is defined")
)

// CommandNotDefinedError is returned from resolution when the first token doesn't name a top-level command.
// It matches [ErrUnknownCommand].
type CommandNotDefinedError struct {
	Name        string
	Suggestions []string // Suggestions are similar command names, closest first.
}

func (e *CommandNotDefinedError) Error() string {
	msg := fmt.Sprintf("The command %q is not defined.", e.Name)
	if hint := suggest.DidYouMean(e.Suggestions); len(hint) > 0 {
		msg += "\n\n" + hint
	}
	return msg
}

func (e *CommandNotDefinedError) Unwrap() error {
	return ErrUnknownCommand
}

// UnknownSubCommandError is the parse error of a [ResolvedCommand] when a leftover token looks like an attempt to call a sub-command that doesn't exist.
// It matches both [ErrUnknownCommand] and the binding error it replaces, which is usually [args.ErrTooManyArguments].
type UnknownSubCommandError struct {
	Command     string // Command is the path of the command that was searched.
	Name        string
	Suggestions []string
	err         error
}

func (e *UnknownSubCommandError) Error() string {
	msg := fmt.Sprintf("The command %q does not have a sub-command %q.", e.Command, e.Name)
	if hint := suggest.DidYouMean(e.Suggestions); len(hint) > 0 {
		msg += "\n\n" + hint
	}
	return msg
}

func (e *UnknownSubCommandError) Unwrap() []error {
	return []error{ErrUnknownCommand, e.err}
}

// exitCoder is implemented by handler errors that choose their own exit code.
type exitCoder interface {
	ExitCode() int
}

// ExitError may be returned from a [Handler] to exit with a specific code.
// A nil wrapped error exits quietly.
type ExitError struct {
	Code int
	Err  error
}

// Exit creates an [ExitError].
func Exit(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *ExitError) ExitCode() int {
	return e.Code
}

// UsageError is returned from a [Handler] that finds its arguments don't make sense together, in a way the [args.Format] can't express.
// [Application.Run] prints the error, followed by the usage of the command.
type UsageError struct {
	Err error
}

// NewUsageError creates a [UsageError], passing format and vals to [fmt.Errorf].
func NewUsageError(format string, vals ...any) error {
	return &UsageError{Err: fmt.Errorf(format, vals...)}
}

// AsUsageError marks err as a [UsageError].
// A nil err is returned as-is, so it can wrap the result of a validation function.
func AsUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return "usage error"
	}
	return "usage error: " + e.Err.Error()
}

// Is matches any other *UsageError, so errors.Is(err, &UsageError{}) finds one anywhere in a chain.
func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
