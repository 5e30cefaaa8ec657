package cli

import (
	"errors"
	"github.com/saylorsolutions/cmdkit/args"
	"github.com/stretchr/testify/assert"
	"io"
	"testing"
)

func TestApplication_BeforeRun(t *testing.T) {
	var (
		preExecRuns int
		ran         []string
	)
	app := NewApplication("base")
	app.Printer().Redirect(io.Discard)
	app.BeforeRun(func(resolved *ResolvedCommand) error {
		preExecRuns++
		assert.True(t, resolved.IsParsable(), "Arguments should be bound before pre-exec")
		return nil
	})
	testCmd := app.AddCommand("test", "Runs the test sub-command").Does(func(_ *args.Args, _ *Printer) error {
		ran = append(ran, "test")
		return nil
	})
	testCmd.AddCommand("two", "Runs the test two sub-command").Does(func(_ *args.Args, _ *Printer) error {
		ran = append(ran, "two")
		return nil
	})

	assert.Equal(t, 0, app.Run([]string{"test"}))
	assert.Equal(t, 1, preExecRuns, "Pre-exec should be run once here")
	assert.Equal(t, 0, app.Run([]string{"test", "two"}))
	assert.Equal(t, 2, preExecRuns, "Pre-exec should be run again, and only before running 'two'")
	assert.Equal(t, []string{"test", "two"}, ran)

	assert.Equal(t, 0, app.Run([]string{"test", "--help"}))
	assert.Equal(t, 2, preExecRuns, "Pre-exec should not run when printing usage")
}

func TestApplication_BeforeRun_Error(t *testing.T) {
	var ErrTesting = errors.New("test")
	app := NewApplication("base")
	app.Printer().Redirect(io.Discard)
	app.BeforeRun(func(*ResolvedCommand) error {
		return ErrTesting
	})
	executed := false
	app.AddCommand("test", "").Does(func(_ *args.Args, _ *Printer) error {
		executed = true
		return nil
	})
	assert.Equal(t, 1, app.Run([]string{"test"}))
	assert.False(t, executed, "The handler should not run if pre-exec fails")
	assert.Panics(t, func() {
		app.BeforeRun(nil)
	})
}
