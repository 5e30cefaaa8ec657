package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/saylorsolutions/cmdkit/args"
	"github.com/saylorsolutions/cmdkit/syncx"
)

// HelpPatterns is a slice of flags that trigger the output of usage information instead of running a [Command].
var HelpPatterns = []string{"--help", "-h"}

// Application is the root of a command tree.
// Its global options are inherited by every [Command], and a "--help" flag is declared by default.
type Application struct {
	CommandSet
	name        string
	description string
	usage       string
	globals     []args.Element
	globalErrs  []error
	format      *syncx.Lazy[*args.Format]
	printer     *Printer
	preExec     []PreExec

	// Settings are loaded from the environment by [NewApplication], see [LoadSettings].
	Settings Settings
	// Logger receives resolution logs.
	// If nil, then nothing is logged unless Settings.Debug is true.
	// With Settings.Debug, debug records go to both this Logger and the [Printer].
	Logger *slog.Logger
}

// NewApplication creates an [Application].
// The name should be the name used to invoke the CLI, and is used in usage output and as the prefix of [Settings] environment variables.
func NewApplication(name string) *Application {
	app := &Application{
		name:     strings.TrimSpace(name),
		globals:  []args.Element{args.MustOption("help", "h", args.NoValue, "Prints this usage information")},
		printer:  NewPrinter(),
		Settings: LoadSettings(name),
	}
	app.CommandSet = CommandSet{app: app}
	app.format = syncx.NewLazy(app.buildFormat)
	return app
}

func (a *Application) Name() string {
	return a.name
}

// Describe sets the description shown at the top of usage output.
func (a *Application) Describe(description string) *Application {
	a.description = description
	return a
}

// Usage allows specifying a longer description of the [Application] that will be output with its usage information.
func (a *Application) Usage(format string, vals ...any) *Application {
	a.usage = fmt.Sprintf(format, vals...)
	return a
}

// Option declares a global [args.Option], which every [Command] inherits.
func (a *Application) Option(longName, shortName string, flags args.Flags, description string, defaultValue ...any) *Application {
	opt, err := args.NewOption(longName, shortName, flags, description, defaultValue...)
	if err != nil {
		a.globalErrs = append(a.globalErrs, err)
		return a
	}
	a.globals = append(a.globals, opt)
	return a
}

// With declares pre-built global format elements.
func (a *Application) With(elements ...args.Element) *Application {
	a.globals = append(a.globals, elements...)
	return a
}

// Format returns the global [args.Format], which is the base of every command's format.
func (a *Application) Format() (*args.Format, error) {
	return a.format.Get()
}

func (a *Application) buildFormat() (*args.Format, error) {
	if len(a.globalErrs) > 0 {
		return nil, fmt.Errorf("application %q: %w", a.name, errors.Join(a.globalErrs...))
	}
	f, err := args.NewFormat(nil, a.globals...)
	if err != nil {
		return nil, fmt.Errorf("application %q: %w", a.name, err)
	}
	return f, nil
}

// Printer returns the [Printer] shared by every [Command] of this [Application].
func (a *Application) Printer() *Printer {
	return a.printer
}

// Validate builds the format of every [Command], and checks that command names are unique among their siblings.
// All problems found are joined in the returned error, each of them matching [args.ErrSchemaViolation].
func (a *Application) Validate() error {
	var errs []error
	if _, err := a.Format(); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, a.CommandSet.errs...)
	a.walk(func(cmd *Command) {
		errs = append(errs, cmd.CommandSet.errs...)
		if _, err := cmd.Format(); err != nil && !cmd.baseFailed() {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

// MustValidate is the same as [Application.Validate], but panics if there's a problem.
func (a *Application) MustValidate() *Application {
	if err := a.Validate(); err != nil {
		panic(err)
	}
	return a
}

// ResolverContext returns the [ResolverContext] used by [Application.Resolve], configured by [Settings].
func (a *Application) ResolverContext() ResolverContext {
	return ResolverContext{
		Parser: args.DefaultParser{Lenient: a.Settings.LenientArgs},
		Logger: a.debugLogger(),
	}
}

// Resolve selects the [Command] that should handle tokens, see [ResolverContext.Resolve].
// The tokens should not include the program name, so os.Args[1:] is usually passed.
func (a *Application) Resolve(tokens []string) (*ResolvedCommand, error) {
	return a.ResolverContext().Resolve(a, tokens)
}

// Run resolves and runs the [Command] for tokens, and returns the exit code the process should use.
//
//   - 0 is returned if the [Handler] succeeded, or if usage information was requested with one of [HelpPatterns].
//   - 1 is returned if resolution, binding, a [PreExec], or the [Handler] failed. Errors are printed to the [Printer].
//   - A [Handler] error with an ExitCode method, like [ExitError], chooses its own code.
//
// A [UsageError] from a [Handler] prints the usage of the command after the error.
// Calling a [Command] without a [Handler] prints its usage information.
func (a *Application) Run(tokens []string) int {
	if err := a.Validate(); err != nil {
		a.printer.Println(err)
		return 1
	}
	help := helpRequested(tokens)
	resolved, err := a.Resolve(tokens)
	if err != nil {
		switch {
		case help:
			a.printer.Print(a.Help())
			return 0
		case errors.Is(err, ErrNoDefaultCommand):
			a.printer.Print(a.Help())
		default:
			a.printer.Println(err)
		}
		return 1
	}
	cmd := resolved.Command()
	if help {
		a.printer.Print(cmd.Help())
		return 0
	}
	parsed, err := resolved.Args()
	if err != nil {
		a.printer.Println(err)
		return 1
	}
	if cmd.handler == nil {
		a.printer.Print(cmd.Help())
		return 0
	}
	if err := a.runPreExec(resolved); err != nil {
		a.printer.Println(err)
		return 1
	}
	return a.exitCode(cmd, cmd.handler(parsed, a.printer))
}

func (a *Application) exitCode(cmd *Command, err error) int {
	if err == nil {
		return 0
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Err != nil {
			a.printer.Println(err)
		}
		return coder.ExitCode()
	}
	a.printer.Println(err)
	if errors.Is(err, &UsageError{}) {
		a.printer.Println()
		a.printer.Print(cmd.Help())
	}
	return 1
}

func helpRequested(tokens []string) bool {
	for _, token := range tokens {
		if token == "--" {
			return false
		}
		if slices.Contains(HelpPatterns, token) {
			return true
		}
	}
	return false
}

// baseFailed determines if the format this command extends could not be built.
func (c *Command) baseFailed() bool {
	var err error
	if c.parent != nil {
		_, err = c.parent.Format()
	} else {
		_, err = c.app.Format()
	}
	return err != nil
}
