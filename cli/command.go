package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/saylorsolutions/cmdkit/args"
	"github.com/saylorsolutions/cmdkit/syncx"
)

// Kind identifies how a [Command] is selected from the command line.
type Kind int

const (
	Simple        Kind = iota // Simple commands are top-level keyword commands, like "tool build".
	SubCommand                // SubCommand commands are keywords nested in another command, like "tool package add".
	OptionCommand             // OptionCommand commands are spelled as a flag of their parent command, like "tool package --add".
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case SubCommand:
		return "sub-command"
	case OptionCommand:
		return "option-command"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Handler is the function that runs when a [Command] is resolved.
// The [args.Args] are already bound and typed by the time it's called.
type Handler = func(a *args.Args, printer *Printer) error

// Command is a node in the command tree of an [Application].
// Commands are created with [CommandSet.AddCommand] or [CommandSet.AddOptionCommand], and configured with the fluent methods on Command.
//
// A Command's [args.Format] is built on first use, so a Command should be fully configured before the [Application] is run.
type Command struct {
	CommandSet
	set         *CommandSet
	parent      *Command
	kind        Kind
	name        string
	shortName   string
	aliases     []string
	nameFlags   args.Flags
	description string
	usage       string
	isDefault   bool
	isAnonymous bool
	elements    []args.Element
	elementErrs []error
	handler     Handler
	format      *syncx.Lazy[*args.Format]
}

func newCommand(set *CommandSet, kind Kind, name, shortName, description string) *Command {
	cmd := &Command{
		set:         set,
		parent:      set.owner,
		kind:        kind,
		name:        strings.TrimSpace(name),
		shortName:   strings.TrimSpace(shortName),
		description: description,
	}
	cmd.CommandSet = CommandSet{app: set.app, owner: cmd}
	cmd.format = syncx.NewLazy(cmd.buildFormat)
	return cmd
}

// Alias adds alternative names for this [Command].
// Aliases of an option-command are alternative long names.
func (c *Command) Alias(aliases ...string) *Command {
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		if c.kind == OptionCommand {
			alias = strings.TrimLeft(alias, "-")
		}
		if len(alias) == 0 || slices.Contains(c.aliases, alias) {
			continue
		}
		c.aliases = append(c.aliases, alias)
		if c.kind == OptionCommand {
			c.set.register(c, "--"+alias)
		} else {
			c.set.register(c, alias)
		}
	}
	return c
}

// Describe sets the short description shown in command listings and at the top of usage output.
func (c *Command) Describe(description string) *Command {
	c.description = description
	return c
}

// Usage allows specifying a longer description of the [Command] that will be output when a [HelpPatterns] flag is passed.
//
// The synopsis, argument usages, flag usages, and sub-command usages will be appended to this description.
func (c *Command) Usage(format string, vals ...any) *Command {
	c.usage = fmt.Sprintf(format, vals...)
	return c
}

// PreferShortName makes usage output spell an option-command with its short name.
func (c *Command) PreferShortName() *Command {
	c.nameFlags = args.PreferShortName
	return c
}

// MarkDefault makes this [Command] run when its parent is called without naming one of its children.
// When a parent has several default commands, the first one that accepts the given tokens is used.
func (c *Command) MarkDefault() *Command {
	c.isDefault = true
	return c
}

// MarkAnonymous makes this [Command] a default command that can't be called by name.
// Its name is left out of its synopsis, and no command name token is expected for it.
func (c *Command) MarkAnonymous() *Command {
	c.isAnonymous = true
	c.isDefault = true
	return c
}

// Argument declares a positional [args.Argument] for this [Command].
// See [args.NewArgument] for the rules that apply, any violation is reported when the command's format is built.
func (c *Command) Argument(name string, flags args.Flags, description string, defaultValue ...any) *Command {
	arg, err := args.NewArgument(name, flags, description, defaultValue...)
	if err != nil {
		c.elementErrs = append(c.elementErrs, err)
		return c
	}
	c.elements = append(c.elements, arg)
	return c
}

// Option declares an [args.Option] for this [Command].
// Options are inherited by sub-commands and option-commands.
func (c *Command) Option(longName, shortName string, flags args.Flags, description string, defaultValue ...any) *Command {
	opt, err := args.NewOption(longName, shortName, flags, description, defaultValue...)
	if err != nil {
		c.elementErrs = append(c.elementErrs, err)
		return c
	}
	c.elements = append(c.elements, opt)
	return c
}

// With declares pre-built format elements for this [Command].
func (c *Command) With(elements ...args.Element) *Command {
	c.elements = append(c.elements, elements...)
	return c
}

// Does specifies the [Handler] that should be executed by this [Command].
// A Command without a Handler prints its usage when called.
func (c *Command) Does(handler Handler) *Command {
	if handler == nil {
		return c
	}
	c.handler = handler
	return c
}

func (c *Command) Name() string {
	return c.name
}

// ShortName returns the one letter name of an option-command, which may be empty.
func (c *Command) ShortName() string {
	return c.shortName
}

func (c *Command) Aliases() []string {
	return slices.Clone(c.aliases)
}

func (c *Command) Kind() Kind {
	return c.kind
}

func (c *Command) Description() string {
	return c.description
}

// Parent retrieves the parent [Command], which is nil for top-level commands.
func (c *Command) Parent() *Command {
	return c.parent
}

func (c *Command) IsDefault() bool {
	return c.isDefault
}

func (c *Command) IsAnonymous() bool {
	return c.isAnonymous
}

// Application returns the [Application] this [Command] belongs to.
func (c *Command) Application() *Application {
	return c.app
}

// DisplayName is the name as it's typed on the command line, like "add" or "--add".
func (c *Command) DisplayName() string {
	if c.kind != OptionCommand {
		return c.name
	}
	if c.nameFlags.Has(args.PreferShortName) && len(c.shortName) > 0 {
		return "-" + c.shortName
	}
	return "--" + c.name
}

// CommandPath returns the reference chain for this [Command], starting with the application name.
// Anonymous commands are left out, since they're never typed.
func (c *Command) CommandPath() string {
	var names []string
	for cmd := c; cmd != nil; cmd = cmd.parent {
		if !cmd.isAnonymous {
			names = append(names, cmd.DisplayName())
		}
	}
	if len(c.app.name) > 0 {
		names = append(names, c.app.name)
	}
	slices.Reverse(names)
	return strings.Join(names, " ")
}

// Format returns the [args.Format] of this [Command].
// It extends the format of the parent command (or the global format of the [Application]) with this command's name and its declared elements.
// The format is built once, and the same result is returned from every call.
func (c *Command) Format() (*args.Format, error) {
	return c.format.Get()
}

func (c *Command) buildFormat() (*args.Format, error) {
	if len(c.elementErrs) > 0 {
		return nil, fmt.Errorf("command %q: %w", c.CommandPath(), errors.Join(c.elementErrs...))
	}
	var (
		base *args.Format
		err  error
	)
	if c.parent != nil {
		base, err = c.parent.Format()
	} else {
		base, err = c.app.Format()
	}
	if err != nil {
		return nil, err
	}
	b := args.NewFormatBuilder(base)
	switch c.kind {
	case OptionCommand:
		co, err := args.NewCommandOption(c.name, c.shortName, c.nameFlags, c.aliases...)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", c.CommandPath(), err)
		}
		err = b.AddCommandOption(co)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", c.CommandPath(), err)
		}
	default:
		if !c.isAnonymous {
			cn, err := args.NewCommandName(c.name, c.aliases...)
			if err != nil {
				return nil, fmt.Errorf("command %q: %w", c.CommandPath(), err)
			}
			err = b.AddCommandName(cn)
			if err != nil {
				return nil, fmt.Errorf("command %q: %w", c.CommandPath(), err)
			}
		}
	}
	if err := b.Add(c.elements...); err != nil {
		return nil, fmt.Errorf("command %q: %w", c.CommandPath(), err)
	}
	return b.Format(), nil
}

// tokens returns every token that selects this command, primary name first.
func (c *Command) tokens() []string {
	if c.kind != OptionCommand {
		return append([]string{c.name}, c.aliases...)
	}
	tokens := []string{"--" + c.name}
	for _, alias := range c.aliases {
		tokens = append(tokens, "--"+alias)
	}
	if len(c.shortName) > 0 {
		tokens = append(tokens, "-"+c.shortName)
	}
	return tokens
}

// labelTokens returns the tokens of this command with the one used by [Command.DisplayName] first.
func (c *Command) labelTokens() []string {
	tokens := c.tokens()
	display := c.DisplayName()
	if i := slices.Index(tokens, display); i > 0 {
		tokens = append(append([]string{display}, tokens[:i]...), tokens[i+1:]...)
	}
	return tokens
}

// key is the primary index key of this command.
func (c *Command) key() string {
	return c.tokens()[0]
}
