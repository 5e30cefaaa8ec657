package args

import (
	"slices"
	"strings"
)

// CommandName is a keyword that selects a command, like the "add" in "tool package add".
// It's structural: the binder skips it instead of binding it to an [Argument].
type CommandName struct {
	name    string
	aliases []string
}

// NewCommandName creates a [CommandName] that may also be matched by any of its aliases.
func NewCommandName(name string, aliases ...string) (*CommandName, error) {
	if !namePattern.MatchString(name) {
		return nil, newSchemaError(ReasonInvalidName, name, "The command name %q must start with a letter and contain only letters, digits and hyphens.", name)
	}
	for _, alias := range aliases {
		if !namePattern.MatchString(alias) {
			return nil, newSchemaError(ReasonInvalidName, alias, "The alias %q of command %q must start with a letter and contain only letters, digits and hyphens.", alias, name)
		}
	}
	return &CommandName{name: name, aliases: slices.Clone(aliases)}, nil
}

// MustCommandName is the same as [NewCommandName], but panics if a name is not valid.
func MustCommandName(name string, aliases ...string) *CommandName {
	cn, err := NewCommandName(name, aliases...)
	if err != nil {
		panic(err)
	}
	return cn
}

func (c *CommandName) Name() string {
	return c.name
}

func (c *CommandName) Aliases() []string {
	return slices.Clone(c.aliases)
}

// Match determines if the token is the name or one of the aliases.
func (c *CommandName) Match(token string) bool {
	return token == c.name || slices.Contains(c.aliases, token)
}

func (c *CommandName) String() string {
	return c.name
}

func (c *CommandName) addTo(b *FormatBuilder) error {
	return b.AddCommandName(c)
}

// CommandOption is like a [CommandName], but it's spelled as a flag (--add or -a).
type CommandOption struct {
	longName  string
	shortName string
	aliases   []string
	flags     Flags
}

// NewCommandOption creates a [CommandOption].
// Only [PreferLongName] or [PreferShortName] are accepted as flags. Aliases are alternative long names.
func NewCommandOption(longName, shortName string, flags Flags, aliases ...string) (*CommandOption, error) {
	longName, shortName, err := validateOptionNames(longName, shortName, flags)
	if err != nil {
		return nil, err
	}
	if flags&^namePrefs != 0 {
		return nil, newSchemaError(ReasonInvalidFlags, longName, "The flags %s are not valid for command option %q.", flags&^namePrefs, longName)
	}
	if flags&namePrefs == 0 {
		flags |= PreferLongName
	}
	cleaned := make([]string, len(aliases))
	for i, alias := range aliases {
		alias = strings.TrimPrefix(alias, "--")
		if len(alias) < 2 || !namePattern.MatchString(alias) {
			return nil, newSchemaError(ReasonInvalidName, alias, "The alias %q of command option %q must have at least two characters, start with a letter and contain only letters, digits and hyphens.", alias, longName)
		}
		cleaned[i] = alias
	}
	return &CommandOption{longName: longName, shortName: shortName, aliases: cleaned, flags: flags}, nil
}

// MustCommandOption is the same as [NewCommandOption], but panics if it's not valid.
func MustCommandOption(longName, shortName string, flags Flags, aliases ...string) *CommandOption {
	co, err := NewCommandOption(longName, shortName, flags, aliases...)
	if err != nil {
		panic(err)
	}
	return co
}

func (c *CommandOption) LongName() string {
	return c.longName
}

func (c *CommandOption) ShortName() string {
	return c.shortName
}

func (c *CommandOption) Aliases() []string {
	return slices.Clone(c.aliases)
}

func (c *CommandOption) Flags() Flags {
	return c.flags
}

// PreferredName returns the name that should be used to display the command option, including the leading dash(es).
func (c *CommandOption) PreferredName() string {
	if c.flags.Has(PreferShortName) {
		return "-" + c.shortName
	}
	return "--" + c.longName
}

// Match determines if a raw token like "--add" or "-a" spells this command option.
func (c *CommandOption) Match(token string) bool {
	if long, ok := strings.CutPrefix(token, "--"); ok {
		return long == c.longName || slices.Contains(c.aliases, long)
	}
	if short, ok := strings.CutPrefix(token, "-"); ok {
		return len(c.shortName) > 0 && short == c.shortName
	}
	return false
}

// MatchName determines if a bare name (without dashes) is the long name, short name, or an alias.
func (c *CommandOption) MatchName(name string) bool {
	if name == c.longName || slices.Contains(c.aliases, name) {
		return true
	}
	return len(c.shortName) > 0 && name == c.shortName
}

func (c *CommandOption) String() string {
	return c.PreferredName()
}

func (c *CommandOption) addTo(b *FormatBuilder) error {
	return b.AddCommandOption(c)
}
