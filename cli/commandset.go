package cli

import (
	"fmt"
	"strings"

	"github.com/saylorsolutions/cmdkit/args"
	"github.com/saylorsolutions/cmdkit/suggest"
	"github.com/tidwall/btree"
)

// CommandSet is a group of [Command].
// Commands are kept in declaration order, and indexed by every token that selects them: names and aliases for keyword commands, and "--long", "--alias" and "-s" for option-commands.
type CommandSet struct {
	app      *Application
	owner    *Command
	commands []*Command
	index    *btree.Map[string, *Command]
	errs     []error
}

func (s *CommandSet) idx() *btree.Map[string, *Command] {
	if s.index == nil {
		s.index = btree.NewMap[string, *Command](0)
	}
	return s.index
}

// AddCommand adds a keyword command to this [CommandSet].
// Aliases may be added as a way to support shorter variants of the same [Command].
func (s *CommandSet) AddCommand(name, description string, aliases ...string) *Command {
	kind := SubCommand
	if s.owner == nil {
		kind = Simple
	}
	cmd := newCommand(s, kind, name, "", description)
	s.commands = append(s.commands, cmd)
	s.register(cmd, cmd.name)
	return cmd.Alias(aliases...)
}

// AddOptionCommand adds a command that's selected with a flag, like "--add" or "-a".
// The shortName may be empty, and aliases are alternative long names.
func (s *CommandSet) AddOptionCommand(longName, shortName, description string, aliases ...string) *Command {
	cmd := newCommand(s, OptionCommand, strings.TrimLeft(longName, "-"), strings.TrimLeft(shortName, "-"), description)
	s.commands = append(s.commands, cmd)
	s.register(cmd, "--"+cmd.name)
	if len(cmd.shortName) > 0 {
		s.register(cmd, "-"+cmd.shortName)
	}
	return cmd.Alias(aliases...)
}

// register indexes cmd by the given tokens.
// A token that's already taken is reported by [Application.Validate].
func (s *CommandSet) register(cmd *Command, tokens ...string) {
	for _, token := range tokens {
		if existing, ok := s.idx().Get(token); ok {
			s.errs = append(s.errs, &args.SchemaError{
				Reason:  args.ReasonExistsAlready,
				Subject: token,
				Message: fmt.Sprintf("The name %q of command %q is already used by command %q.", token, cmd.name, existing.name),
			})
			continue
		}
		s.idx().Set(token, cmd)
	}
}

// Get looks up a [Command] by name or alias.
// Option-commands may be looked up with or without leading dashes.
// Nil is returned if there's no match.
func (s *CommandSet) Get(name string) *Command {
	for _, token := range []string{name, "--" + name, "-" + name} {
		if cmd, ok := s.idx().Get(token); ok {
			return cmd
		}
	}
	return nil
}

// Contains determines if a [Command] can be found with [CommandSet.Get].
func (s *CommandSet) Contains(name string) bool {
	return s.Get(name) != nil
}

// Commands returns all commands in declaration order.
func (s *CommandSet) Commands() []*Command {
	return s.filter(func(*Command) bool { return true })
}

// SubCommands returns the keyword commands in declaration order.
func (s *CommandSet) SubCommands() []*Command {
	return s.filter(func(cmd *Command) bool { return cmd.kind != OptionCommand })
}

// OptionCommands returns the option-commands in declaration order.
func (s *CommandSet) OptionCommands() []*Command {
	return s.filter(func(cmd *Command) bool { return cmd.kind == OptionCommand })
}

// DefaultCommands returns the default commands of either kind in declaration order.
func (s *CommandSet) DefaultCommands() []*Command {
	return s.filter(func(cmd *Command) bool { return cmd.isDefault })
}

// NamedCommands returns the commands that may be called by name, sorted by name.
func (s *CommandSet) NamedCommands() []*Command {
	var cmds []*Command
	s.idx().Scan(func(token string, cmd *Command) bool {
		if token == cmd.key() && !cmd.isAnonymous {
			cmds = append(cmds, cmd)
		}
		return true
	})
	return cmds
}

// HasNamedSubCommands determines if any keyword command may be called by name.
func (s *CommandSet) HasNamedSubCommands() bool {
	for _, cmd := range s.commands {
		if cmd.kind != OptionCommand && !cmd.isAnonymous {
			return true
		}
	}
	return false
}

// Names returns the tokens that select named commands, sorted.
// If includeAliases is false, then only primary names are included.
func (s *CommandSet) Names(includeAliases bool) []string {
	var names []string
	s.idx().Scan(func(token string, cmd *Command) bool {
		if cmd.isAnonymous {
			return true
		}
		if includeAliases || token == cmd.key() {
			names = append(names, token)
		}
		return true
	})
	return names
}

func (s *CommandSet) filter(fn func(*Command) bool) []*Command {
	var cmds []*Command
	for _, cmd := range s.commands {
		if fn(cmd) {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// matchSubCommand finds a named keyword command by name or alias.
func (s *CommandSet) matchSubCommand(token string) *Command {
	cmd, ok := s.idx().Get(token)
	if !ok || cmd.kind == OptionCommand || cmd.isAnonymous {
		return nil
	}
	return cmd
}

// matchOptionCommand finds an option-command spelled by a raw token like "--add" or "-a".
func (s *CommandSet) matchOptionCommand(token string) *Command {
	cmd, ok := s.idx().Get(token)
	if !ok || cmd.kind != OptionCommand {
		return nil
	}
	return cmd
}

// suggestions returns the named keyword commands similar to name.
func (s *CommandSet) suggestions(name string) []string {
	var groups []suggest.Group
	for _, cmd := range s.commands {
		if cmd.kind == OptionCommand || cmd.isAnonymous {
			continue
		}
		groups = append(groups, cmd.tokens())
	}
	return suggest.Similar(name, groups...)
}

// CommandUsages returns a string including the usage information for named commands in this [CommandSet].
//
// The commands will be sorted alphabetically before output.
func (s *CommandSet) CommandUsages() string {
	var (
		buf    strings.Builder
		cmds   = s.NamedCommands()
		labels = make([]string, len(cmds))
		maxLen int
	)
	for i, cmd := range cmds {
		labels[i] = strings.Join(cmd.labelTokens(), ", ")
		if l := len(labels[i]); l > maxLen {
			maxLen = l
		}
	}
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for i, cmd := range cmds {
		desc := cmd.description
		if cmd.isDefault {
			desc = strings.TrimSpace(desc + " (default)")
		}
		buf.WriteString(fmt.Sprintf(fmtStr, labels[i], desc))
	}
	return buf.String()
}

// path is the command path of the owner, or the application name for the root set.
func (s *CommandSet) path() string {
	if s.owner != nil {
		return s.owner.CommandPath()
	}
	return s.app.name
}

// walk calls fn for every command in this [CommandSet] and their descendants, depth first.
func (s *CommandSet) walk(fn func(cmd *Command)) {
	for _, cmd := range s.commands {
		fn(cmd)
		cmd.CommandSet.walk(fn)
	}
}
