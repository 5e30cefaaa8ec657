package cli

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/saylorsolutions/cmdkit/args"
)

// ResolverContext carries what resolution and binding need beyond the command tree.
// The zero value is ready to use: it binds with [args.DefaultParser] and doesn't log.
type ResolverContext struct {
	Parser args.Parser
	Logger *slog.Logger // Logger receives debug records describing how a command was selected.
}

func (ctx ResolverContext) parser() args.Parser {
	if ctx.Parser == nil {
		return args.DefaultParser{}
	}
	return ctx.Parser
}

func (ctx ResolverContext) logger() *slog.Logger {
	if ctx.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return ctx.Logger
}

// candidates are the tokens that resolution looks at.
type candidates struct {
	arguments []string // arguments are the bare tokens before the first option-like token.
	options   []string // options are the "--long" and "-s" tokens before "--".
}

func classify(tokens []string) candidates {
	var (
		c          candidates
		optionSeen bool
	)
	for _, token := range tokens {
		if token == "--" {
			break
		}
		if len(token) > 1 && token[0] == '-' {
			// The value of an option can't be told apart from an argument without the schema, so classification of arguments stops here.
			optionSeen = true
			if strings.HasPrefix(token, "--") {
				name, _, _ := strings.Cut(token, "=")
				if len(name) > 2 {
					c.options = append(c.options, name)
				}
			} else if len(token) == 2 {
				c.options = append(c.options, token)
			}
			continue
		}
		if !optionSeen {
			c.arguments = append(c.arguments, token)
		}
	}
	return c
}

// Resolve selects the [Command] of app that should handle tokens.
//
// Leading bare tokens are matched against named commands, descending into sub-commands as long as they match.
// Then option-commands of the matched command are applied, where the last matching option token wins, and default commands are applied until neither selects anything new.
// When several default commands are declared, the first one that accepts the tokens is selected, or the first one if none do.
//
// A [*CommandNotDefinedError] is returned if the first token doesn't match a command and there's no default to fall back to.
// [ErrNoDefaultCommand] is returned if no command could be selected otherwise.
// The returned [ResolvedCommand] holds the full token stream, since the command's format recognizes and skips its own command tokens.
func (ctx ResolverContext) Resolve(app *Application, tokens []string) (*ResolvedCommand, error) {
	var (
		log      = ctx.logger()
		cands    = classify(tokens)
		set      = &app.CommandSet
		cmd      *Command
		consumed int
		leftover string
	)
	for _, token := range cands.arguments {
		next := set.matchSubCommand(token)
		if next == nil {
			break
		}
		log.Debug("Matched command", "token", token, "command", next.CommandPath())
		cmd, set = next, &next.CommandSet
		consumed++
	}
	if consumed < len(cands.arguments) {
		leftover = cands.arguments[consumed]
	}
	searched := set

	cmd, err := ctx.descend(set, cmd, tokens, cands.options)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		if len(leftover) > 0 {
			return nil, &CommandNotDefinedError{Name: leftover, Suggestions: searched.suggestions(leftover)}
		}
		return nil, ErrNoDefaultCommand
	}
	log.Debug("Resolved command", "command", cmd.CommandPath(), "kind", cmd.kind.String())
	return newResolvedCommand(cmd, tokens, ctx.binder(searched, leftover)), nil
}

func (ctx ResolverContext) descend(set *CommandSet, cmd *Command, tokens, options []string) (*Command, error) {
	log := ctx.logger()
	for {
		if oc := matchLastOptionCommand(set, options); oc != nil {
			log.Debug("Selected option-command", "command", oc.CommandPath())
			cmd, set = oc, &oc.CommandSet
			continue
		}
		def, err := ctx.defaultCommand(set, tokens)
		if err != nil {
			return nil, err
		}
		if def == nil {
			return cmd, nil
		}
		log.Debug("Applied default command", "command", def.CommandPath())
		cmd, set = def, &def.CommandSet
	}
}

func matchLastOptionCommand(set *CommandSet, options []string) *Command {
	var selected *Command
	for _, token := range options {
		if oc := set.matchOptionCommand(token); oc != nil {
			selected = oc
		}
	}
	return selected
}

func (ctx ResolverContext) defaultCommand(set *CommandSet, tokens []string) (*Command, error) {
	defaults := set.DefaultCommands()
	switch len(defaults) {
	case 0:
		return nil, nil
	case 1:
		return defaults[0], nil
	}
	for _, def := range defaults {
		f, err := def.Format()
		if err != nil {
			return nil, err
		}
		if _, err = ctx.trialParser().Parse(tokens, f); err == nil {
			return def, nil
		}
		ctx.logger().Debug("Default command does not accept the tokens", "command", def.CommandPath(), "error", err)
	}
	return defaults[0], nil
}

// trialParser checks whether a default command accepts the tokens.
// The name of the default isn't in the tokens, so the [args.DefaultParser] is told to imply it.
// Other parsers are used as they are.
func (ctx ResolverContext) trialParser() args.Parser {
	switch p := ctx.parser().(type) {
	case args.DefaultParser:
		p.ImplyCommand = true
		return p
	default:
		return p
	}
}

// binder creates the binding function of a [ResolvedCommand].
// A surplus leftover token is reported as an unknown sub-command of the command set that was searched for it.
func (ctx ResolverContext) binder(searched *CommandSet, leftover string) func(*Command, []string) (*args.Args, error) {
	return func(cmd *Command, tokens []string) (*args.Args, error) {
		f, err := cmd.Format()
		if err != nil {
			return nil, err
		}
		a, err := ctx.parser().Parse(tokens, f)
		if err == nil {
			return a, nil
		}
		var parseErr *args.ParseError
		if len(leftover) > 0 && errors.Is(err, args.ErrTooManyArguments) && errors.As(err, &parseErr) &&
			parseErr.Name == leftover && searched.HasNamedSubCommands() {
			return nil, &UnknownSubCommandError{
				Command:     searched.path(),
				Name:        leftover,
				Suggestions: searched.suggestions(leftover),
				err:         err,
			}
		}
		return nil, err
	}
}
