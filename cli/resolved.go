package cli

import (
	"slices"

	"github.com/saylorsolutions/cmdkit/args"
	"github.com/saylorsolutions/cmdkit/syncx"
)

// ResolvedCommand is the result of resolution: the [Command] to run, and the raw tokens for it.
//
// The tokens are bound to the command's [args.Format] on first access, and the result is cached.
// Resolution never fails because of malformed arguments, those errors are reported by [ResolvedCommand.Args] instead.
type ResolvedCommand struct {
	command *Command
	tokens  []string
	parsed  *syncx.Lazy[*args.Args]
}

func newResolvedCommand(cmd *Command, tokens []string, bind func(cmd *Command, tokens []string) (*args.Args, error)) *ResolvedCommand {
	r := &ResolvedCommand{command: cmd, tokens: tokens}
	r.parsed = syncx.NewLazy(func() (*args.Args, error) {
		return bind(cmd, tokens)
	})
	return r
}

func (r *ResolvedCommand) Command() *Command {
	return r.command
}

// Tokens returns the full token stream that was resolved.
func (r *ResolvedCommand) Tokens() []string {
	return slices.Clone(r.tokens)
}

// Args binds the tokens to the command's [args.Format] on the first call, and returns the cached result after that.
func (r *ResolvedCommand) Args() (*args.Args, error) {
	return r.parsed.Get()
}

// ParseError returns the binding error, or nil if the tokens were bound successfully.
func (r *ResolvedCommand) ParseError() error {
	_, err := r.Args()
	return err
}

// IsParsable determines if the tokens can be bound to the command's [args.Format].
func (r *ResolvedCommand) IsParsable() bool {
	return r.ParseError() == nil
}
