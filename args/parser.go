package args

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/saylorsolutions/cmdkit/suggest"
)

// Parser binds raw tokens to a [Format].
type Parser interface {
	Parse(tokens []string, format *Format) (*Args, error)
}

var _ Parser = DefaultParser{}

// DefaultParser is the standard [Parser].
//
// Tokens are consumed in order:
//   - "--" stops option parsing, and all later tokens are positional.
//   - "--name" and "--name=value" set a long option. A value may also be given as the next token, as long as it doesn't look like an option.
//   - "-x", "-xvalue" and "-abc" set short options. Only the last option in a group may take a value from the next token.
//   - Tokens that spell a command name or command option of the [Format] are skipped.
//   - Everything else fills the arguments in order, and a trailing [MultiValued] argument takes all that's left.
//
// Missing [Required] arguments are only reported when every command name and command option of the [Format] was given.
//
// If Lenient is true, then missing required arguments and surplus tokens are tolerated.
type DefaultParser struct {
	Lenient bool
	// ImplyCommand counts the command names and command options declared by the format itself (not its base) as given.
	// Resolution sets this when checking whether a default command accepts the tokens, since selecting a default stands in for its name.
	ImplyCommand bool
}

// Parse binds tokens with a [DefaultParser].
func Parse(tokens []string, format *Format) (*Args, error) {
	return DefaultParser{}.Parse(tokens, format)
}

type parseState struct {
	format    *Format
	args      *Args
	tokens    []string
	pos       int
	names     []*CommandName
	nameIdx   int
	nameSet   []bool
	cmdOpts   []*CommandOption
	cmdOptSet []bool
	arguments []*Argument
	argIdx    int
	multi     []string
	surplus   []string
}

func (p DefaultParser) Parse(tokens []string, format *Format) (*Args, error) {
	s := &parseState{
		format:    format,
		args:      NewArgs(format, tokens),
		tokens:    tokens,
		names:     format.CommandNames(),
		cmdOpts:   format.CommandOptions(),
		arguments: format.Arguments(),
	}
	s.nameSet = make([]bool, len(s.names))
	s.cmdOptSet = make([]bool, len(s.cmdOpts))
	if p.ImplyCommand {
		markTail(s.nameSet, len(format.commandNames))
		markTail(s.cmdOptSet, len(format.commandOptions))
	}
	parseOptions := true
	for ; s.pos < len(tokens); s.pos++ {
		token := tokens[s.pos]
		switch {
		case parseOptions && token == "--":
			parseOptions = false
			// Command names can't follow the terminator.
			s.nameIdx = len(s.names)
		case parseOptions && s.isCommandOption(token):
			continue
		case parseOptions && strings.HasPrefix(token, "--"):
			if err := s.parseLongOption(token[2:]); err != nil {
				return nil, err
			}
		case parseOptions && looksLikeOption(token):
			if err := s.parseShortOptions(token[1:]); err != nil {
				return nil, err
			}
		default:
			if err := s.parsePositional(token); err != nil {
				return nil, err
			}
		}
	}
	if err := s.finish(p.Lenient); err != nil {
		return nil, err
	}
	return s.args, nil
}

func looksLikeOption(token string) bool {
	return len(token) > 1 && token[0] == '-'
}

func (s *parseState) isCommandOption(token string) bool {
	for i, co := range s.cmdOpts {
		if co.Match(token) {
			s.cmdOptSet[i] = true
			return true
		}
	}
	return false
}

// markTail sets the last n flags, which belong to the format at the end of the base chain.
func markTail(flags []bool, n int) {
	for i := len(flags) - n; i < len(flags); i++ {
		flags[i] = true
	}
}

// commandTokenMissing reports whether a command name or command option of the format wasn't given.
func (s *parseState) commandTokenMissing() bool {
	return slices.Contains(s.nameSet, false) || slices.Contains(s.cmdOptSet, false)
}

// nextValue consumes the next token as an option value if there is one that doesn't look like an option.
func (s *parseState) nextValue() (string, bool) {
	if s.pos+1 >= len(s.tokens) || looksLikeOption(s.tokens[s.pos+1]) {
		return "", false
	}
	s.pos++
	return s.tokens[s.pos], true
}

func (s *parseState) parseLongOption(spec string) error {
	name, value, hasValue := strings.Cut(spec, "=")
	var opt *Option
	if len(name) >= 2 && !strings.HasPrefix(name, "-") {
		opt = s.format.Option(name)
	}
	if opt == nil {
		return s.noSuchOption("--" + name)
	}
	if !opt.AcceptsValue() {
		if hasValue {
			return newParseError(ErrInvalidValue, opt.longName, "The option \"--%s\" does not accept a value.", opt.longName)
		}
		return s.args.SetOption(opt.longName)
	}
	if !hasValue {
		value, hasValue = s.nextValue()
	}
	return s.setOptionValue(opt, value, hasValue)
}

func (s *parseState) parseShortOptions(group string) error {
	for i, r := range group {
		name := string(r)
		opt := s.format.Option(name)
		if opt == nil || opt.shortName != name {
			return s.noSuchOption("-" + name)
		}
		if !opt.AcceptsValue() {
			if err := s.args.SetOption(opt.longName); err != nil {
				return err
			}
			continue
		}
		rest := group[i+utf8.RuneLen(r):]
		value, hasValue := strings.TrimPrefix(rest, "="), len(rest) > 0
		if !hasValue {
			value, hasValue = s.nextValue()
		}
		return s.setOptionValue(opt, value, hasValue)
	}
	return nil
}

func (s *parseState) setOptionValue(opt *Option, value string, hasValue bool) error {
	if !hasValue {
		if opt.IsValueRequired() {
			return newParseError(ErrMissingOptionValue, opt.longName, "The option \"--%s\" requires a value.", opt.longName)
		}
		return s.args.SetOption(opt.longName)
	}
	return s.args.AddOption(opt.longName, value)
}

func (s *parseState) noSuchOption(given string) error {
	var groups []suggest.Group
	for _, opt := range s.format.Options() {
		groups = append(groups, suggest.Group{"--" + opt.longName})
	}
	msg := "The option \"" + given + "\" does not exist."
	if hint := suggest.DidYouMean(suggest.Similar(given, groups...)); len(hint) > 0 {
		msg += "\n\n" + hint
	}
	return newParseError(ErrNoSuchOption, given, "%s", msg)
}

func (s *parseState) parsePositional(token string) error {
	// Command names are matched in order. A name that doesn't match is assumed to be missing from the input.
	for s.nameIdx < len(s.names) {
		name := s.names[s.nameIdx]
		s.nameIdx++
		if name.Match(token) {
			s.nameSet[s.nameIdx-1] = true
			return nil
		}
	}
	if s.argIdx >= len(s.arguments) {
		s.surplus = append(s.surplus, token)
		return nil
	}
	arg := s.arguments[s.argIdx]
	if arg.IsMultiValued() {
		s.multi = append(s.multi, token)
		return nil
	}
	s.argIdx++
	return s.args.SetArgument(arg.name, token)
}

func (s *parseState) finish(lenient bool) error {
	if len(s.multi) > 0 {
		arg := s.arguments[s.argIdx]
		if err := s.args.SetArgument(arg.name, s.multi); err != nil {
			return err
		}
	}
	if lenient {
		return nil
	}
	if len(s.surplus) > 0 {
		if len(s.arguments) == 0 {
			return newParseError(ErrTooManyArguments, s.surplus[0], "No arguments expected, got %q.", s.surplus[0])
		}
		return newParseError(ErrTooManyArguments, s.surplus[0], "Too many arguments, expected at most %d, got %q.", len(s.arguments), s.surplus[0])
	}
	// A default command is usually called without its own name.
	if s.commandTokenMissing() {
		return nil
	}
	for _, arg := range s.arguments {
		if arg.IsRequired() && !s.args.IsArgumentSet(arg.name) {
			return newParseError(ErrMissingRequiredArgument, arg.name, "Not enough arguments, the required argument %q is missing.", arg.name)
		}
	}
	return nil
}
