/*
Package args describes what a command accepts, and binds raw command line tokens to typed values.

# Formats

A [Format] is an immutable description of a command's input:

  - [CommandName] keywords that select the command, like the "add" in "tool package add".
  - [CommandOption] flags that select the command in the same way, like "tool package --add".
  - Positional [Argument] slots, bound in declaration order.
  - Named [Option] slots, given as --long-name or -s.

Formats are composed: a [Format] may extend a base [Format], so a sub-command inherits the command names and options of its parent.
Formats are declared once with [NewFormat] or a [FormatBuilder], which reject invalid declarations immediately with a [SchemaError].
The ordering rules for arguments are enforced at that point:

  - At most one [MultiValued] argument may be declared, and it must be the last one.
  - A [Required] argument may not follow an [Optional] one.
  - Argument names, and option long and short names, are unique across the base chain.

# Binding

A [Parser] binds tokens to a [Format], producing [Args].
The [DefaultParser] understands long options (--name, --name=value, --name value), short options (-n, -nvalue, -abc), the "--" terminator, and positional arguments.
Values are coerced to the declared value type ([String], [Boolean], [Integer], or [Float]) as they're bound, so a handler never sees the raw text of a typed slot.

Binding failures are reported as a [ParseError], whose kind may be checked with [errors.Is]:

	a, err := args.Parse(tokens, format)
	if errors.Is(err, args.ErrMissingRequiredArgument) {
		// ...
	}

# Defaults

[Args] only store values that were explicitly given.
Defaults are resolved from the [Format] when a value is read, which keeps [Args.IsOptionSet] and [Args.IsArgumentSet] meaningful.
*/
package args
