/*
Package cli provides an opinionated package for how a CLI with sub-commands can be structured.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - Arguments and options are declared with the [args] package, and handlers get typed values instead of raw strings.
  - A command may have default sub-commands, so "tool server" can mean "tool server list".
  - Sub-command aliases are often very convenient, so they're supported as additional, optional parameters to [CommandSet.AddCommand].
  - Some commands read better as flags, like "tool package --add", so they're supported with [CommandSet.AddOptionCommand].

# Invocation

Invoking a CLI with sub-commands can always follow this form:

	CLI_NAME [COMMAND...] [FLAGS...] [ARGS...]

Bare tokens at the start are matched against command names, descending into sub-commands as long as they match.
Once a token doesn't match, default commands take over, and the rest of the tokens are bound to the selected command's arguments.
See [ResolverContext.Resolve] for the details.

A user that mistypes a command gets a hint with similar command names.

# Usage by default

Usage information can be incredibly helpful for understanding a tool's purpose and expectations.
That's why the '-h' and '--help' flags are set up by default, with input from the developer with the [Command.Usage] method.

Argument usage, flag usage, and sub-command usage are included in a usage template along with developer-provided usage information.
Just calling CLI_NAME will print usage information for the tool, unless a default command is declared.

NOTE: Commands will NOT respond with usage by default if an error is returned, unless it's a [UsageError].

# Configuration

The environment may change how an [Application] behaves, see [LoadSettings].
Setting CLI_NAME_DEBUG=true logs how a command was resolved, which helps when a command tree with defaults doesn't do what's expected.
*/
package cli
