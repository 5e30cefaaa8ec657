package cli

import (
	"fmt"
	"strings"

	"github.com/saylorsolutions/cmdkit/args"
	flag "github.com/spf13/pflag"
)

// Help renders the usage information of this [Command].
//
// The description and longer usage text are followed by a synopsis, argument usages, flag usages (including inherited flags), and sub-command usages.
// Flag usages are wrapped to the width of the [Printer].
func (c *Command) Help() string {
	f, err := c.Format()
	if err != nil {
		return err.Error() + "\n"
	}
	return renderUsage(c.description, c.usage, synopsis(c.app.name, f, &c.CommandSet), f, &c.CommandSet, c.app.printer.Width())
}

// Help renders the usage information of the [Application], listing its top-level commands.
func (a *Application) Help() string {
	f, err := a.Format()
	if err != nil {
		return err.Error() + "\n"
	}
	return renderUsage(a.description, a.usage, synopsis(a.name, f, &a.CommandSet), f, &a.CommandSet, a.printer.Width())
}

func renderUsage(description, usage, synopsis string, f *args.Format, set *CommandSet, width int) string {
	var buf strings.Builder
	if len(description) > 0 {
		buf.WriteString(description + "\n\n")
	}
	buf.WriteString("USAGE:\n" + synopsis + "\n")
	if len(usage) > 0 {
		buf.WriteString("\n" + strings.TrimSuffix(usage, "\n") + "\n")
	}
	if f.HasArguments() {
		buf.WriteString("\nARGUMENTS\n")
		buf.WriteString(argumentUsages(f.Arguments()))
	}
	if f.HasOptions() {
		buf.WriteString("\nFLAGS\n")
		buf.WriteString(FlagSet(f).FlagUsagesWrapped(width))
	}
	if len(set.NamedCommands()) > 0 {
		buf.WriteString("\nCOMMANDS\n")
		buf.WriteString(set.CommandUsages())
	}
	return buf.String()
}

// synopsis renders a line like "tool package add [FLAGS] <name> [<version>]".
func synopsis(appName string, f *args.Format, set *CommandSet) string {
	var parts []string
	if len(appName) > 0 {
		parts = append(parts, appName)
	}
	for _, name := range f.CommandNames() {
		parts = append(parts, name.Name())
	}
	for _, co := range f.CommandOptions() {
		parts = append(parts, co.PreferredName())
	}
	if f.HasOptions() {
		parts = append(parts, "[FLAGS]")
	}
	if set.HasNamedSubCommands() {
		if len(set.DefaultCommands()) > 0 {
			parts = append(parts, "[COMMAND]")
		} else {
			parts = append(parts, "<COMMAND>")
		}
	}
	for _, arg := range f.Arguments() {
		parts = append(parts, argumentSynopsis(arg))
	}
	return strings.Join(parts, " ")
}

func argumentSynopsis(arg *args.Argument) string {
	text := "<" + arg.Name() + ">"
	if arg.IsMultiValued() {
		text += "..."
	}
	if !arg.IsRequired() {
		text = "[" + text + "]"
	}
	return text
}

func argumentUsages(arguments []*args.Argument) string {
	var (
		buf    strings.Builder
		maxLen int
	)
	for _, arg := range arguments {
		if l := len(argumentSynopsis(arg)); l > maxLen {
			maxLen = l
		}
	}
	fmtStr := fmt.Sprintf("  %%-%ds   %%s\n", maxLen)
	for _, arg := range arguments {
		desc := arg.Description()
		if def := arg.Default(); !isZeroDefault(def) {
			desc = strings.TrimSpace(fmt.Sprintf("%s (default %v)", desc, def))
		}
		buf.WriteString(fmt.Sprintf(fmtStr, argumentSynopsis(arg), desc))
	}
	return buf.String()
}

func isZeroDefault(def any) bool {
	if def == nil {
		return true
	}
	if values, ok := def.([]any); ok {
		return len(values) == 0
	}
	return false
}

// FlagSet projects the options of a [args.Format] onto a [flag.FlagSet], which is how flag usage is rendered.
// The returned FlagSet is only meant for describing the options, since binding is done by an [args.Parser].
func FlagSet(f *args.Format) *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	for _, opt := range f.Options() {
		var (
			long  = opt.LongName()
			short = opt.ShortName()
			desc  = opt.Description()
			def   = opt.Default()
		)
		switch {
		case !opt.AcceptsValue():
			fs.BoolP(long, short, false, desc)
		case opt.IsMultiValued():
			values, _ := args.As[[]any](def, nil)
			defaults := make([]string, len(values))
			for i, v := range values {
				defaults[i] = fmt.Sprint(v)
			}
			fs.StringSliceP(long, short, defaults, desc)
		default:
			switch opt.Flags().ValueType() {
			case args.Integer:
				v, _ := def.(int)
				fs.IntP(long, short, v, desc)
			case args.Float:
				v, _ := def.(float64)
				fs.Float64P(long, short, v, desc)
			case args.Boolean:
				v, _ := def.(bool)
				fs.BoolP(long, short, v, desc)
			default:
				v, _ := def.(string)
				fs.StringP(long, short, v, desc)
			}
			if opt.IsValueOptional() && def != nil {
				if fl := fs.Lookup(long); fl != nil && len(fl.NoOptDefVal) == 0 {
					fl.NoOptDefVal = fmt.Sprint(def)
				}
			}
		}
	}
	return fs
}
