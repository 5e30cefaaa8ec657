package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is the width used to wrap usage output when the [Printer] isn't writing to a terminal.
const DefaultWidth = 80

// Printer writes user-visible output, to STDERR by default.
type Printer struct {
	out   io.Writer
	width int
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

// Redirect sends output to writer instead.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

// SetWidth overrides the detected output width, and zero restores detection.
func (p *Printer) SetWidth(width int) {
	p.width = width
}

// Width returns the number of columns available for wrapping output.
// This is the terminal width if output goes to a terminal, and [DefaultWidth] otherwise.
func (p *Printer) Width() int {
	if p.width > 0 {
		return p.width
	}
	if f, ok := p.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}

func (p *Printer) Write(data []byte) (int, error) {
	return p.out.Write(data)
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
