package cli

import (
	"bytes"
	"github.com/saylorsolutions/cmdkit/args"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestPrinter_Width(t *testing.T) {
	p := NewPrinter()
	p.Redirect(&bytes.Buffer{})
	assert.Equal(t, DefaultWidth, p.Width(), "A non-terminal writer should use the default width")
	p.SetWidth(40)
	assert.Equal(t, 40, p.Width())
	p.SetWidth(0)
	assert.Equal(t, DefaultWidth, p.Width())
}

func TestPrinter_WrapsUsage(t *testing.T) {
	app := NewApplication("tool")
	cmd := app.AddCommand("run", "").
		Option("target", "t", args.RequiredValue, strings.TrimSpace(strings.Repeat("word ", 20)))
	wrappedLines := func(width int) int {
		app.Printer().SetWidth(width)
		var count int
		for _, line := range strings.Split(cmd.Help(), "\n") {
			if strings.Contains(line, "word") {
				count++
			}
		}
		return count
	}
	assert.Equal(t, 1, wrappedLines(500))
	assert.Greater(t, wrappedLines(40), 1, "Flag usages should be wrapped to the printer width")
}
