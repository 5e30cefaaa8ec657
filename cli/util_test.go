package cli

import (
	"github.com/saylorsolutions/cmdkit/args"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMustGet(t *testing.T) {
	f := args.MustFormat(nil, args.MustOption("count", "c", args.RequiredValue|args.Integer, "", 2))
	a, err := args.Parse(nil, f)
	assert.NoError(t, err)

	assert.Equal(t, 2, MustGet(args.As[int](a.Option("count"))))
	assert.Panics(t, func() {
		MustGet(args.As[string](a.Option("count")))
	}, "The wrong type should panic")
	assert.Panics(t, func() {
		MustGet(a.Option("missing"))
	}, "An undeclared option should panic")
}
