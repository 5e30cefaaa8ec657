package args_test

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cmdkit/args"
)

func ExampleParse() {
	format := args.MustFormat(nil,
		args.MustArgument("files", args.Required|args.MultiValued, "Files to copy"),
		args.MustOption("retries", "r", args.RequiredValue|args.Integer, "Retry count", 3),
		args.MustOption("verbose", "v", args.NoValue, "Prints more"),
	)

	a, err := args.Parse([]string{"-v", "a.txt", "--retries=5", "b.txt"}, format)
	if err != nil {
		fmt.Println(err)
		return
	}
	files, _ := args.As[[]string](a.Argument("files"))
	retries, _ := args.As[int](a.Option("retries"))
	verbose, _ := args.As[bool](a.Option("verbose"))
	fmt.Println(files, retries, verbose)

	_, err = args.Parse([]string{"--retries", "lots", "a.txt"}, format)
	fmt.Println(errors.Is(err, args.ErrInvalidValue))
	fmt.Println(err)
	// Output:
	// [a.txt b.txt] 5 true
	// true
	// Invalid value for option "--retries": "lots" is not an integer.
}
