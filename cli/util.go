package cli

// MustGet is used with a getter like [args.As] to panic if the value is not defined, or is not the right type.
// The developer usually knows whether a get call will fail, since the [args.Format] declares what's available.
//
//	count := MustGet(args.As[int](a.Option("count")))
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
