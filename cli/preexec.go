package cli

// PreExec is a function that may run before the [Handler] of a resolved [Command].
// It gets the [ResolvedCommand], whose arguments are already bound.
type PreExec func(resolved *ResolvedCommand) error

// BeforeRun registers a function that will be executed right before a [Handler] runs.
// If an error is returned from a [PreExec], then the [Handler] will not be executed, and [Application.Run] fails with that error instead.
// Note that no [PreExec] functions are executed when only usage information is printed.
//
// Passing a nil [PreExec] function to this method will panic.
func (a *Application) BeforeRun(fn PreExec) *Application {
	if fn == nil {
		panic("nil pre-exec function")
	}
	a.preExec = append(a.preExec, fn)
	return a
}

func (a *Application) runPreExec(resolved *ResolvedCommand) error {
	for _, fn := range a.preExec {
		if err := fn(resolved); err != nil {
			return err
		}
	}
	return nil
}
