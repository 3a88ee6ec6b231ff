package fixedpoint

import "fmt"

// UsageError reports malformed or missing command-line arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid arguments: %v", e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// LaunchError reports that the solver process could not be started or waited on.
type LaunchError struct {
	Executable string
	Err        error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch solver %q: %v", e.Executable, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }
