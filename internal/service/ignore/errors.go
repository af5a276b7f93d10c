package ignore

import "fmt"

// ReadError is reported through Options.OnReadError when an ignore file
// exists but cannot be read. The matcher carries on without it.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read ignore file %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }
