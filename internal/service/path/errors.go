package path

import (
	"errors"
	"fmt"
)

// RootError is returned when the directory to rename in is unusable.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("invalid root directory %s: %v", e.Root, e.Cause)
}
func (e *RootError) Unwrap() error { return e.Cause }

var (
	ErrNotADirectory = errors.New("not a directory")
)
