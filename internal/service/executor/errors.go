package executor

import (
	"errors"
	"fmt"
)

// ErrEmptyCommand is returned when no program name is given.
var ErrEmptyCommand = errors.New("command is empty")

// CommandError represents command execution failures (start, execution).
type CommandError struct {
	Cmd   string
	Cause error
	Stage string // "start", "execution"
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed at %s: %v", e.Cmd, e.Stage, e.Cause)
}
func (e *CommandError) Unwrap() error { return e.Cause }

// Started reports whether the process got past exec, i.e. the failure is
// about what the program did rather than whether it could be launched.
func (e *CommandError) Started() bool { return e.Stage != "start" }
