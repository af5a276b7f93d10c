package session

import (
	"errors"
	"fmt"
)

// Scratch stages reported by ScratchError.
const (
	StageCreate = "create"
	StageRead   = "read"
)

// ScratchError is returned when the scratch file cannot be written or read back.
type ScratchError struct {
	Stage string
	Path  string
	Cause error
}

func (e *ScratchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("scratch file %s failed: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("scratch file %s failed for %s: %v", e.Stage, e.Path, e.Cause)
}
func (e *ScratchError) Unwrap() error { return e.Cause }

var (
	// ErrAborted is returned when the user cancels at the confirmation gate.
	ErrAborted = errors.New("editing aborted")
)
