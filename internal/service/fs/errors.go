package fs

import (
	"errors"
	"fmt"
	"os"
)

// -- Errors --

// TempFileError is returned when a temp file cannot be created in Dir.
type TempFileError struct {
	Dir   string
	Cause error
}

func (e *TempFileError) Error() string {
	return fmt.Sprintf("failed to create temp file in %s: %v", e.Dir, e.Cause)
}
func (e *TempFileError) Unwrap() error { return e.Cause }

// TempWriteError is returned when writing the temp file content fails.
type TempWriteError struct {
	Path  string
	Cause error
}

func (e *TempWriteError) Error() string {
	return fmt.Sprintf("failed to write to temp file %s: %v", e.Path, e.Cause)
}
func (e *TempWriteError) Unwrap() error { return e.Cause }

// TempSyncError is returned when the temp file cannot be flushed to disk.
type TempSyncError struct {
	Path  string
	Cause error
}

func (e *TempSyncError) Error() string {
	return fmt.Sprintf("failed to sync temp file %s: %v", e.Path, e.Cause)
}
func (e *TempSyncError) Unwrap() error { return e.Cause }

// TempCloseError is returned when closing the temp file fails; the file is
// removed again.
type TempCloseError struct {
	Path  string
	Cause error
}

func (e *TempCloseError) Error() string {
	return fmt.Sprintf("failed to close temp file %s: %v", e.Path, e.Cause)
}
func (e *TempCloseError) Unwrap() error { return e.Cause }

// RenameError is returned when moving Old to New fails.
type RenameError struct {
	Old   string
	New   string
	Cause error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("failed to rename %s to %s: %v", e.Old, e.New, e.Cause)
}
func (e *RenameError) Unwrap() error { return e.Cause }

// MkdirError is returned when a destination directory cannot be created.
type MkdirError struct {
	Path  string
	Cause error
}

func (e *MkdirError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Cause)
}
func (e *MkdirError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrEmptyPath = errors.New("path is empty")
	// ErrExist matches os.ErrExist with errors.Is.
	ErrExist = fmt.Errorf("destination %w", os.ErrExist)
)
