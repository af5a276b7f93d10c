package fs

import (
	"io"
	"os"
)

// writeSyncCloser defines the minimal interface for a writable file handle.
// This abstraction allows testing without depending on concrete *os.File.
type writeSyncCloser interface {
	io.Writer
	Sync() error
	Close() error
	Name() string
}

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
// It uses internal function fields to enable testability via functional injection.
type OSFileSystem struct {
	createTemp func(dir, pattern string) (writeSyncCloser, error)
	rename     func(oldpath, newpath string) error
	lstat      func(name string) (os.FileInfo, error)
	remove     func(name string) error
	mkdirAll   func(path string, perm os.FileMode) error
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		createTemp: func(dir, pattern string) (writeSyncCloser, error) {
			return os.CreateTemp(dir, pattern)
		},
		rename:   os.Rename,
		lstat:    os.Lstat,
		remove:   os.Remove,
		mkdirAll: os.MkdirAll,
	}
}

// Stat returns file info for a path (follows symlinks).
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info for a path without following symlinks.
func (fs *OSFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ReadDir lists the entries of a directory without stat-ing each one.
func (fs *OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// ReadFile reads an entire file.
func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Rename moves oldpath to newpath with a single rename call. An existing
// newpath is never replaced and fails with ErrExist, unless it is oldpath
// itself under another spelling (a case-only rename on a case-insensitive
// filesystem).
func (fs *OSFileSystem) Rename(oldpath, newpath string) error {
	if oldpath == "" || newpath == "" {
		return &RenameError{Old: oldpath, New: newpath, Cause: ErrEmptyPath}
	}
	if dst, err := fs.lstat(newpath); err == nil {
		src, err := fs.lstat(oldpath)
		if err != nil || !os.SameFile(src, dst) {
			return &RenameError{Old: oldpath, New: newpath, Cause: ErrExist}
		}
	}
	if err := fs.rename(oldpath, newpath); err != nil {
		return &RenameError{Old: oldpath, New: newpath, Cause: err}
	}
	return nil
}

// EnsureDirs creates parent directories recursively if they don't exist.
func (fs *OSFileSystem) EnsureDirs(path string) error {
	if err := fs.mkdirAll(path, 0o755); err != nil {
		return &MkdirError{Path: path, Cause: err}
	}
	return nil
}

// WriteTemp creates a new file in dir (os.TempDir() when empty) named after
// pattern, writes content, syncs and closes it, and returns its path.
// The file is removed again if any step fails.
func (fs *OSFileSystem) WriteTemp(dir, pattern string, content []byte) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	tmpFile, err := fs.createTemp(dir, pattern)
	if err != nil {
		return "", &TempFileError{Dir: dir, Cause: err}
	}

	tmpPath := tmpFile.Name()
	needsCleanup := true

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = fs.remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return "", &TempWriteError{Path: tmpPath, Cause: err}
	}

	if err := tmpFile.Sync(); err != nil {
		return "", &TempSyncError{Path: tmpPath, Cause: err}
	}

	// Close before handing the path to another process
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return "", &TempCloseError{Path: tmpPath, Cause: err}
	}
	tmpFile = nil
	needsCleanup = false

	return tmpPath, nil
}

// Remove deletes a single file.
func (fs *OSFileSystem) Remove(path string) error {
	return fs.remove(path)
}
