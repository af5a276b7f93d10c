package fs

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// mockWriteSyncCloser implements writeSyncCloser for testing
type mockWriteSyncCloser struct {
	buffer      *bytes.Buffer
	name        string
	writeErr    error
	syncErr     error
	closeErr    error
	closeCalled bool
}

func newMockWriteSyncCloser(name string) *mockWriteSyncCloser {
	return &mockWriteSyncCloser{
		buffer: new(bytes.Buffer),
		name:   name,
	}
}

func (m *mockWriteSyncCloser) Write(p []byte) (n int, err error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	return m.buffer.Write(p)
}

func (m *mockWriteSyncCloser) Sync() error {
	return m.syncErr
}

func (m *mockWriteSyncCloser) Close() error {
	m.closeCalled = true
	return m.closeErr
}

func (m *mockWriteSyncCloser) Name() string {
	return m.name
}

func TestWriteTemp(t *testing.T) {
	t.Run("writes content to a real temp file", func(t *testing.T) {
		fs := NewOSFileSystem()
		dir := t.TempDir()

		path, err := fs.WriteTemp(dir, "edmv-*.txt", []byte("a\nb"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filepath.Dir(path) != dir {
			t.Errorf("expected temp file in %s, got %s", dir, path)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read back: %v", err)
		}
		if string(got) != "a\nb" {
			t.Errorf("expected %q, got %q", "a\nb", got)
		}
	})

	t.Run("createTemp failure returns TempFileError", func(t *testing.T) {
		fs := NewOSFileSystem()
		fs.createTemp = func(dir, pattern string) (writeSyncCloser, error) {
			return nil, errors.New("disk full")
		}

		_, err := fs.WriteTemp("/tmp", "edmv-*.txt", []byte("x"))
		var tempErr *TempFileError
		if !errors.As(err, &tempErr) {
			t.Fatalf("expected TempFileError, got %v", err)
		}
	})

	failures := []struct {
		name  string
		setup func(m *mockWriteSyncCloser)
		check func(err error) bool
	}{
		{
			name:  "write failure",
			setup: func(m *mockWriteSyncCloser) { m.writeErr = errors.New("write failed") },
			check: func(err error) bool { var e *TempWriteError; return errors.As(err, &e) },
		},
		{
			name:  "sync failure",
			setup: func(m *mockWriteSyncCloser) { m.syncErr = errors.New("sync failed") },
			check: func(err error) bool { var e *TempSyncError; return errors.As(err, &e) },
		},
		{
			name:  "close failure",
			setup: func(m *mockWriteSyncCloser) { m.closeErr = errors.New("close failed") },
			check: func(err error) bool { var e *TempCloseError; return errors.As(err, &e) },
		},
	}

	for _, tc := range failures {
		t.Run(tc.name+" cleans up temp file", func(t *testing.T) {
			fs := NewOSFileSystem()
			mockFile := newMockWriteSyncCloser("/tmp/edmv-123.txt")
			tc.setup(mockFile)

			removed := ""
			fs.createTemp = func(dir, pattern string) (writeSyncCloser, error) {
				return mockFile, nil
			}
			fs.remove = func(name string) error {
				removed = name
				return nil
			}

			_, err := fs.WriteTemp("/tmp", "edmv-*.txt", []byte("content"))
			if err == nil {
				t.Fatal("expected error")
			}
			if !tc.check(err) {
				t.Errorf("unexpected error type: %T %v", err, err)
			}
			if removed != mockFile.name {
				t.Errorf("expected %s to be removed, got %q", mockFile.name, removed)
			}
			if !mockFile.closeCalled {
				t.Error("file handle should have been closed")
			}
		})
	}
}

func TestRename(t *testing.T) {
	t.Run("moves file", func(t *testing.T) {
		fs := NewOSFileSystem()
		dir := t.TempDir()
		src := filepath.Join(dir, "a.txt")
		dst := filepath.Join(dir, "b.txt")
		if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := fs.Rename(src, dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(dst); err != nil {
			t.Errorf("expected destination to exist: %v", err)
		}
		if _, err := os.Stat(src); !os.IsNotExist(err) {
			t.Errorf("expected source to be gone, got %v", err)
		}
	})

	t.Run("missing source wraps cause", func(t *testing.T) {
		fs := NewOSFileSystem()
		dir := t.TempDir()

		err := fs.Rename(filepath.Join(dir, "nope"), filepath.Join(dir, "b"))
		var renameErr *RenameError
		if !errors.As(err, &renameErr) {
			t.Fatalf("expected RenameError, got %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected cause to be ErrNotExist, got %v", renameErr.Cause)
		}
	})

	t.Run("existing destination is not replaced", func(t *testing.T) {
		fs := NewOSFileSystem()
		dir := t.TempDir()
		src := filepath.Join(dir, "a.txt")
		dst := filepath.Join(dir, "b.txt")
		if err := os.WriteFile(src, []byte("A"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(dst, []byte("B"), 0o644); err != nil {
			t.Fatal(err)
		}

		err := fs.Rename(src, dst)
		if !errors.Is(err, ErrExist) || !errors.Is(err, os.ErrExist) {
			t.Fatalf("expected ErrExist, got %v", err)
		}
		got, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "B" {
			t.Errorf("destination was overwritten: %q", got)
		}
		if _, err := os.Stat(src); err != nil {
			t.Errorf("expected source to remain: %v", err)
		}
	})

	t.Run("same file under another name is allowed", func(t *testing.T) {
		fs := NewOSFileSystem()
		called := false
		fs.rename = func(oldpath, newpath string) error {
			called = true
			return nil
		}
		// Both spellings resolve to one inode, as on a case-insensitive filesystem
		target := filepath.Join(t.TempDir(), "readme")
		if err := os.WriteFile(target, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		fs.lstat = func(name string) (os.FileInfo, error) {
			return os.Lstat(target)
		}

		if err := fs.Rename("readme", "README"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !called {
			t.Error("expected rename syscall")
		}
	})

	t.Run("empty destination is rejected before syscall", func(t *testing.T) {
		fs := NewOSFileSystem()
		fs.rename = func(oldpath, newpath string) error {
			t.Fatal("rename syscall should not be reached")
			return nil
		}

		err := fs.Rename("a", "")
		if !errors.Is(err, ErrEmptyPath) {
			t.Errorf("expected ErrEmptyPath, got %v", err)
		}
	})
}

func TestEnsureDirs(t *testing.T) {
	fs := NewOSFileSystem()
	fs.mkdirAll = func(path string, perm os.FileMode) error {
		return os.ErrPermission
	}

	err := fs.EnsureDirs("/x/y")
	var mkdirErr *MkdirError
	if !errors.As(err, &mkdirErr) {
		t.Fatalf("expected MkdirError, got %v", err)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("expected ErrPermission cause, got %v", err)
	}
}
