package session

import (
	"errors"
	"os"
	"strings"
	"testing"

	osfs "github.com/Cyclone1070/edmv/internal/service/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFS struct {
	files     map[string][]byte
	writeErr  error
	readErr   error
	removeErr error
	removed   []string
}

func newMockFS() *mockFS {
	return &mockFS{files: make(map[string][]byte)}
}

func (m *mockFS) WriteTemp(dir, pattern string, content []byte) (string, error) {
	if m.writeErr != nil {
		return "", m.writeErr
	}
	path := "/tmp/" + strings.Replace(pattern, "*", "123", 1)
	m.files[path] = append([]byte(nil), content...)
	return path, nil
}

func (m *mockFS) ReadFile(path string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *mockFS) Remove(path string) error {
	m.removed = append(m.removed, path)
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.files, path)
	return nil
}

func TestScratch_RoundTrip(t *testing.T) {
	fs := newMockFS()
	s := NewScratch(fs, "")

	path, err := s.Create("a\nb")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/edmv-123.txt", path)
	assert.Equal(t, path, s.Path())

	fs.files[path] = []byte("a2\nb\n")
	text, err := s.ReadBack()
	require.NoError(t, err)
	assert.Equal(t, "a2\nb\n", text)

	require.NoError(t, s.Remove())
	assert.Equal(t, []string{path}, fs.removed)
	assert.Empty(t, s.Path())
	require.NoError(t, s.Remove(), "second remove is a no-op")
	assert.Len(t, fs.removed, 1)
}

func TestScratch_Errors(t *testing.T) {
	t.Run("create failure", func(t *testing.T) {
		fs := newMockFS()
		fs.writeErr = errors.New("disk full")
		_, err := NewScratch(fs, "").Create("x")

		var scratchErr *ScratchError
		require.ErrorAs(t, err, &scratchErr)
		assert.Equal(t, StageCreate, scratchErr.Stage)
		assert.ErrorIs(t, err, fs.writeErr)
	})

	t.Run("read failure", func(t *testing.T) {
		fs := newMockFS()
		s := NewScratch(fs, "")
		_, err := s.Create("x")
		require.NoError(t, err)
		fs.readErr = os.ErrPermission

		_, err = s.ReadBack()

		var scratchErr *ScratchError
		require.ErrorAs(t, err, &scratchErr)
		assert.Equal(t, StageRead, scratchErr.Stage)
		assert.Equal(t, "/tmp/edmv-123.txt", scratchErr.Path)
		assert.ErrorIs(t, err, os.ErrPermission)
	})
}

func TestScratch_RealFileSystem(t *testing.T) {
	dir := t.TempDir()
	s := NewScratch(osfs.NewOSFileSystem(), dir)

	path, err := s.Create("src/ü.txt\nREADME")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".txt"))

	text, err := s.ReadBack()
	require.NoError(t, err)
	assert.Equal(t, "src/ü.txt\nREADME", text)

	require.NoError(t, s.Remove())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
