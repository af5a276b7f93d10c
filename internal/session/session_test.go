package session

import (
	"context"
	"errors"
	"testing"

	"github.com/Cyclone1070/edmv/internal/service/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOpener struct {
	path string
	err  error
	// edit simulates the user saving new content while the editor is open.
	edit func(path string)
}

func (m *mockOpener) Open(ctx context.Context, path string) (*executor.Result, error) {
	m.path = path
	if m.err != nil {
		return nil, m.err
	}
	if m.edit != nil {
		m.edit(path)
	}
	return &executor.Result{}, nil
}

type mockGate struct {
	calls int
	err   error
}

func (m *mockGate) Wait(ctx context.Context) error {
	m.calls++
	return m.err
}

func TestSession_Edit(t *testing.T) {
	t.Run("returns edited text and removes scratch", func(t *testing.T) {
		fs := newMockFS()
		opener := &mockOpener{edit: func(path string) { fs.files[path] = []byte("a2\nb\n") }}
		gate := &mockGate{}

		got, err := New(NewScratch(fs, ""), opener, gate, nil).Edit(context.Background(), "a\nb")

		require.NoError(t, err)
		assert.Equal(t, "a2\nb\n", got)
		assert.Equal(t, 1, gate.calls)
		assert.Equal(t, "/tmp/edmv-123.txt", opener.path)
		assert.Equal(t, []string{opener.path}, fs.removed)
	})

	t.Run("unedited text comes back unchanged", func(t *testing.T) {
		fs := newMockFS()
		got, err := New(NewScratch(fs, ""), &mockOpener{}, &mockGate{}, nil).Edit(context.Background(), "x\ny")

		require.NoError(t, err)
		assert.Equal(t, "x\ny", got)
	})

	t.Run("nil gate skips confirmation", func(t *testing.T) {
		fs := newMockFS()
		_, err := New(NewScratch(fs, ""), &mockOpener{}, nil, nil).Edit(context.Background(), "x")
		require.NoError(t, err)
	})

	t.Run("scratch failure stops before opening", func(t *testing.T) {
		fs := newMockFS()
		fs.writeErr = errors.New("read-only")
		opener := &mockOpener{}

		_, err := New(NewScratch(fs, ""), opener, &mockGate{}, nil).Edit(context.Background(), "x")

		var scratchErr *ScratchError
		require.ErrorAs(t, err, &scratchErr)
		assert.Empty(t, opener.path)
		assert.Empty(t, fs.removed)
	})

	t.Run("opener start failure is fatal", func(t *testing.T) {
		fs := newMockFS()
		gate := &mockGate{}
		opener := &mockOpener{err: &executor.CommandError{Cmd: "xdg-open", Stage: "start", Cause: errors.New("not found")}}

		_, err := New(NewScratch(fs, ""), opener, gate, nil).Edit(context.Background(), "x")

		var cmdErr *executor.CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Zero(t, gate.calls)
		assert.Len(t, fs.removed, 1)
	})

	t.Run("aborted gate is fatal", func(t *testing.T) {
		fs := newMockFS()
		_, err := New(NewScratch(fs, ""), &mockOpener{}, &mockGate{err: ErrAborted}, nil).Edit(context.Background(), "x")

		assert.ErrorIs(t, err, ErrAborted)
		assert.Len(t, fs.removed, 1)
	})

	t.Run("read back failure is fatal", func(t *testing.T) {
		fs := newMockFS()
		opener := &mockOpener{edit: func(string) { fs.readErr = errors.New("gone") }}

		_, err := New(NewScratch(fs, ""), opener, &mockGate{}, nil).Edit(context.Background(), "x")

		var scratchErr *ScratchError
		require.ErrorAs(t, err, &scratchErr)
		assert.Equal(t, StageRead, scratchErr.Stage)
	})

	t.Run("remove failure is only logged", func(t *testing.T) {
		fs := newMockFS()
		fs.removeErr = errors.New("busy")

		got, err := New(NewScratch(fs, ""), &mockOpener{}, &mockGate{}, nil).Edit(context.Background(), "x")

		require.NoError(t, err)
		assert.Equal(t, "x", got)
	})
}
