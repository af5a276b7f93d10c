// Package registry holds the ordered list of discovered paths. Index i of a
// Snapshot is the only link between line i of the edited text and the file
// it originally named.
package registry

import (
	"context"
	"strings"
	"sync"
)

// Registry is the build-phase view: append-only, guarded by a mutex.
type Registry struct {
	mu     sync.Mutex
	paths  []string
	frozen bool
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Append adds path at the next index. It panics once the registry is frozen.
func (r *Registry) Append(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		panic("registry: append after freeze")
	}
	r.paths = append(r.paths, path)
}

// Len returns the number of paths appended so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}

// Freeze ends the build phase and returns the immutable view.
// Calling Freeze again returns an equivalent snapshot.
func (r *Registry) Freeze() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
	return &Snapshot{paths: r.paths}
}

// Collect is the single append authority: it drains in into a new Registry
// and freezes it once in is closed. If ctx ends first it returns ctx.Err()
// and no snapshot, since a partial registry must never be serialized.
func Collect(ctx context.Context, in <-chan string) (*Snapshot, error) {
	r := New()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case path, ok := <-in:
			if !ok {
				return r.Freeze(), nil
			}
			r.Append(path)
		}
	}
}

// Snapshot is the frozen registry. It is never mutated and needs no locking.
type Snapshot struct {
	paths []string
}

// NewSnapshot builds a snapshot from an existing slice (copied).
func NewSnapshot(paths []string) *Snapshot {
	return &Snapshot{paths: append([]string(nil), paths...)}
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.paths)
}

// At returns the path at index i, or false when i is out of range.
func (s *Snapshot) At(i int) (string, bool) {
	if i < 0 || i >= len(s.paths) {
		return "", false
	}
	return s.paths[i], true
}

// Paths returns a copy of all entries in index order.
func (s *Snapshot) Paths() []string {
	paths := make([]string, len(s.paths))
	copy(paths, s.paths)
	return paths
}

// Serialize renders one path per line, joined by "\n", with no trailing newline.
func (s *Snapshot) Serialize() string {
	return strings.Join(s.paths, "\n")
}

// ParseLines splits edited text back into per-index lines.
//
// Every line keeps its position: blank lines are returned as "" rather than
// dropped. A single trailing line terminator is removed (most editors add one
// on save) and a trailing "\r" is removed from each line so CRLF round-trips.
// ParseLines(s.Serialize()) equals s.Paths() for any snapshot.
func ParseLines(text string) []string {
	text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
