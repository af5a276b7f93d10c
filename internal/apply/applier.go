// Package apply turns an edited path list back into renames, correlating
// line i of the edit with entry i of the snapshot.
package apply

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Cyclone1070/edmv/internal/config"
	"github.com/Cyclone1070/edmv/internal/registry"
	"golang.org/x/sync/errgroup"
)

// fileSystem defines the filesystem operations needed to apply renames.
type fileSystem interface {
	Rename(oldpath, newpath string) error
	EnsureDirs(path string) error
}

// Operation is one rename derived from line Index of the edited list.
type Operation struct {
	Index int
	From  string
	To    string
}

// Report summarises one Apply call.
type Report struct {
	// Renamed holds the successful operations ordered by index.
	Renamed []Operation
	// Unchanged counts lines identical to their original path.
	Unchanged int
	// Blank counts empty lines, which never rename anything.
	Blank int
	// Untouched counts original paths past the end of a shorter edit.
	Untouched int
	// Errors holds per-line failures ordered by index.
	Errors []error
}

// Err joins every per-line error, or returns nil when there are none.
func (r *Report) Err() error {
	return errors.Join(r.Errors...)
}

type indexedError struct {
	index int
	err   error
}

// Applier executes renames relative to a root directory with a bounded pool.
type Applier struct {
	fs     fileSystem
	root   string
	cfg    config.ApplyConfig
	logger *slog.Logger
}

// New creates an Applier.
func New(fs fileSystem, root string, cfg config.ApplyConfig, logger *slog.Logger) *Applier {
	if fs == nil {
		panic("fs is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Applier{fs: fs, root: root, cfg: cfg, logger: logger}
}

// Apply renames snap[i] to lines[i] for every line that differs from its
// original. Each rename is independent: a failure is recorded and the rest
// still run. There is no rollback. Once ctx is cancelled no further renames
// are started; those already running complete.
//
// A non-blank line past the end of snap fails with *IndexError. Blank lines
// are counted in Report.Blank wherever they are, including past the end,
// since they never name a rename. A destination that already exists is not
// replaced and fails with fs.ErrExist.
func (a *Applier) Apply(ctx context.Context, snap *registry.Snapshot, lines []string) *Report {
	report := &Report{}
	if n := snap.Len() - len(lines); n > 0 {
		report.Untouched = n
	}

	var (
		mu       sync.Mutex
		failures []indexedError
		g        errgroup.Group
	)
	g.SetLimit(max(a.cfg.Workers, 1))

	fail := func(index int, err error) {
		mu.Lock()
		failures = append(failures, indexedError{index: index, err: err})
		mu.Unlock()
	}

	for i, line := range lines {
		if ctx.Err() != nil {
			fail(i, ctx.Err())
			break
		}
		if line == "" {
			report.Blank++
			continue
		}
		orig, ok := snap.At(i)
		if !ok {
			fail(i, &IndexError{Index: i, Line: line})
			continue
		}
		if line == orig {
			report.Unchanged++
			continue
		}

		op := Operation{Index: i, From: orig, To: line}
		g.Go(func() error {
			if err := a.rename(op); err != nil {
				a.logger.Warn("rename failed", "from", op.From, "to", op.To, "error", err)
				fail(op.Index, err)
				return nil
			}
			a.logger.Debug("renamed", "from", op.From, "to", op.To)
			mu.Lock()
			report.Renamed = append(report.Renamed, op)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(report.Renamed, func(i, j int) bool { return report.Renamed[i].Index < report.Renamed[j].Index })
	sort.SliceStable(failures, func(i, j int) bool { return failures[i].index < failures[j].index })
	for _, f := range failures {
		report.Errors = append(report.Errors, f.err)
	}
	return report
}

func (a *Applier) rename(op Operation) error {
	from := a.resolve(op.From)
	to := a.resolve(op.To)
	if a.cfg.CreateDirs {
		if err := a.fs.EnsureDirs(filepath.Dir(to)); err != nil {
			return err
		}
	}
	return a.fs.Rename(from, to)
}

// resolve anchors a relative path at the root; absolute paths are kept.
func (a *Applier) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.root, path)
}
