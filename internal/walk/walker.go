// Package walk enumerates the working directory in parallel, honouring the
// ignore-file stack, and streams every discovered path to a channel.
package walk

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Cyclone1070/edmv/internal/config"
	"github.com/Cyclone1070/edmv/internal/service/ignore"
	"golang.org/x/sync/errgroup"
)

const gitDir = ".git"

// fileSystem defines the filesystem operations needed for walking.
type fileSystem interface {
	ReadDir(path string) ([]os.DirEntry, error)
}

// Walker walks a directory tree with a bounded pool of goroutines.
type Walker struct {
	fs      fileSystem
	matcher *ignore.Matcher
	cfg     config.WalkConfig
	logger  *slog.Logger
}

// New creates a Walker. matcher may be nil to disable ignore files.
func New(fs fileSystem, matcher *ignore.Matcher, cfg config.WalkConfig, logger *slog.Logger) *Walker {
	if fs == nil {
		panic("fs is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Walker{fs: fs, matcher: matcher, cfg: cfg, logger: logger}
}

// Walk sends the path of every non-ignored entry below root, relative to
// root, to out as soon as it is found. The root itself is not sent and out
// is not closed. Order across directories is unspecified.
//
// Unreadable directories are logged and skipped. A name that cannot be
// represented as one line of UTF-8 text stops the walk with *InvalidPathError.
func (w *Walker) Walk(ctx context.Context, root string, out chan<- string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(w.cfg.Workers, 1))
	g.Go(func() error {
		return w.walkDir(gctx, g, root, "", w.matcher, out)
	})
	return g.Wait()
}

// walkDir lists one directory. Subdirectories are handed to the pool when a
// slot is free and walked inline otherwise, so a worker never blocks waiting
// for capacity it is itself holding.
func (w *Walker) walkDir(ctx context.Context, g *errgroup.Group, root, rel string, m *ignore.Matcher, out chan<- string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := w.fs.ReadDir(filepath.Join(root, rel))
	if err != nil {
		// os.ReadDir returns whatever it read before failing
		w.logger.Warn("skipping unreadable directory", "path", displayPath(rel), "error", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		relPath := name
		if rel != "" {
			relPath = filepath.Join(rel, name)
		}
		isDir := entry.IsDir()

		if w.skip(name, relPath, isDir, m) {
			continue
		}
		if err := validate(name, relPath); err != nil {
			return err
		}

		select {
		case out <- relPath:
		case <-ctx.Done():
			return ctx.Err()
		}

		if !isDir {
			continue
		}
		child := m
		if m != nil {
			child = m.Descend(relPath)
		}
		if !g.TryGo(func() error { return w.walkDir(ctx, g, root, relPath, child, out) }) {
			if err := w.walkDir(ctx, g, root, relPath, child, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Walker) skip(name, relPath string, isDir bool, m *ignore.Matcher) bool {
	if isDir && name == gitDir {
		return true
	}
	if !w.cfg.Hidden && strings.HasPrefix(name, ".") {
		return true
	}
	if m != nil && m.ShouldIgnore(relPath, isDir) {
		w.logger.Debug("ignored", "path", relPath)
		return true
	}
	return false
}

func validate(name, relPath string) error {
	if !utf8.ValidString(name) {
		return &InvalidPathError{Path: strings.ToValidUTF8(relPath, "�"), Reason: reasonNotUTF8}
	}
	if strings.ContainsAny(name, "\n\r") {
		return &InvalidPathError{Path: relPath, Reason: reasonLineBreak}
	}
	return nil
}

func displayPath(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}
