package ignore

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const (
	gitDir      = ".git"
	excludeFile = "info/exclude"
	commentChar = "#"
)

// fileSystem defines the minimal filesystem interface needed for ignore file loading.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// Options selects which layers of the ignore-file stack are consulted.
type Options struct {
	// IgnoreFiles are the per-directory file names to read, in precedence order.
	IgnoreFiles []string
	// Parents reads IgnoreFiles in ancestors of the root up to the repository top.
	Parents bool
	// GitExclude reads <repo>/.git/info/exclude.
	GitExclude bool
	// GitGlobal reads core.excludesfile from the user and system gitconfig.
	GitGlobal bool
	// OnReadError receives unreadable ignore files. May be nil.
	OnReadError func(error)
}

// loadGlobalPatterns is swapped out in tests.
var loadGlobalPatterns = func() ([]gitignore.Pattern, error) {
	root := osfs.New("/")
	ps, err := gitignore.LoadGlobalPatterns(root)
	if err != nil {
		return nil, err
	}
	sys, err := gitignore.LoadSystemPatterns(root)
	if err != nil {
		return ps, err
	}
	return append(sys, ps...), nil
}

// Matcher answers whether a path relative to the walk root is excluded.
// A Matcher is immutable and safe for concurrent use; Descend returns a
// child that additionally honours the ignore files of one subdirectory.
type Matcher struct {
	fs       fileSystem
	root     string
	prefix   []string
	opts     Options
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
}

// NewMatcher builds the matcher for root, loading global, repository and
// parent ignore files as selected by opts, plus root's own ignore files.
// Missing files are not an error; unreadable ones are passed to opts.OnReadError.
func NewMatcher(root string, fs fileSystem, opts Options) *Matcher {
	if root == "" {
		panic("root is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	m := &Matcher{fs: fs, root: root, opts: opts}

	var patterns []gitignore.Pattern
	if opts.GitGlobal {
		global, err := loadGlobalPatterns()
		if err != nil {
			m.report(&ReadError{Path: "core.excludesfile", Cause: err})
		}
		patterns = append(patterns, global...)
	}

	if top, ok := m.findRepoTop(); ok {
		rel, err := filepath.Rel(top, root)
		if err == nil {
			m.prefix = splitPath(rel)
		}
		if opts.GitExclude {
			patterns = append(patterns, m.readPatterns(filepath.Join(top, gitDir, excludeFile), nil)...)
		}
		if opts.Parents {
			dir := top
			for i := 0; i < len(m.prefix); i++ {
				patterns = append(patterns, m.readDirPatterns(dir, m.prefix[:i])...)
				dir = filepath.Join(dir, m.prefix[i])
			}
		}
	}

	patterns = append(patterns, m.readDirPatterns(root, m.prefix)...)
	return m.with(patterns)
}

// Descend returns the matcher for the subdirectory relDir (relative to the
// walk root). It returns m itself when relDir holds no ignore files.
func (m *Matcher) Descend(relDir string) *Matcher {
	domain := append(slices.Clone(m.prefix), splitPath(relDir)...)
	extra := m.readDirPatterns(filepath.Join(m.root, relDir), domain)
	if len(extra) == 0 {
		return m
	}
	patterns := make([]gitignore.Pattern, 0, len(m.patterns)+len(extra))
	patterns = append(patterns, m.patterns...)
	patterns = append(patterns, extra...)
	return m.with(patterns)
}

// ShouldIgnore reports whether relativePath matches the loaded patterns.
func (m *Matcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m.matcher == nil {
		return false
	}
	segments := append(slices.Clone(m.prefix), splitPath(relativePath)...)
	if len(segments) == 0 {
		return false
	}
	return m.matcher.Match(segments, isDir)
}

func (m *Matcher) with(patterns []gitignore.Pattern) *Matcher {
	child := *m
	child.patterns = patterns
	child.matcher = nil
	if len(patterns) > 0 {
		child.matcher = gitignore.NewMatcher(patterns)
	}
	return &child
}

// findRepoTop returns the nearest ancestor of root (root included) holding a .git entry.
func (m *Matcher) findRepoTop() (string, bool) {
	if !m.opts.Parents && !m.opts.GitExclude {
		return "", false
	}
	dir := m.root
	for {
		if _, err := m.fs.Stat(filepath.Join(dir, gitDir)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (m *Matcher) readDirPatterns(dir string, domain []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, name := range m.opts.IgnoreFiles {
		patterns = append(patterns, m.readPatterns(filepath.Join(dir, name), domain)...)
	}
	return patterns
}

func (m *Matcher) readPatterns(path string, domain []string) []gitignore.Pattern {
	data, err := m.fs.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			m.report(&ReadError{Path: path, Cause: err})
		}
		return nil
	}
	return parsePatterns(string(data), domain)
}

func (m *Matcher) report(err error) {
	if m.opts.OnReadError != nil {
		m.opts.OnReadError(err)
	}
}

// parsePatterns parses gitignore syntax, skipping blank lines and comments.
func parsePatterns(content string, domain []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, commentChar) || strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, slices.Clone(domain)))
	}
	return patterns
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	parts := strings.Split(filepath.ToSlash(path), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}
