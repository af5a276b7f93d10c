package session

// scratchPattern names the temp file; the .txt suffix lets openers pick a text editor.
const scratchPattern = "edmv-*.txt"

// fileSystem defines the filesystem operations needed for the scratch file.
type fileSystem interface {
	WriteTemp(dir, pattern string, content []byte) (string, error)
	ReadFile(path string) ([]byte, error)
	Remove(path string) error
}

// Scratch is the temporary file the user edits. One Scratch holds at most
// one file at a time.
type Scratch struct {
	fs   fileSystem
	dir  string
	path string
}

// NewScratch creates a Scratch that places its file in dir (the system temp
// directory when empty).
func NewScratch(fs fileSystem, dir string) *Scratch {
	if fs == nil {
		panic("fs is required")
	}
	return &Scratch{fs: fs, dir: dir}
}

// Create writes text to a new private file, synced and closed, and returns
// its path.
func (s *Scratch) Create(text string) (string, error) {
	path, err := s.fs.WriteTemp(s.dir, scratchPattern, []byte(text))
	if err != nil {
		return "", &ScratchError{Stage: StageCreate, Cause: err}
	}
	s.path = path
	return path, nil
}

// ReadBack returns the current content of the scratch file.
func (s *Scratch) ReadBack() (string, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return "", &ScratchError{Stage: StageRead, Path: s.path, Cause: err}
	}
	return string(data), nil
}

// Path returns the scratch file path, or "" before Create.
func (s *Scratch) Path() string {
	return s.path
}

// Remove deletes the scratch file. It is a no-op before Create.
func (s *Scratch) Remove() error {
	if s.path == "" {
		return nil
	}
	err := s.fs.Remove(s.path)
	s.path = ""
	return err
}
