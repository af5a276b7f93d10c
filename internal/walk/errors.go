package walk

import "fmt"

// InvalidPathError is fatal for the whole run: the path cannot be written
// as one line of the editable list.
type InvalidPathError struct {
	Path   string // lossy, printable form
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%q %s", e.Path, e.Reason)
}

const (
	reasonNotUTF8   = "is not UTF-8"
	reasonLineBreak = "contains a line break"
)
