package apply

import "fmt"

// IndexError is returned for an edited line that has no original path,
// because the edited list is longer than the one that was written out.
type IndexError struct {
	Index int
	Line  string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("line %d %q has no matching original path", e.Index+1, e.Line)
}
