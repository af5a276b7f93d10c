package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Prompt is shown while waiting for the user to finish editing.
const Prompt = "Press [ENTER] when you have finished editing the list of filenames."

// Gate blocks until the user confirms that editing is done.
type Gate interface {
	Wait(ctx context.Context) error
}

// LineGate prints Prompt to out and waits for one line on in. End of input
// counts as confirmation so that piped and closed stdin do not hang.
type LineGate struct {
	in  io.Reader
	out io.Writer
}

// NewLineGate creates a LineGate.
func NewLineGate(in io.Reader, out io.Writer) *LineGate {
	return &LineGate{in: in, out: out}
}

// Wait implements Gate.
func (g *LineGate) Wait(ctx context.Context) error {
	if _, err := fmt.Fprintln(g.out, Prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(g.in).ReadString('\n')
		if err == io.EOF {
			err = nil
		}
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
