package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/Cyclone1070/edmv/internal/service/executor"
)

// commandExecutor defines the process operations the opener needs.
type commandExecutor interface {
	Run(ctx context.Context, command []string, dir string, env []string) (*executor.Result, error)
	RunAttached(ctx context.Context, command []string, dir string, stdio executor.Stdio) (*executor.Result, error)
}

// OpenerOptions configures an Opener.
type OpenerOptions struct {
	// Command replaces the platform opener; the file path is appended.
	Command []string
	// Attach runs Command on Stdio and waits for it to exit.
	Attach bool
	Stdio  executor.Stdio
	// Diagnostics receives anything the opener wrote to stderr.
	Diagnostics io.Writer
	// GOOS selects the platform opener. Defaults to runtime.GOOS.
	GOOS string
}

// Opener launches the program that lets the user edit a file.
type Opener struct {
	exec   commandExecutor
	opts   OpenerOptions
	logger *slog.Logger
}

// NewOpener creates an Opener backed by exec.
func NewOpener(exec commandExecutor, opts OpenerOptions, logger *slog.Logger) *Opener {
	if exec == nil {
		panic("executor is required")
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Opener{exec: exec, opts: opts, logger: logger}
}

// Attached reports whether Open blocks until the user has finished editing.
func (o *Opener) Attached() bool {
	return o.opts.Attach && len(o.opts.Command) > 0
}

// Command returns the argv used to open path.
func (o *Opener) Command(path string) []string {
	if len(o.opts.Command) > 0 {
		argv := make([]string, 0, len(o.opts.Command)+1)
		argv = append(argv, o.opts.Command...)
		return append(argv, path)
	}
	switch o.opts.GOOS {
	case "windows":
		// The empty string is the window title; start treats the first quoted argument as one.
		return []string{"cmd", "/C", "start", "", path}
	case "darwin":
		return []string{"open", path}
	default:
		return []string{"xdg-open", path}
	}
}

// Open launches the opener for path. Only a failure to start the program is
// returned as an error. A non-zero exit or output on stderr is logged and
// written to Diagnostics, since most openers hand off to another process and
// their status says little about the edit itself.
func (o *Opener) Open(ctx context.Context, path string) (*executor.Result, error) {
	argv := o.Command(path)
	o.logger.Debug("launching opener", "command", argv, "attached", o.Attached())

	var (
		result *executor.Result
		err    error
	)
	if o.Attached() {
		result, err = o.exec.RunAttached(ctx, argv, "", o.opts.Stdio)
	} else {
		result, err = o.exec.Run(ctx, argv, "", nil)
	}

	var cmdErr *executor.CommandError
	if err != nil && (!errors.As(err, &cmdErr) || !cmdErr.Started()) {
		return nil, err
	}

	if err != nil {
		o.logger.Warn("opener exited with an error", "command", argv[0], "error", err)
		fmt.Fprintf(o.opts.Diagnostics, "%s: %v\n", argv[0], err)
	}
	if result != nil {
		if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
			o.logger.Warn("opener wrote to stderr", "command", argv[0], "stderr", stderr)
			fmt.Fprintln(o.opts.Diagnostics, stderr)
		}
	}
	return result, nil
}
