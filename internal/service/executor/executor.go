package executor

import (
	"context"
	"io"
	"os/exec"
	"sync"
)

// DefaultMaxOutputBytes bounds the captured stdout/stderr of one command.
const DefaultMaxOutputBytes = 64 * 1024

// Result represents the outcome of a command execution.
type Result struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// Stdio wires a command directly to the caller's streams.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OSCommandExecutor implements command execution using os/exec for real system commands.
type OSCommandExecutor struct {
	maxOutputBytes int
}

// NewOSCommandExecutor creates a new OSCommandExecutor. A non-positive limit
// selects DefaultMaxOutputBytes.
func NewOSCommandExecutor(maxOutputBytes int) *OSCommandExecutor {
	if maxOutputBytes <= 0 {
		maxOutputBytes = DefaultMaxOutputBytes
	}
	return &OSCommandExecutor{maxOutputBytes: maxOutputBytes}
}

// Run executes a command and returns the result. It buffers output internally.
// A launch failure is a *CommandError with Stage "start"; a non-zero exit is a
// *CommandError with Stage "execution" alongside the populated Result.
func (f *OSCommandExecutor) Run(ctx context.Context, command []string, dir string, env []string) (*Result, error) {
	if len(command) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = nil

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}

	stdoutStr, stderrStr, truncated := f.collectOutput(stdoutPipe, stderrPipe)

	result := &Result{
		Stdout:    stdoutStr,
		Stderr:    stderrStr,
		Truncated: truncated,
	}
	if err := cmd.Wait(); err != nil {
		result.ExitCode = getExitCode(err)
		return result, &CommandError{Cmd: command[0], Cause: err, Stage: "execution"}
	}
	return result, nil
}

// RunAttached executes a command connected to the given streams, for programs
// that need the terminal (e.g. vim). Nothing is captured.
func (f *OSCommandExecutor) RunAttached(ctx context.Context, command []string, dir string, stdio Stdio) (*Result, error) {
	if len(command) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}
	if err := cmd.Wait(); err != nil {
		return &Result{ExitCode: getExitCode(err)}, &CommandError{Cmd: command[0], Cause: err, Stage: "execution"}
	}
	return &Result{}, nil
}

func (f *OSCommandExecutor) collectOutput(stdout, stderr io.Reader) (string, string, bool) {
	stdoutCollector := newCollector(f.maxOutputBytes)
	stderrCollector := newCollector(f.maxOutputBytes)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, _ = io.Copy(stdoutCollector, stdout)
	}()

	go func() {
		defer wg.Done()
		_, _ = io.Copy(stderrCollector, stderr)
	}()

	wg.Wait()

	truncated := stdoutCollector.Truncated() || stderrCollector.Truncated()
	return stdoutCollector.String(), stderrCollector.String(), truncated
}

func getExitCode(err error) int {
	if err == nil {
		return 0
	}
	type exitCoder interface {
		ExitCode() int
	}
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return -1
}
