// Package session hands the path list to the user's editor and collects the
// edited text once the user confirms.
package session

import (
	"context"
	"log/slog"

	"github.com/Cyclone1070/edmv/internal/service/executor"
)

// scratchFile is the temp file lifecycle used by Session.
type scratchFile interface {
	Create(text string) (string, error)
	ReadBack() (string, error)
	Remove() error
}

// opener launches the editing program for a file.
type opener interface {
	Open(ctx context.Context, path string) (*executor.Result, error)
}

// Session runs one edit round trip.
type Session struct {
	scratch scratchFile
	opener  opener
	gate    Gate
	logger  *slog.Logger
}

// New creates a Session. gate may be nil when the opener itself blocks until
// editing is finished.
func New(scratch scratchFile, opener opener, gate Gate, logger *slog.Logger) *Session {
	if scratch == nil || opener == nil {
		panic("scratch and opener are required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{scratch: scratch, opener: opener, gate: gate, logger: logger}
}

// Edit writes text to the scratch file, opens it, waits for confirmation and
// returns whatever the file contains afterwards. The scratch file is removed
// before Edit returns.
func (s *Session) Edit(ctx context.Context, text string) (string, error) {
	path, err := s.scratch.Create(text)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := s.scratch.Remove(); err != nil {
			s.logger.Warn("failed to remove scratch file", "path", path, "error", err)
		}
	}()
	s.logger.Debug("scratch file written", "path", path, "bytes", len(text))

	if _, err := s.opener.Open(ctx, path); err != nil {
		return "", err
	}

	if s.gate != nil {
		if err := s.gate.Wait(ctx); err != nil {
			return "", err
		}
	}

	return s.scratch.ReadBack()
}
