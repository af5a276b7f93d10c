// Package orchestrator runs one rename session end to end: list, edit,
// apply, report. Each phase finishes before the next begins.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Cyclone1070/edmv/internal/orchestrator/models"
	"github.com/Cyclone1070/edmv/internal/registry"
)

// Orchestrator wires the phases of a rename session together.
type Orchestrator struct {
	walker        models.Walker
	editor        models.Editor
	applier       models.Applier
	reporter      models.Reporter
	channelBuffer int
	logger        *slog.Logger
}

// New creates a new Orchestrator instance
func New(walker models.Walker, editor models.Editor, applier models.Applier, reporter models.Reporter, channelBuffer int, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{
		walker:        walker,
		editor:        editor,
		applier:       applier,
		reporter:      reporter,
		channelBuffer: max(channelBuffer, 0),
		logger:        logger,
	}
}

// Run lists root, lets the user edit the list and applies the result.
// Anything that fails before the edit is returned without touching the
// filesystem. After the edit the returned error joins every failed line.
func (o *Orchestrator) Run(ctx context.Context, root string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snap, err := o.enumerate(ctx, root)
	if err != nil {
		return err
	}
	if snap.Len() == 0 {
		o.logger.Info("nothing to rename", "root", root)
		return nil
	}
	o.logger.Debug("snapshot frozen", "entries", snap.Len())

	edited, err := o.editor.Edit(ctx, snap.Serialize())
	if err != nil {
		return err
	}
	lines := registry.ParseLines(edited)
	if len(lines) != snap.Len() {
		o.logger.Warn("edited list length differs from original", "original", snap.Len(), "edited", len(lines))
	}

	report := o.applier.Apply(ctx, snap, lines)
	if err := o.reporter.Print(report); err != nil {
		o.logger.Warn("failed to print report", "error", err)
	}
	return report.Err()
}

// enumerate runs the walker into the registry and returns the frozen
// snapshot once the walker has finished and every path has been appended.
func (o *Orchestrator) enumerate(ctx context.Context, root string) (*registry.Snapshot, error) {
	paths := make(chan string, o.channelBuffer)
	walkErr := make(chan error, 1)
	go func() {
		walkErr <- o.walker.Walk(ctx, root, paths)
		close(paths)
	}()

	snap, collectErr := registry.Collect(ctx, paths)
	if err := <-walkErr; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}
	if collectErr != nil {
		return nil, collectErr
	}
	return snap, nil
}
