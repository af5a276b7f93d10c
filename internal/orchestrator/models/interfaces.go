package models

import (
	"context"

	"github.com/Cyclone1070/edmv/internal/apply"
	"github.com/Cyclone1070/edmv/internal/registry"
)

// Walker streams every path below root to out and never closes out.
type Walker interface {
	Walk(ctx context.Context, root string, out chan<- string) error
}

// Editor lets the user edit text and returns the result.
type Editor interface {
	Edit(ctx context.Context, text string) (string, error)
}

// Applier turns edited lines into renames.
type Applier interface {
	Apply(ctx context.Context, snap *registry.Snapshot, lines []string) *apply.Report
}

// Reporter shows the outcome of a run.
type Reporter interface {
	Print(report *apply.Report) error
}
