// Package controller provides output adapters for displaying reorganization
// progress and summaries.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	m "repkg.dev/repkg/internal/model"
)

// UI defines the interface for displaying run progress and results.
// Implementations can use different output methods; output is
// human-readable and non-contractual beyond the summary counts.
type UI interface {
	DisplayPlan(ctx context.Context, plan m.Plan, duplicates []m.Path) error
	DisplayMoveOutcome(ctx context.Context, outcome m.MoveOutcome)
	DisplayDeclarationOutcome(ctx context.Context, outcome m.DeclarationOutcome)
	DisplayRelocationSummary(ctx context.Context, summary m.RelocationSummary)
	DisplayImportOutcome(ctx context.Context, outcome m.ImportOutcome)
	DisplayRewriteSummary(ctx context.Context, summary m.RewriteSummary)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
