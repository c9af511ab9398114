package domain

import (
	"context"
	"fmt"

	"repkg.dev/repkg/internal/adapter"
	"repkg.dev/repkg/internal/controller"
	m "repkg.dev/repkg/internal/model"
)

// PlanArgs contains the arguments for inspecting a plan.
type PlanArgs struct {
	Plan m.Path
}

// RelocateArgs contains the arguments for the relocation run.
type RelocateArgs struct {
	Plan m.Path
	Root m.Path // overrides the plan root when non-empty
}

// RewriteArgs contains the arguments for the import-rewrite run.
type RewriteArgs struct {
	Plan m.Path
	Root m.Path // overrides the plan root when non-empty
}

// Workflow ties the plan store, the filesystem passes and the UI together,
// one method per subcommand. Plan-load failures are the only fatal errors;
// once a run starts it always completes and reports summary counts.
type Workflow interface {
	ShowPlan(ctx context.Context, args PlanArgs) error
	Relocate(ctx context.Context, args RelocateArgs) error
	RewriteImports(ctx context.Context, args RewriteArgs) error
}

type workflow struct {
	plans     adapter.PlanStore
	ui        controller.UI
	relocator *Relocator
	rewriter  *Rewriter
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	plans adapter.PlanStore,
	ui controller.UI,
	relocator *Relocator,
	rewriter *Rewriter,
) Workflow {
	return &workflow{
		plans:     plans,
		ui:        ui,
		relocator: relocator,
		rewriter:  rewriter,
	}
}

// ShowPlan loads and validates the plan and prints its tables, including
// duplicate-destination warnings.
func (w *workflow) ShowPlan(ctx context.Context, args PlanArgs) error {
	plan, err := w.plans.LoadPlan(args.Plan)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}

	return w.ui.DisplayPlan(ctx, plan, plan.DuplicateDestinations())
}

// Relocate runs the move table and then the declaration-rewrite pass.
// Per-file failures are displayed and counted but never abort the run.
func (w *workflow) Relocate(ctx context.Context, args RelocateArgs) error {
	plan, err := w.plans.LoadPlan(args.Plan)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}

	root := resolveRoot(plan, args.Root)

	var summary m.RelocationSummary

	for _, outcome := range w.relocator.MoveFiles(plan, root) {
		w.ui.DisplayMoveOutcome(ctx, outcome)

		switch outcome.Status {
		case m.Moved:
			summary.Moved++
		case m.Missing:
			summary.Missing++
		case m.Failed:
			summary.Failed++
		}
	}

	for _, outcome := range w.relocator.RewriteDeclarations(plan, root) {
		w.ui.DisplayDeclarationOutcome(ctx, outcome)

		switch {
		case outcome.Err != nil:
			summary.RewriteErrors++
		case outcome.Rewritten:
			summary.Rewritten++
		}
	}

	w.ui.DisplayRelocationSummary(ctx, summary)

	return nil
}

// RewriteImports applies the plan's import table across the tree.
func (w *workflow) RewriteImports(ctx context.Context, args RewriteArgs) error {
	plan, err := w.plans.LoadPlan(args.Plan)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}

	root := resolveRoot(plan, args.Root)

	outcomes, summary := w.rewriter.RewriteImports(plan, root)
	for _, outcome := range outcomes {
		w.ui.DisplayImportOutcome(ctx, outcome)
	}

	w.ui.DisplayRewriteSummary(ctx, summary)

	return nil
}

func resolveRoot(plan m.Plan, override m.Path) m.Path {
	if override != "" {
		return override
	}

	return plan.Root
}
