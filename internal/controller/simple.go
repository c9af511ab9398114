package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "repkg.dev/repkg/internal/model"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// SimpleUI implements UI by printing plain progress lines and summary
// tables through the cobra command's output stream.
type SimpleUI struct {
	cmd     *cobra.Command
	colored bool
}

// NewSimpleUI creates a new SimpleUI. When colored is false (output not
// attached to a terminal) status markers are printed unstyled.
func NewSimpleUI(cmd *cobra.Command, colored bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, colored: colored}
}

// DisplayPlan prints the move and import tables plus any
// duplicate-destination warnings.
func (s *SimpleUI) DisplayPlan(ctx context.Context, plan m.Plan, duplicates []m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Plan root: %s\n", plan.Root)
	s.printf("%s", renderMoveTable(plan.Moves))
	s.printf("%s", renderImportTable(plan.Imports))

	for _, dup := range duplicates {
		s.printf("%s duplicate destination: %s\n", s.label(warnStyle, "warn"), dup)
	}

	return nil
}

func renderMoveTable(moves []m.MoveRule) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"From", "To"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, rule := range moves {
		table.Append([]string{string(rule.From), string(rule.To)})
	}

	table.SetFooter([]string{"Moves", fmt.Sprintf("%d", len(moves))})
	table.Render()

	return tableBuffer.String()
}

func renderImportTable(imports []m.ImportRule) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Old", "New"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, rule := range imports {
		table.Append([]string{rule.Old, rule.New})
	}

	table.SetFooter([]string{"Imports", fmt.Sprintf("%d", len(imports))})
	table.Render()

	return tableBuffer.String()
}

// DisplayMoveOutcome prints the result of a single move rule.
func (s *SimpleUI) DisplayMoveOutcome(ctx context.Context, outcome m.MoveOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch outcome.Status {
	case m.Moved:
		s.printf("%s %s -> %s\n", s.label(okStyle, "moved"), outcome.Rule.From, outcome.Rule.To)
	case m.Missing:
		s.printf("%s source not found: %s\n", s.label(warnStyle, "missing"), outcome.Rule.From)
	case m.Failed:
		s.printf("%s %s -> %s: %v\n", s.label(errStyle, "failed"), outcome.Rule.From, outcome.Rule.To, outcome.Err)
	}
}

// DisplayDeclarationOutcome prints the result of rewriting one file's
// namespace declaration. Files left unchanged are not reported.
func (s *SimpleUI) DisplayDeclarationOutcome(ctx context.Context, outcome m.DeclarationOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch {
	case outcome.Err != nil:
		s.printf("%s declaration in %s: %v\n", s.label(errStyle, "failed"), outcome.File, outcome.Err)
	case outcome.Rewritten:
		s.printf("%s %s declares %s\n", s.label(okStyle, "rewrote"), outcome.File, outcome.Namespace)
	}
}

// DisplayRelocationSummary prints the final relocation counts.
func (s *SimpleUI) DisplayRelocationSummary(ctx context.Context, summary m.RelocationSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nMoved: %d  Missing: %d  Failed: %d\n", summary.Moved, summary.Missing, summary.Failed)
	s.printf("Declarations rewritten: %d  Errors: %d\n", summary.Rewritten, summary.RewriteErrors)
}

// DisplayImportOutcome prints the result of rewriting one file's imports.
func (s *SimpleUI) DisplayImportOutcome(ctx context.Context, outcome m.ImportOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	if outcome.Err != nil {
		s.printf("%s %s: %v\n", s.label(errStyle, "failed"), outcome.File, outcome.Err)
		return
	}

	s.printf("%s %s (%d references)\n", s.label(okStyle, "updated"), outcome.File, outcome.References)
}

// DisplayRewriteSummary prints the final import-rewrite counts.
func (s *SimpleUI) DisplayRewriteSummary(ctx context.Context, summary m.RewriteSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nScanned: %d  Updated: %d  References: %d  Errors: %d\n",
		summary.Scanned, summary.Updated, summary.References, summary.Errors)
}

func (s *SimpleUI) label(style lipgloss.Style, text string) string {
	if !s.colored {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
