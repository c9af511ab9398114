package domain

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"regexp"

	"github.com/sergi/go-diff/diffmatchpatch"

	"repkg.dev/repkg/internal/adapter"
	m "repkg.dev/repkg/internal/model"
)

// Rewriter applies a plan's import table to every source file under the
// tree root. Each rule is applied in its exact form and in the wildcard
// form of its parent namespace. Files are written back only when their
// content actually changed, which makes the pass idempotent.
type Rewriter struct {
	fs adapter.SourceFSAdapter
}

// NewRewriter constructs a Rewriter backed by the given filesystem adapter.
func NewRewriter(fs adapter.SourceFSAdapter) *Rewriter {
	return &Rewriter{fs: fs}
}

// importPattern is one import rule compiled against the plan's source spec.
type importPattern struct {
	exact        *regexp.Regexp
	exactRepl    []byte
	wildcard     *regexp.Regexp
	wildcardRepl []byte
}

func compilePatterns(spec m.SourceSpec, rules []m.ImportRule) []importPattern {
	keyword := regexp.QuoteMeta(spec.ImportKeyword)
	patterns := make([]importPattern, 0, len(rules))

	for _, rule := range rules {
		patterns = append(patterns, importPattern{
			exact:        regexp.MustCompile(keyword + `\s+` + regexp.QuoteMeta(rule.Old) + `;`),
			exactRepl:    []byte(spec.ImportKeyword + " " + rule.New + ";"),
			wildcard:     regexp.MustCompile(keyword + `\s+` + regexp.QuoteMeta(rule.OldParent()) + `\.\*;`),
			wildcardRepl: []byte(spec.ImportKeyword + " " + rule.NewParent() + ".*;"),
		})
	}

	return patterns
}

// RewriteImports scans every source file under root and applies the plan's
// import rules. Outcomes are produced only for files that changed or
// errored; the summary counts every file visited. Per-file errors never
// stop the batch.
func (w *Rewriter) RewriteImports(plan m.Plan, root m.Path) ([]m.ImportOutcome, m.RewriteSummary) {
	patterns := compilePatterns(plan.Source, plan.Imports)

	var outcomes []m.ImportOutcome

	var summary m.RewriteSummary

	err := w.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			outcomes = append(outcomes, m.ImportOutcome{File: m.Path(path), Err: err})
			summary.Errors++

			return nil
		}

		if info.IsDir() || !plan.Source.MatchesExtension(m.Path(path)) {
			return nil
		}

		summary.Scanned++

		outcome, changed := w.rewriteFile(patterns, m.Path(path), info.Mode())
		if !changed && outcome.Err == nil {
			return nil
		}

		outcomes = append(outcomes, outcome)

		if outcome.Err != nil {
			summary.Errors++
			return nil
		}

		summary.Updated++
		summary.References += outcome.References

		return nil
	})
	if err != nil {
		slog.Error("walk source tree", "root", root, "error", err)
		summary.Errors++
	}

	return outcomes, summary
}

func (w *Rewriter) rewriteFile(patterns []importPattern, path m.Path, mode os.FileMode) (m.ImportOutcome, bool) {
	content, err := w.fs.ReadFile(path)
	if err != nil {
		slog.Error("read for import rewrite", "file", path, "error", err)
		return m.ImportOutcome{File: path, Err: err}, false
	}

	updated := content
	references := 0

	for _, pattern := range patterns {
		references += len(pattern.exact.FindAllIndex(updated, -1))
		updated = pattern.exact.ReplaceAllLiteral(updated, pattern.exactRepl)

		references += len(pattern.wildcard.FindAllIndex(updated, -1))
		updated = pattern.wildcard.ReplaceAllLiteral(updated, pattern.wildcardRepl)
	}

	if references == 0 || bytes.Equal(updated, content) {
		return m.ImportOutcome{File: path}, false
	}

	if err := w.fs.WriteFile(path, updated, mode); err != nil {
		slog.Error("write import rewrite", "file", path, "error", err)
		return m.ImportOutcome{File: path, Err: err}, false
	}

	logRewriteDiff(path, content, updated)

	return m.ImportOutcome{File: path, References: references}, true
}

// logRewriteDiff records what changed in a file at debug level.
func logRewriteDiff(path m.Path, before, after []byte) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(before), string(after), false)
	slog.Debug("rewrote imports", "file", path, "diff", dmp.DiffPrettyText(diffs))
}
