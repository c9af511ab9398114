package domain

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"repkg.dev/repkg/internal/adapter"
	m "repkg.dev/repkg/internal/model"
)

// Relocator executes the move table of a plan and then rewrites the
// namespace declaration of every source file found under the plan's rewrite
// roots. No step is fatal to the batch: missing sources and I/O failures
// are recorded per file and the run always completes.
type Relocator struct {
	fs adapter.SourceFSAdapter
}

// NewRelocator constructs a Relocator backed by the given filesystem adapter.
func NewRelocator(fs adapter.SourceFSAdapter) *Relocator {
	return &Relocator{fs: fs}
}

// MoveFiles applies every move rule in order. Sources are copied, not
// removed; the original tree stays intact the way the operator left it.
func (r *Relocator) MoveFiles(plan m.Plan, root m.Path) []m.MoveOutcome {
	outcomes := make([]m.MoveOutcome, 0, len(plan.Moves))

	for _, rule := range plan.Moves {
		outcomes = append(outcomes, r.moveFile(rule, root))
	}

	return outcomes
}

func (r *Relocator) moveFile(rule m.MoveRule, root m.Path) m.MoveOutcome {
	src := r.fs.JoinPath(string(root), string(rule.From))
	dst := r.fs.JoinPath(string(root), string(rule.To))

	if _, err := r.fs.FileInfo(src); err != nil {
		slog.Warn("source not found", "from", rule.From)
		return m.MoveOutcome{Rule: rule, Status: m.Missing}
	}

	if err := r.fs.MkdirAll(m.Path(filepath.Dir(string(dst)))); err != nil {
		slog.Error("create destination directory", "to", rule.To, "error", err)
		return m.MoveOutcome{Rule: rule, Status: m.Failed, Err: err}
	}

	if err := r.fs.CopyFile(src, dst); err != nil {
		slog.Error("copy failed", "from", rule.From, "to", rule.To, "error", err)
		return m.MoveOutcome{Rule: rule, Status: m.Failed, Err: err}
	}

	slog.Debug("moved", "from", rule.From, "to", rule.To)

	return m.MoveOutcome{Rule: rule, Status: m.Moved}
}

// RewriteDeclarations walks the plan's rewrite roots and rewrites the first
// namespace declaration of each source file to the namespace derived from
// the file's directory. Files without a matching declaration line are left
// byte-identical. A file moved outside the configured rewrite roots is not
// visited and keeps its old declaration.
func (r *Relocator) RewriteDeclarations(plan m.Plan, root m.Path) []m.DeclarationOutcome {
	var outcomes []m.DeclarationOutcome

	for _, rewriteRoot := range plan.RewriteRoots {
		dir := r.fs.JoinPath(string(root), string(rewriteRoot))

		err := r.fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				// A rewrite root that does not exist simply has
				// nothing to rewrite.
				if os.IsNotExist(err) {
					return filepath.SkipAll
				}

				outcomes = append(outcomes, m.DeclarationOutcome{File: m.Path(path), Err: err})

				return nil
			}

			if info.IsDir() || !plan.Source.MatchesExtension(m.Path(path)) {
				return nil
			}

			outcomes = append(outcomes, r.rewriteFile(plan, root, m.Path(path), info.Mode()))

			return nil
		})
		if err != nil {
			slog.Error("walk rewrite root", "root", rewriteRoot, "error", err)
		}
	}

	return outcomes
}

func (r *Relocator) rewriteFile(plan m.Plan, root, path m.Path, mode os.FileMode) m.DeclarationOutcome {
	relDir, err := r.fs.RelPath(root, m.Path(filepath.Dir(string(path))))
	if err != nil {
		return m.DeclarationOutcome{File: path, Err: err}
	}

	namespace := DeriveNamespace(plan.Source.Prefix, relDir)

	content, err := r.fs.ReadFile(path)
	if err != nil {
		slog.Error("read for declaration rewrite", "file", path, "error", err)
		return m.DeclarationOutcome{File: path, Namespace: namespace, Err: err}
	}

	updated, matched := rewriteDeclaration(content, plan.Source, namespace)
	if !matched || bytes.Equal(updated, content) {
		return m.DeclarationOutcome{File: path, Namespace: namespace}
	}

	if err := r.fs.WriteFile(path, updated, mode); err != nil {
		slog.Error("write declaration rewrite", "file", path, "error", err)
		return m.DeclarationOutcome{File: path, Namespace: namespace, Err: err}
	}

	slog.Debug("rewrote declaration", "file", path, "namespace", namespace)

	return m.DeclarationOutcome{File: path, Namespace: namespace, Rewritten: true}
}
