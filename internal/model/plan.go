// Package model holds the shared data types for the repkg CLI.
package model

import "strings"

// Path represents a file system path.
type Path string

// Default source spec values applied when the plan file leaves them out.
const (
	DefaultDeclarationKeyword = "package"
	DefaultImportKeyword      = "import"
)

// DefaultExtensions is the extension filter used when the plan does not set one.
var DefaultExtensions = []string{".java"}

// SourceSpec describes what a source file looks like in the tree being
// reorganized: which files to touch and how their declaration and import
// lines are spelled.
type SourceSpec struct {
	// Extensions lists file suffixes (including the dot) that identify
	// source files. Files with other extensions are never touched.
	Extensions []string `yaml:"extensions"`

	// Keyword is the declaration keyword opening the namespace line,
	// e.g. "package" for Java sources.
	Keyword string `yaml:"keyword"`

	// ImportKeyword opens a qualified-reference line, e.g. "import".
	ImportKeyword string `yaml:"import_keyword"`

	// Prefix is the namespace prefix shared by every file in the tree,
	// e.g. "com.demo.auth". The declaration rewrite anchors on it and the
	// derived namespace is Prefix + "." + dotted relative directory.
	// May be empty, in which case the derived namespace is just the
	// dotted relative directory.
	Prefix string `yaml:"prefix"`
}

// MoveRule maps one file from its old location to its new one. Both sides
// are relative to the plan root. Destination uniqueness is not enforced;
// the operator asserts the table is consistent.
type MoveRule struct {
	From Path `yaml:"from"`
	To   Path `yaml:"to"`
}

// ImportRule maps an old qualified name to its replacement. Applied as both
// an exact reference and the wildcard form of its parent namespace.
type ImportRule struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// OldParent returns the namespace holding the old qualified name.
func (r ImportRule) OldParent() string { return parentNamespace(r.Old) }

// NewParent returns the namespace holding the new qualified name.
func (r ImportRule) NewParent() string { return parentNamespace(r.New) }

func parentNamespace(qualified string) string {
	idx := strings.LastIndex(qualified, ".")
	if idx < 0 {
		return qualified
	}

	return qualified[:idx]
}

// Plan is a parsed migration plan: the move table, the import table and the
// source spec they apply to.
type Plan struct {
	Version int        `yaml:"version"`
	Root    Path       `yaml:"root"`
	Source  SourceSpec `yaml:"source"`

	// Moves is applied by the relocator, in order.
	Moves []MoveRule `yaml:"moves"`

	// RewriteRoots are the directories (relative to Root) scanned by the
	// declaration-rewrite pass after the moves. A file moved outside these
	// roots keeps its old declaration line.
	RewriteRoots []Path `yaml:"rewrite_roots"`

	// Imports is applied by the import rewriter to every source file
	// under Root.
	Imports []ImportRule `yaml:"imports"`
}

// MatchesExtension reports whether path names a source file per the spec.
func (s SourceSpec) MatchesExtension(path Path) bool {
	for _, ext := range s.Extensions {
		if strings.HasSuffix(string(path), ext) {
			return true
		}
	}

	return false
}

// DuplicateDestinations returns every destination path that appears more
// than once in the move table. Duplicates are reported, never rejected.
func (p Plan) DuplicateDestinations() []Path {
	seen := make(map[Path]int, len(p.Moves))
	for _, rule := range p.Moves {
		seen[rule.To]++
	}

	var dupes []Path

	for _, rule := range p.Moves {
		if seen[rule.To] > 1 {
			dupes = append(dupes, rule.To)
			seen[rule.To] = 0
		}
	}

	return dupes
}
