// Package domain implements the relocation and import-rewrite passes.
package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	m "repkg.dev/repkg/internal/model"
)

// DeriveNamespace converts a directory path relative to the tree root into
// the dotted namespace a file in that directory should declare. With prefix
// "com.demo.auth" and relDir "modules/user/entity" the result is
// "com.demo.auth.modules.user.entity".
func DeriveNamespace(prefix string, relDir m.Path) string {
	dir := filepath.ToSlash(string(relDir))
	if dir == "." {
		dir = ""
	}

	dotted := strings.ReplaceAll(strings.Trim(dir, "/"), "/", ".")

	switch {
	case prefix == "":
		return dotted
	case dotted == "":
		return prefix
	default:
		return prefix + "." + dotted
	}
}

// declarationPattern matches the namespace declaration line for the given
// source spec. With a prefix the pattern anchors on it, so declarations
// from foreign trees are left alone; with an empty prefix any declaration
// line matches.
func declarationPattern(spec m.SourceSpec) *regexp.Regexp {
	expr := `(?m)^` + regexp.QuoteMeta(spec.Keyword) + `\s+`
	if spec.Prefix != "" {
		expr += regexp.QuoteMeta(spec.Prefix) + `\.`
	}

	expr += `[^;]+;`

	return regexp.MustCompile(expr)
}

// rewriteDeclaration replaces the first declaration line in content with one
// naming namespace. It returns the updated content and whether a line
// matched; when nothing matches the content is returned untouched.
func rewriteDeclaration(content []byte, spec m.SourceSpec, namespace string) ([]byte, bool) {
	loc := declarationPattern(spec).FindIndex(content)
	if loc == nil {
		return content, false
	}

	replacement := spec.Keyword + " " + namespace + ";"

	updated := make([]byte, 0, len(content)+len(replacement))
	updated = append(updated, content[:loc[0]]...)
	updated = append(updated, replacement...)
	updated = append(updated, content[loc[1]:]...)

	return updated, true
}
