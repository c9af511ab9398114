package model

// MoveStatus represents the outcome of a single move rule.
type MoveStatus int

const (
	// Moved indicates the file was copied to its destination.
	Moved MoveStatus = iota
	// Missing indicates the source file did not exist.
	Missing
	// Failed indicates an I/O error occurred during the copy.
	Failed
)

// String returns the human-readable label for the status.
func (s MoveStatus) String() string {
	switch s {
	case Moved:
		return "moved"
	case Missing:
		return "missing"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// MoveOutcome is the per-rule result of the relocation pass.
type MoveOutcome struct {
	Rule   MoveRule
	Status MoveStatus
	Err    error // set only when Status is Failed
}

// DeclarationOutcome is the per-file result of the declaration-rewrite pass.
type DeclarationOutcome struct {
	File      Path
	Namespace string // namespace derived from the file's directory
	Rewritten bool   // false when no declaration line matched
	Err       error
}

// ImportOutcome is the per-file result of the import-rewrite pass. Files
// scanned without changes produce no outcome.
type ImportOutcome struct {
	File       Path
	References int // reference statements replaced in this file
	Err        error
}

// RelocationSummary totals the relocation run. Failures are reported per
// file as they happen; the summary only counts them.
type RelocationSummary struct {
	Moved         int
	Missing       int
	Failed        int
	Rewritten     int
	RewriteErrors int
}

// RewriteSummary totals an import-rewrite run.
type RewriteSummary struct {
	Scanned    int // source files visited
	Updated    int // files written back with changes
	References int // individual reference statements replaced
	Errors     int // files skipped due to read/write errors
}
