// Package domain provides core business models and interfaces for the schema enhancer.
package domain

import "fmt"

// Warning kinds recorded during conversion and merging.
const (
	WarnUnsupportedConstruct = "unsupported-construct"
	WarnAmbiguousMatch       = "ambiguous-match"
	WarnTransactionNarrowed  = "transaction-type-narrowed"
)

// Warning is a non-fatal problem recorded during a run.
type Warning struct {
	Kind    string
	Subject string
	Detail  string
}

// Conflict notes a constraint that was already present on a property with a
// different value. The existing value always wins; the conflict is informational.
type Conflict struct {
	Field    string
	Keyword  string
	Existing string
	Proposed string
}

// FileError is a recoverable error scoped to one file.
type FileError struct {
	File   string
	Reason string
}

// Report accumulates the outcome of enhancing one document.
type Report struct {
	File            string
	SchemasEnhanced int
	FieldsMatched   int
	FieldsUnmatched []string
	Warnings        []Warning
	Conflicts       []Conflict
	Errors          []FileError

	// Failed marks the file for operator review even when the merge partially
	// succeeded (e.g. a broken $ref).
	Failed bool
}

// NewReport creates a report for one file.
func NewReport(file string) *Report {
	return &Report{File: file}
}

// AddWarning records a non-fatal warning.
func (r *Report) AddWarning(kind, subject, detail string) {
	r.Warnings = append(r.Warnings, Warning{Kind: kind, Subject: subject, Detail: detail})
}

// AddConflict records a constraint conflict.
func (r *Report) AddConflict(field, keyword string, existing, proposed any) {
	r.Conflicts = append(r.Conflicts, Conflict{
		Field:    field,
		Keyword:  keyword,
		Existing: fmt.Sprintf("%v", existing),
		Proposed: fmt.Sprintf("%v", proposed),
	})
}

// AddUnmatched records a field name that had no catalog match.
func (r *Report) AddUnmatched(field string) {
	r.FieldsUnmatched = append(r.FieldsUnmatched, field)
}

// AddError records a recoverable error without failing the file, e.g. one
// type's malformed pattern facet.
func (r *Report) AddError(reason string) {
	r.Errors = append(r.Errors, FileError{File: r.File, Reason: reason})
}

// Fail records an error and marks the file for operator review.
func (r *Report) Fail(reason string) {
	r.AddError(reason)
	r.Failed = true
}

// BatchReport aggregates per-file reports for a batch run.
type BatchReport struct {
	Files []*Report
}

// Add appends one file's report.
func (b *BatchReport) Add(r *Report) {
	b.Files = append(b.Files, r)
}

// Succeeded returns the number of files that enhanced cleanly.
func (b *BatchReport) Succeeded() int {
	n := 0
	for _, r := range b.Files {
		if !r.Failed {
			n++
		}
	}
	return n
}

// Failed returns the number of files that need operator review.
func (b *BatchReport) Failed() int {
	return len(b.Files) - b.Succeeded()
}
