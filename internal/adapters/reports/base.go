// Package reports provides renderers for enhancement reports in various
// output formats.
package reports

import (
	"fmt"
	"strings"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
)

// ForFormat returns the renderer for a format name.
func ForFormat(format string) (domain.Renderer, error) {
	switch strings.ToLower(format) {
	case "text", "txt", "":
		return NewTextRenderer(), nil
	case "pdf":
		return NewPDFRenderer(), nil
	case "docx", "word":
		return NewDocxRenderer(), nil
	case "confluence", "adf":
		return NewADFRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s (supported: text, pdf, docx, confluence)", format)
	}
}

// fileHeading returns the per-file section title.
func fileHeading(r *domain.Report) string {
	status := "ok"
	if r.Failed {
		status = "FAILED"
	}
	return fmt.Sprintf("%s [%s]", r.File, status)
}

// fileSummary returns the one-line counter summary for a file.
func fileSummary(r *domain.Report) string {
	return fmt.Sprintf("schemas enhanced: %d, fields matched: %d, fields unmatched: %d",
		r.SchemasEnhanced, r.FieldsMatched, len(r.FieldsUnmatched))
}

// fileDetails returns the detail lines for a file: unmatched fields,
// warnings, conflicts and errors.
func fileDetails(r *domain.Report) []string {
	var lines []string

	if len(r.FieldsUnmatched) > 0 {
		lines = append(lines, "Unmatched fields: "+strings.Join(r.FieldsUnmatched, ", "))
	}
	for _, w := range r.Warnings {
		lines = append(lines, fmt.Sprintf("Warning (%s) %s: %s", w.Kind, w.Subject, w.Detail))
	}
	for _, c := range r.Conflicts {
		lines = append(lines, fmt.Sprintf("Conflict on %s.%s: existing %s kept, catalog proposed %s",
			c.Field, c.Keyword, c.Existing, c.Proposed))
	}
	for _, e := range r.Errors {
		lines = append(lines, "Error: "+e.Reason)
	}

	return lines
}

// batchSummary returns the closing summary line for a batch.
func batchSummary(report *domain.BatchReport) string {
	return fmt.Sprintf("Processed %d files: %d succeeded, %d failed",
		len(report.Files), report.Succeeded(), report.Failed())
}
