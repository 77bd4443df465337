package reports

import (
	"fmt"
	"io"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
)

const textFormat = "text"

// TextRenderer writes enhancement reports as plain text for console output.
type TextRenderer struct{}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Format returns the output format name.
func (r *TextRenderer) Format() string {
	return textFormat
}

// Render writes the batch report as plain text.
func (r *TextRenderer) Render(report *domain.BatchReport, output io.Writer) error {
	for _, file := range report.Files {
		if _, err := fmt.Fprintln(output, fileHeading(file)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(output, "  %s\n", fileSummary(file)); err != nil {
			return err
		}
		for _, line := range fileDetails(file) {
			if _, err := fmt.Fprintf(output, "  %s\n", line); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(output, batchSummary(report))
	return err
}
