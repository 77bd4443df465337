package reports

import (
	"fmt"
	"io"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
)

const docxFormat = "docx"

// DocxRenderer writes enhancement reports as Word (DOCX) documents.
type DocxRenderer struct{}

// NewDocxRenderer creates a new DOCX renderer.
func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// Format returns the output format name.
func (r *DocxRenderer) Format() string {
	return docxFormat
}

// Render writes the batch report as a DOCX document.
func (r *DocxRenderer) Render(report *domain.BatchReport, output io.Writer) error {
	document, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	_, _ = document.AddHeading("Schema Enhancement Report", 0)
	document.AddParagraph(batchSummary(report))
	document.AddEmptyParagraph()

	for _, file := range report.Files {
		r.addFileSection(document, file)
	}

	if err := document.Write(output); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (r *DocxRenderer) addFileSection(document *docx.RootDoc, file *domain.Report) {
	_, _ = document.AddHeading(fileHeading(file), 1)
	document.AddParagraph(fileSummary(file))

	for _, line := range fileDetails(file) {
		document.AddParagraph(fmt.Sprintf("• %s", line))
	}

	document.AddEmptyParagraph()
}
