package reports

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
)

const (
	pdfFormat      = "pdf"
	pdfMarginLeft  = 10.0
	pdfMarginTop   = 10.0
	pdfMarginRight = 10.0
	pdfLineHeight  = 5.0
	pdfPageWidth   = 190.0
)

// PDFRenderer writes enhancement reports as PDF documents.
type PDFRenderer struct {
	pdf *gofpdf.Fpdf
}

// NewPDFRenderer creates a new PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Format returns the output format name.
func (r *PDFRenderer) Format() string {
	return pdfFormat
}

// Render writes the batch report as a PDF document.
func (r *PDFRenderer) Render(report *domain.BatchReport, output io.Writer) error {
	r.pdf = gofpdf.New("P", "mm", "A4", "")
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetDrawColor(180, 180, 180)
	r.pdf.AddPage()

	r.title("Schema Enhancement Report")
	r.text(batchSummary(report))
	r.pdf.Ln(pdfLineHeight)

	for _, file := range report.Files {
		r.fileSection(file)
	}

	return r.pdf.Output(output)
}

func (r *PDFRenderer) fileSection(file *domain.Report) {
	r.heading(fileHeading(file), file.Failed)
	r.text(fileSummary(file))
	for _, line := range fileDetails(file) {
		r.text("- " + line)
	}
	r.pdf.Ln(pdfLineHeight / 2)
}

func (r *PDFRenderer) title(text string) {
	r.pdf.SetFont("Helvetica", "B", 16)
	r.pdf.CellFormat(pdfPageWidth, pdfLineHeight*2, text, "", 1, "L", false, 0, "")
	r.pdf.Ln(pdfLineHeight / 2)
	r.pdf.SetFont("Helvetica", "", 10)
}

func (r *PDFRenderer) heading(text string, failed bool) {
	r.pdf.SetFont("Helvetica", "B", 12)
	if failed {
		r.pdf.SetTextColor(180, 30, 30)
	}
	r.pdf.CellFormat(pdfPageWidth, pdfLineHeight*1.5, text, "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetFont("Helvetica", "", 10)
}

func (r *PDFRenderer) text(text string) {
	r.pdf.MultiCell(pdfPageWidth, pdfLineHeight, text, "", "L", false)
}
