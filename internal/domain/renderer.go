package domain

import "io"

// Renderer defines the interface for enhancement report renderers.
type Renderer interface {
	// Render writes the batch report to the output in the target format.
	Render(report *BatchReport, output io.Writer) error

	// Format returns the output format name (e.g. "text", "pdf").
	Format() string
}
