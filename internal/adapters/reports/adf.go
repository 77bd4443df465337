package reports

import (
	"encoding/json"
	"io"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
)

const adfFormat = "confluence"

// ADFRenderer writes enhancement reports as Atlassian Document Format (ADF)
// JSON for Confluence pages.
type ADFRenderer struct{}

// NewADFRenderer creates a new ADF renderer.
func NewADFRenderer() *ADFRenderer {
	return &ADFRenderer{}
}

// Format returns the output format name.
func (r *ADFRenderer) Format() string {
	return adfFormat
}

// ADF node types.
type adfDocument struct {
	Version int       `json:"version"`
	Type    string    `json:"type"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Attrs   *adfAttrs `json:"attrs,omitempty"`
	Content []adfNode `json:"content,omitempty"`
	Text    string    `json:"text,omitempty"`
}

type adfAttrs struct {
	Level int `json:"level,omitempty"`
}

// Render writes the batch report as ADF JSON.
func (r *ADFRenderer) Render(report *domain.BatchReport, output io.Writer) error {
	adf := &adfDocument{
		Version: 1,
		Type:    "doc",
		Content: []adfNode{},
	}

	adf.Content = append(adf.Content, r.heading("Schema Enhancement Report", 1))
	adf.Content = append(adf.Content, r.paragraph(batchSummary(report)))

	for _, file := range report.Files {
		adf.Content = append(adf.Content, r.heading(fileHeading(file), 2))
		adf.Content = append(adf.Content, r.paragraph(fileSummary(file)))

		if details := fileDetails(file); len(details) > 0 {
			adf.Content = append(adf.Content, r.bulletList(details))
		}
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(adf)
}

func (r *ADFRenderer) heading(text string, level int) adfNode {
	return adfNode{
		Type:    "heading",
		Attrs:   &adfAttrs{Level: level},
		Content: []adfNode{{Type: "text", Text: text}},
	}
}

func (r *ADFRenderer) paragraph(text string) adfNode {
	return adfNode{
		Type:    "paragraph",
		Content: []adfNode{{Type: "text", Text: text}},
	}
}

func (r *ADFRenderer) bulletList(items []string) adfNode {
	list := adfNode{Type: "bulletList"}
	for _, item := range items {
		list.Content = append(list.Content, adfNode{
			Type:    "listItem",
			Content: []adfNode{r.paragraph(item)},
		})
	}
	return list
}
