package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnlcnd/schema-enhancer/internal/adapters/reports"
	"github.com/bnlcnd/schema-enhancer/internal/domain"
	"github.com/bnlcnd/schema-enhancer/internal/jsonschema"
	"github.com/bnlcnd/schema-enhancer/internal/swagger"
)

// newEnhanceCmd builds the enhance command: one OpenAPI document enhanced
// with a previously converted JSON Schema catalog.
func (c *CLI) newEnhanceCmd() *cobra.Command {
	var (
		inputFile    string
		schemaFile   string
		outputFile   string
		strict       bool
		apiType      string
		reportFormat string
		reportOut    string
	)

	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Apply catalog validation constraints to an OpenAPI specification",
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := c.cfg.Options()
			opts.Strict = strict
			opts.APITransactionType = apiType
			if err := opts.Validate(); err != nil {
				return err
			}

			catalog, err := loadCatalog(schemaFile)
			if err != nil {
				return err
			}
			c.log.Infof("Loaded %d schema definitions from %s", catalog.Len(), schemaFile)

			doc, err := swagger.Load(inputFile)
			if err != nil {
				return err
			}
			c.log.Infof("Loaded API: %s (v%s)", doc.Info.Title, doc.Info.Version)

			report := swagger.Merge(doc, catalog, opts)
			report.File = inputFile

			out, err := swagger.MarshalYAML(doc)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputFile, out, 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			batchReport := &domain.BatchReport{}
			batchReport.Add(report)
			if err := c.renderReport(batchReport, reportFormat, reportOut); err != nil {
				return err
			}

			if report.Failed {
				return fmt.Errorf("enhancement of %s completed with errors", inputFile)
			}

			c.log.Infof("Successfully created: %s", outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to the OpenAPI specification file (required)")
	cmd.Flags().StringVarP(&schemaFile, "schema", "s", "", "Path to the JSON Schema catalog file (required)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Path for the enhanced output file (required)")
	cmd.Flags().BoolVar(&strict, "strict", c.cfg.Strict, "Add additionalProperties: false to object schemas")
	cmd.Flags().StringVar(&apiType, "api-type", c.cfg.APITransactionType,
		"API flavor for transaction-type narrowing: Buy, Sell, Switch, Transfer, ICT")
	cmd.Flags().StringVar(&reportFormat, "report-format", "text", "Report format: text, pdf, docx, confluence")
	cmd.Flags().StringVar(&reportOut, "report-out", "", "Path for the report file (default: stderr)")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// loadCatalog reads a JSON Schema catalog written by the convert command.
func loadCatalog(path string) (*jsonschema.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return jsonschema.LoadDocument(data)
}

// renderReport writes the batch report in the requested format, to a file or
// to stderr.
func (c *CLI) renderReport(report *domain.BatchReport, format, path string) error {
	renderer, err := reports.ForFormat(format)
	if err != nil {
		return err
	}

	if path == "" {
		return renderer.Render(report, os.Stderr)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := renderer.Render(report, file); err != nil {
		return fmt.Errorf("failed to render %s report: %w", renderer.Format(), err)
	}
	return nil
}
