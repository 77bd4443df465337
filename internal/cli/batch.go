package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnlcnd/schema-enhancer/internal/batch"
)

// newBatchCmd builds the batch command: every OpenAPI document under a
// directory enhanced with one shared catalog.
func (c *CLI) newBatchCmd() *cobra.Command {
	var (
		inputDir     string
		schemaFile   string
		outputDir    string
		strict       bool
		apiType      string
		dryRun       bool
		workers      int
		reportFormat string
		reportOut    string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Enhance every OpenAPI specification in a directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			files, err := batch.FindSpecFiles(inputDir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no OpenAPI YAML files found in %s", inputDir)
			}
			c.log.Infof("Found %d OpenAPI files in %s", len(files), inputDir)

			if dryRun {
				for _, file := range files {
					c.log.Infof("Would process: %s", file)
				}
				return nil
			}

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

			runner := batch.NewRunner(c.log, catalog, opts, workers)
			report, err := runner.Run(files, outputDir)
			if err != nil {
				return err
			}

			if err := c.renderReport(report, reportFormat, reportOut); err != nil {
				return err
			}

			if failed := report.Failed(); failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Directory containing OpenAPI YAML files (required)")
	cmd.Flags().StringVarP(&schemaFile, "schema", "s", "", "Path to the JSON Schema catalog file (required)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for enhanced output files (required)")
	cmd.Flags().BoolVar(&strict, "strict", c.cfg.Strict, "Add additionalProperties: false to object schemas")
	cmd.Flags().StringVar(&apiType, "api-type", c.cfg.APITransactionType,
		"API flavor for transaction-type narrowing: Buy, Sell, Switch, Transfer, ICT")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List files that would be processed")
	cmd.Flags().IntVar(&workers, "workers", c.cfg.Workers, "Number of parallel workers")
	cmd.Flags().StringVar(&reportFormat, "report-format", "text", "Report format: text, pdf, docx, confluence")
	cmd.Flags().StringVar(&reportOut, "report-out", "", "Path for the report file (default: stderr)")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
