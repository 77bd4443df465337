package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
	"github.com/bnlcnd/schema-enhancer/internal/jsonschema"
	"github.com/bnlcnd/schema-enhancer/internal/xsd"
)

// newConvertCmd builds the convert command: XSD in, JSON Schema out.
func (c *CLI) newConvertCmd() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		draft      int
		clean      bool
		schemaID   string
		title      string
		desc       string
		rootProp   string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an XSD schema to a JSON Schema document",
		RunE: func(_ *cobra.Command, _ []string) error {
			c.log.Infof("Parsing XSD file: %s", inputFile)

			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read XSD file: %w", err)
			}

			schema, err := xsd.Parse(data)
			if err != nil {
				return err
			}

			c.log.Infof("Parsed %d simple types, %d complex types, %d elements",
				len(schema.SimpleTypes), len(schema.ComplexTypes), len(schema.Elements))

			report := domain.NewReport(inputFile)
			catalog, err := jsonschema.BuildCatalog(schema, jsonschema.MapOptions{CleanOutput: clean}, report)
			if err != nil {
				return err
			}

			out, err := jsonschema.WriteDocument(catalog, jsonschema.DocumentOptions{
				Draft:        draft,
				ID:           schemaID,
				Title:        title,
				Description:  desc,
				RootProperty: rootProp,
			})
			if err != nil {
				return err
			}

			if err := os.WriteFile(outputFile, out, 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			for _, warning := range report.Warnings {
				c.log.Infof("Warning (%s) %s: %s", warning.Kind, warning.Subject, warning.Detail)
			}
			for _, convErr := range report.Errors {
				c.log.Errorf("Skipped: %s", convErr.Reason)
			}

			c.log.Infof("Generated %d schema definitions: %s", catalog.Len(), outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to the input XSD file (required)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Path for the JSON Schema output file (required)")
	cmd.Flags().IntVar(&draft, "draft", c.cfg.DraftVersion, "JSON Schema draft version: 4, 6 or 7")
	cmd.Flags().BoolVar(&clean, "clean", c.cfg.CleanOutput, "Omit synthesized descriptions")
	cmd.Flags().StringVar(&schemaID, "id", "https://fundserv.com/tfs/xml-aligned-schema", "Value for the $id keyword")
	cmd.Flags().StringVar(&title, "title", "TFS Trading Schema - XML Aligned", "Value for the title keyword")
	cmd.Flags().StringVar(&desc, "description",
		"JSON Schema generated from XSD type definitions", "Value for the description keyword")
	cmd.Flags().StringVar(&rootProp, "root", "OrdSet", "Definition exposed as the document's root property")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
