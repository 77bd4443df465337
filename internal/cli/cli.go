// Package cli provides the command-line interface for the schema enhancer.
package cli

import (
	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/spf13/cobra"

	"github.com/bnlcnd/schema-enhancer/internal/config"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log     logger.ILogger
	cfg     *config.Config
	rootCmd *cobra.Command
}

// New creates a new CLI instance. Loaded configuration provides flag
// defaults; flags win when set.
func New(log logger.ILogger, cfg *config.Config) *CLI {
	cli := &CLI{
		log: log,
		cfg: cfg,
	}

	cli.rootCmd = &cobra.Command{
		Use:   "schema-enhancer",
		Short: "Convert XSD schemas to JSON Schema and apply them to OpenAPI specifications",
		Long: "A CLI tool that converts XML Schema (XSD) type definitions to JSON Schema and " +
			"injects the resulting validation constraints into existing OpenAPI/Swagger specifications.",
	}

	cli.rootCmd.AddCommand(
		cli.newConvertCmd(),
		cli.newEnhanceCmd(),
		cli.newBatchCmd(),
	)

	return cli
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}
