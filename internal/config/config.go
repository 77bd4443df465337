// Package config provides configuration loading for the schema enhancer.
package config

import (
	configloader "github.com/GabrielNunesIT/go-libs/config-loader"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
	"github.com/bnlcnd/schema-enhancer/internal/jsonschema"
)

// Config holds the application configuration. CLI flags override these
// values; the loader layers environment variables over defaults.
type Config struct {
	// Strict adds additionalProperties: false to enhanced object schemas.
	Strict bool `koanf:"strict"`

	// CleanOutput suppresses synthesized descriptions in generated schemas.
	CleanOutput bool `koanf:"clean_output"`

	// DraftVersion selects the JSON Schema draft: 4, 6 or 7.
	DraftVersion int `koanf:"draft_version"`

	// APITransactionType narrows the transaction-type enum for one API flavor.
	APITransactionType string `koanf:"api_transaction_type"`

	// FieldMappings maps document field names to catalog keys, consulted
	// before case-insensitive resolution.
	FieldMappings map[string]string `koanf:"field_mappings"`

	// Workers bounds batch parallelism.
	Workers int `koanf:"workers"`
}

// Load returns the application configuration using go-libs config-loader.
func Load() (*Config, error) {
	defaults := Config{
		DraftVersion: jsonschema.DefaultDraft,
		FieldMappings: map[string]string{
			"Date":       "Date8",
			"Time":       "Time6",
			"DlrCode":    "Length4",
			"IntCode":    "Alpha3To4",
			"SrcID":      "String15",
			"FundAcctID": "String15",
			"FundID":     "String3To5",
			"OrdID":      "String5To7",
			"AmtValue":   "Value14",
		},
	}

	loader := configloader.NewConfigLoader(
		configloader.WithDefaults(defaults),
		configloader.WithEnv[Config]("SCHEMA_ENHANCER_"),
	)

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Options converts the configuration into the read-only option set the
// conversion and merge engines consume.
func (c *Config) Options() domain.Options {
	return domain.Options{
		Strict:             c.Strict,
		CleanOutput:        c.CleanOutput,
		DraftVersion:       c.DraftVersion,
		APITransactionType: c.APITransactionType,
		FieldMappings:      c.FieldMappings,
	}
}
