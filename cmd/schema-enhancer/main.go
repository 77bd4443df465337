// Package main provides the entry point for the schema enhancer CLI.
package main

import (
	"os"

	"github.com/GabrielNunesIT/go-libs/logger"

	"github.com/bnlcnd/schema-enhancer/internal/cli"
	"github.com/bnlcnd/schema-enhancer/internal/config"
)

func main() {
	log := logger.NewConsoleLogger(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	app := cli.New(log, cfg)
	if err := app.Execute(); err != nil {
		log.Errorf("Error: %v", err)
		os.Exit(1)
	}
}
