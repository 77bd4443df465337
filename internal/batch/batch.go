// Package batch enhances every OpenAPI document under a directory against one
// shared catalog.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GabrielNunesIT/go-libs/logger"
	"golang.org/x/sync/errgroup"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
	"github.com/bnlcnd/schema-enhancer/internal/jsonschema"
	"github.com/bnlcnd/schema-enhancer/internal/swagger"
)

// DefaultWorkers bounds batch parallelism when no worker count is configured.
const DefaultWorkers = 4

// Runner enhances a set of files with a shared read-only catalog. The catalog
// is immutable after construction, so workers share it without locking.
type Runner struct {
	log     logger.ILogger
	catalog *jsonschema.Catalog
	opts    domain.Options
	workers int
}

// NewRunner creates a batch runner.
func NewRunner(log logger.ILogger, catalog *jsonschema.Catalog, opts domain.Options, workers int) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{log: log, catalog: catalog, opts: opts, workers: workers}
}

// FindSpecFiles returns the YAML files under dir that look like OpenAPI
// documents, sorted for deterministic processing order.
func FindSpecFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if looksLikeSpec(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// looksLikeSpec sniffs file content for OpenAPI markers, so unrelated YAML in
// the directory is not touched.
func looksLikeSpec(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	content := strings.ToLower(string(data))
	for _, keyword := range []string{"openapi", "swagger", "paths:", "components:"} {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}

// Run enhances each file into outputDir. One file's failure never stops the
// others; per-file outcomes land on the batch report.
func (r *Runner) Run(files []string, outputDir string) (*domain.BatchReport, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	results := make([]*domain.Report, len(files))

	var group errgroup.Group
	group.SetLimit(r.workers)

	for i, file := range files {
		group.Go(func() error {
			results[i] = r.enhanceFile(file, outputDir)
			return nil
		})
	}

	// Workers never return errors; failures are isolated per file.
	_ = group.Wait()

	report := &domain.BatchReport{}
	for _, result := range results {
		report.Add(result)
	}
	return report, nil
}

func (r *Runner) enhanceFile(file, outputDir string) *domain.Report {
	doc, err := swagger.Load(file)
	if err != nil {
		report := domain.NewReport(file)
		report.Fail(err.Error())
		r.log.Errorf("Failed to load %s: %v", file, err)
		return report
	}

	report := swagger.Merge(doc, r.catalog, r.opts)
	report.File = file

	out, err := swagger.MarshalYAML(doc)
	if err != nil {
		report.Fail(err.Error())
		r.log.Errorf("Failed to serialize %s: %v", file, err)
		return report
	}

	outputFile := filepath.Join(outputDir, filepath.Base(file))
	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		report.Fail(err.Error())
		r.log.Errorf("Failed to write %s: %v", outputFile, err)
		return report
	}

	r.log.Infof("Enhanced: %s", filepath.Base(file))
	return report
}
