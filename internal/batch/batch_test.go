package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
	"github.com/bnlcnd/schema-enhancer/internal/jsonschema"
)

const minimalSpec = `openapi: 3.0.3
info:
  title: Order API
  version: "1.0"
paths: {}
components:
  schemas:
    Order:
      type: object
      properties:
        Date8:
          type: string
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFindSpecFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "api.yaml", minimalSpec)
	writeFile(t, dir, "other.yml", minimalSpec)
	writeFile(t, dir, "notes.yaml", "just: some unrelated data\n")
	writeFile(t, dir, "readme.txt", "openapi mentioned here but not yaml")

	files, err := FindSpecFiles(dir)
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "api.yaml"), files[0])
	assert.Equal(t, filepath.Join(dir, "other.yml"), files[1])
}

func TestRunner_Run(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "enhanced")
	writeFile(t, inputDir, "api.yaml", minimalSpec)

	catalog := jsonschema.NewCatalog()
	require.NoError(t, catalog.Add(&jsonschema.Definition{
		Name:    "Date8",
		Type:    "string",
		Pattern: `^\d{8}$`,
	}))

	log := logger.NewConsoleLogger(os.Stdout)
	runner := NewRunner(log, catalog, domain.Options{Strict: true}, 2)

	files, err := FindSpecFiles(inputDir)
	require.NoError(t, err)

	report, err := runner.Run(files, outputDir)
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Zero(t, report.Failed())
	assert.Equal(t, 1, report.Files[0].FieldsMatched)

	out, err := os.ReadFile(filepath.Join(outputDir, "api.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `^\d{8}$`)
	assert.Contains(t, string(out), "additionalProperties: false")
}

func TestRunner_IsolatesFailures(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "enhanced")
	writeFile(t, inputDir, "bad.yaml", "openapi: 3.0.3\npaths: [broken")
	writeFile(t, inputDir, "good.yaml", minimalSpec)

	log := logger.NewConsoleLogger(os.Stdout)
	runner := NewRunner(log, jsonschema.NewCatalog(), domain.Options{}, 1)

	files, err := FindSpecFiles(inputDir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	report, err := runner.Run(files, outputDir)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 1, report.Succeeded())

	_, err = os.Stat(filepath.Join(outputDir, "good.yaml"))
	assert.NoError(t, err, "the good file is still enhanced")
}
