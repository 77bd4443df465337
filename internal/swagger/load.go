// Package swagger loads OpenAPI documents and merges catalog constraints
// into them.
package swagger

import (
	"fmt"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Load parses an OpenAPI document from disk, resolving internal references.
func Load(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	doc, err := loader.LoadFromFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI file: %w", err)
	}

	return doc, nil
}

// MarshalYAML serializes the document back to YAML. The document marshals to
// JSON first (kin-openapi's canonical form), then converts node-wise so key
// order from that form is preserved.
func MarshalYAML(doc *openapi3.T) ([]byte, error) {
	jsonBytes, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(jsonBytes, &node); err != nil {
		return nil, fmt.Errorf("failed to convert document to YAML: %w", err)
	}

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to render YAML: %w", err)
	}
	return out, nil
}
