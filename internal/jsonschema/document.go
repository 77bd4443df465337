package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Draft $schema URIs for the supported draft versions.
var draftURIs = map[int]string{
	4: "http://json-schema.org/draft-04/schema#",
	6: "http://json-schema.org/draft-06/schema#",
	7: "http://json-schema.org/draft-07/schema#",
}

// DefaultDraft is used when no draft version is configured.
const DefaultDraft = 7

// DocumentOptions configure the generated JSON Schema document envelope.
type DocumentOptions struct {
	Draft       int
	ID          string
	Title       string
	Description string

	// RootProperty names a definition exposed as the document's single root
	// property, when present in the catalog.
	RootProperty string
}

// WriteDocument serializes the catalog as a JSON Schema document with
// definitions in catalog insertion order.
func WriteDocument(catalog *Catalog, opts DocumentOptions) ([]byte, error) {
	draft := opts.Draft
	if draft == 0 {
		draft = DefaultDraft
	}
	uri, ok := draftURIs[draft]
	if !ok {
		return nil, fmt.Errorf("unsupported JSON Schema draft version %d", draft)
	}

	var buf bytes.Buffer
	obj := newOrderedObject(&buf)
	obj.field("$schema", uri)
	if opts.ID != "" {
		obj.field("$id", opts.ID)
	}
	if opts.Title != "" {
		obj.field("title", opts.Title)
	}
	if opts.Description != "" {
		obj.field("description", opts.Description)
	}
	obj.field("type", "object")
	obj.field("additionalProperties", false)

	defs, err := marshalDefinitions(catalog)
	if err != nil {
		return nil, err
	}
	obj.rawField("definitions", defs)

	if opts.RootProperty != "" && catalog.Get(opts.RootProperty) != nil {
		props, err := marshalProperties([]Property{{
			Name: opts.RootProperty,
			Ref:  "#/definitions/" + opts.RootProperty,
		}})
		if err != nil {
			return nil, err
		}
		obj.rawField("properties", props)
	}

	out, err := obj.finish()
	if err != nil {
		return nil, err
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, out, "", "  "); err != nil {
		return nil, err
	}
	indented.WriteByte('\n')
	return indented.Bytes(), nil
}

func marshalDefinitions(catalog *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	obj := newOrderedObject(&buf)
	for _, name := range catalog.Names() {
		raw, err := catalog.Get(name).MarshalJSON()
		if err != nil {
			return nil, err
		}
		obj.rawField(name, raw)
	}
	return obj.finish()
}

// LoadDocument reads a JSON Schema document previously written by
// WriteDocument (or the equivalent hand-authored shape) back into a catalog,
// preserving the file's definition order. Only the constraint keywords the
// merge engine consumes are retained.
func LoadDocument(data []byte) (*Catalog, error) {
	var doc struct {
		Definitions json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}
	if len(doc.Definitions) == 0 {
		return nil, fmt.Errorf("schema document has no definitions")
	}

	names, err := objectKeyOrder(doc.Definitions)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions order: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc.Definitions, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}

	catalog := NewCatalog()
	for _, name := range names {
		def, err := unmarshalDefinition(name, raw[name])
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", name, err)
		}
		if err := catalog.Add(def); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func unmarshalDefinition(name string, data json.RawMessage) (*Definition, error) {
	var d struct {
		Ref         string   `json:"$ref"`
		Type        string   `json:"type"`
		Enum        []string `json:"enum"`
		Pattern     string   `json:"pattern"`
		MinLength   *int     `json:"minLength"`
		MaxLength   *int     `json:"maxLength"`
		Description string   `json:"description"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &Definition{
		Name:        name,
		Ref:         d.Ref,
		Type:        d.Type,
		Enum:        d.Enum,
		Pattern:     d.Pattern,
		MinLength:   d.MinLength,
		MaxLength:   d.MaxLength,
		Description: d.Description,
	}, nil
}

// objectKeyOrder returns the top-level keys of a JSON object in file order.
// encoding/json maps drop ordering, so the token stream is walked directly.
func objectKeyOrder(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		keys = append(keys, key)

		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err == io.EOF {
			return fmt.Errorf("unexpected end of document")
		}
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
