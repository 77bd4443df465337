package jsonschema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument_Envelope(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Add(&Definition{Name: "Date8", Type: "string", Pattern: `^\d{8}$`}))

	out, err := WriteDocument(catalog, DocumentOptions{
		Draft: 7,
		ID:    "https://example.com/schema",
		Title: "Trading Schema",
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", doc["$schema"])
	assert.Equal(t, "https://example.com/schema", doc["$id"])
	assert.Equal(t, "Trading Schema", doc["title"])
	assert.Equal(t, false, doc["additionalProperties"])
}

func TestWriteDocument_DefinitionOrder(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Add(&Definition{Name: "Zebra", Type: "string"}))
	require.NoError(t, catalog.Add(&Definition{Name: "Apple", Type: "string"}))
	require.NoError(t, catalog.Add(&Definition{Name: "Mango", Type: "string"}))

	out, err := WriteDocument(catalog, DocumentOptions{})
	require.NoError(t, err)

	text := string(out)
	zebra := strings.Index(text, `"Zebra"`)
	apple := strings.Index(text, `"Apple"`)
	mango := strings.Index(text, `"Mango"`)
	require.NotEqual(t, -1, zebra)
	require.NotEqual(t, -1, apple)
	require.NotEqual(t, -1, mango)

	// Insertion order, not alphabetical order.
	assert.Less(t, zebra, apple)
	assert.Less(t, apple, mango)
}

func TestWriteDocument_RootProperty(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Add(&Definition{Name: "OrdSet", Type: "object", Closed: true}))

	out, err := WriteDocument(catalog, DocumentOptions{RootProperty: "OrdSet"})
	require.NoError(t, err)

	var doc struct {
		Properties map[string]struct {
			Ref string `json:"$ref"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "#/definitions/OrdSet", doc.Properties["OrdSet"].Ref)

	// A root property absent from the catalog is simply omitted.
	out, err = WriteDocument(catalog, DocumentOptions{RootProperty: "Missing"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"properties"`)
}

func TestWriteDocument_UnsupportedDraft(t *testing.T) {
	_, err := WriteDocument(NewCatalog(), DocumentOptions{Draft: 5})
	require.Error(t, err)
}

func TestLoadDocument_Roundtrip(t *testing.T) {
	catalog := NewCatalog()
	min3, max5 := 3, 5
	require.NoError(t, catalog.Add(&Definition{Name: "Zebra", Type: "string", Pattern: `^\d{8}$`}))
	require.NoError(t, catalog.Add(&Definition{
		Name:      "Apple",
		Type:      "string",
		Enum:      []string{"Y", "N"},
		MinLength: &min3,
		MaxLength: &max5,
	}))

	out, err := WriteDocument(catalog, DocumentOptions{Draft: 4})
	require.NoError(t, err)

	loaded, err := LoadDocument(out)
	require.NoError(t, err)

	assert.Equal(t, []string{"Zebra", "Apple"}, loaded.Names(), "file order must survive the roundtrip")

	apple := loaded.Get("Apple")
	require.NotNil(t, apple)
	assert.Equal(t, []string{"Y", "N"}, apple.Enum)
	require.NotNil(t, apple.MinLength)
	assert.Equal(t, 3, *apple.MinLength)
	assert.Equal(t, `^\d{8}$`, loaded.Get("Zebra").Pattern)
}

func TestLoadDocument_NoDefinitions(t *testing.T) {
	_, err := LoadDocument([]byte(`{"$schema": "http://json-schema.org/draft-07/schema#"}`))
	require.Error(t, err)
}

func TestDefinitionMarshal_KeyOrder(t *testing.T) {
	min1 := 1
	def := &Definition{
		Name:      "T",
		Type:      "string",
		Enum:      []string{"A"},
		Pattern:   "^A$",
		MinLength: &min1,
	}

	out, err := json.Marshal(def)
	require.NoError(t, err)

	text := string(out)
	assert.Less(t, strings.Index(text, `"type"`), strings.Index(text, `"enum"`))
	assert.Less(t, strings.Index(text, `"enum"`), strings.Index(text, `"pattern"`))
	assert.Less(t, strings.Index(text, `"pattern"`), strings.Index(text, `"minLength"`))
}
