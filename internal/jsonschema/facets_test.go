package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func TestMapFacets_Enumeration(t *testing.T) {
	def, err := MapFacets("ActnCode", FacetSet{
		BaseType:    "xs:string",
		Enumeration: []string{"NEW", "CHG", "CAN", "CAX", "AOT", "REV"},
	}, MapOptions{})
	require.NoError(t, err)

	assert.Equal(t, "string", def.Type)
	assert.Equal(t, []string{"NEW", "CHG", "CAN", "CAX", "AOT", "REV"}, def.Enum, "enum order must be preserved")
}

func TestMapFacets_ExactLength(t *testing.T) {
	def, err := MapFacets("Length4", FacetSet{
		BaseType: "xs:string",
		Length:   intPtr(4),
	}, MapOptions{})
	require.NoError(t, err)

	require.NotNil(t, def.MinLength)
	require.NotNil(t, def.MaxLength)
	assert.Equal(t, 4, *def.MinLength)
	assert.Equal(t, 4, *def.MaxLength)
}

func TestMapFacets_LengthRange(t *testing.T) {
	def, err := MapFacets("String3To5", FacetSet{
		BaseType:  "xs:string",
		MinLength: intPtr(3),
		MaxLength: intPtr(5),
	}, MapOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, *def.MinLength)
	assert.Equal(t, 5, *def.MaxLength)
}

func TestMapFacets_PatternTranslated(t *testing.T) {
	def, err := MapFacets("Value14", FacetSet{
		BaseType: "xs:string",
		Pattern:  `\d{1,2}\.\d{3}|100.000`,
	}, MapOptions{})
	require.NoError(t, err)

	assert.Equal(t, `^(\d{1,2}\.\d{3}|100.000)$`, def.Pattern)
}

func TestMapFacets_InvalidPattern(t *testing.T) {
	_, err := MapFacets("Broken", FacetSet{
		BaseType: "xs:string",
		Pattern:  `[unclosed`,
	}, MapOptions{})
	require.Error(t, err)
}

func TestMapFacets_DigitFacetsForceStringType(t *testing.T) {
	def, err := MapFacets("Amt9V2N", FacetSet{
		BaseType:       "xs:decimal",
		TotalDigits:    intPtr(11),
		FractionDigits: intPtr(2),
	}, MapOptions{})
	require.NoError(t, err)

	// Leading zeros are significant in trading identifiers.
	assert.Equal(t, "string", def.Type)
	assert.Equal(t, `^-?\d{1,9}(\.\d{1,2})?$`, def.Pattern)
}

func TestMapFacets_AuthoredPatternWinsOverDigits(t *testing.T) {
	def, err := MapFacets("Percent2V3", FacetSet{
		BaseType:       "xs:decimal",
		Pattern:        `\d{1,2}\.\d{3}`,
		TotalDigits:    intPtr(5),
		FractionDigits: intPtr(3),
	}, MapOptions{})
	require.NoError(t, err)

	assert.Equal(t, "string", def.Type)
	assert.Equal(t, `^\d{1,2}\.\d{3}$`, def.Pattern)
}

func TestMapFacets_WhiteSpaceCollapse(t *testing.T) {
	def, err := MapFacets("Name", FacetSet{
		BaseType:   "xs:string",
		WhiteSpace: "collapse",
		MaxLength:  intPtr(80),
	}, MapOptions{})
	require.NoError(t, err)

	assert.Equal(t, `^\S(.*\S)?$`, def.Pattern)
}

func TestMapFacets_WhiteSpaceNeverOverridesAuthoredPattern(t *testing.T) {
	def, err := MapFacets("Code", FacetSet{
		BaseType:   "xs:string",
		Pattern:    `[A-Z]{2}`,
		WhiteSpace: "collapse",
	}, MapOptions{})
	require.NoError(t, err)

	assert.Equal(t, `^[A-Z]{2}$`, def.Pattern)
}

func TestMapFacets_Descriptions(t *testing.T) {
	fs := FacetSet{
		BaseType:  "xs:string",
		MinLength: intPtr(3),
		MaxLength: intPtr(5),
	}

	def, err := MapFacets("String3To5", fs, MapOptions{})
	require.NoError(t, err)
	assert.Equal(t, "String with length 3-5 characters", def.Description)

	// Clean mode never fabricates descriptions.
	def, err = MapFacets("String3To5", fs, MapOptions{CleanOutput: true})
	require.NoError(t, err)
	assert.Empty(t, def.Description)

	// An explicit xs:documentation annotation survives clean mode.
	fs.Documentation = "Fund identifier"
	def, err = MapFacets("String3To5", fs, MapOptions{CleanOutput: true})
	require.NoError(t, err)
	assert.Equal(t, "Fund identifier", def.Description)
}

func TestMapFacets_BaseTypes(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"xs:string", "string"},
		{"xs:int", "integer"},
		{"xs:integer", "integer"},
		{"xs:decimal", "number"},
		{"xs:boolean", "boolean"},
		{"customType", "string"},
	}

	for _, tt := range tests {
		def, err := MapFacets("T", FacetSet{BaseType: tt.base}, MapOptions{CleanOutput: true})
		require.NoError(t, err)
		assert.Equal(t, tt.want, def.Type, "base %s", tt.base)
	}
}
