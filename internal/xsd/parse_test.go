package xsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXSD = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:trading">
  <xs:simpleType name="date8">
    <xs:annotation>
      <xs:documentation>Date in YYYYMMDD format</xs:documentation>
    </xs:annotation>
    <xs:restriction base="xs:string">
      <xs:pattern value="\d{8}"/>
      <xs:length value="8"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:simpleType name="amt9v2n">
    <xs:restriction base="xs:decimal">
      <xs:totalDigits value="11"/>
      <xs:fractionDigits value="2"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:complexType name="OrdSet">
    <xs:sequence>
      <xs:element name="Date" type="date8"/>
      <xs:element name="Amt" type="amt9v2n" minOccurs="0"/>
    </xs:sequence>
    <xs:attribute name="version" type="xs:string" use="required"/>
  </xs:complexType>
  <xs:element name="Ord" type="OrdSet"/>
</xs:schema>`

func TestParse(t *testing.T) {
	schema, err := Parse([]byte(sampleXSD))
	require.NoError(t, err)

	assert.Equal(t, "urn:trading", schema.TargetNamespace)
	assert.Len(t, schema.SimpleTypes, 2)
	assert.Len(t, schema.ComplexTypes, 1)
	assert.Len(t, schema.Elements, 1)
}

func TestParse_SimpleTypeFacets(t *testing.T) {
	schema, err := Parse([]byte(sampleXSD))
	require.NoError(t, err)

	date8 := schema.SimpleType("date8")
	require.NotNil(t, date8)
	require.NotNil(t, date8.Restriction)
	assert.Equal(t, "xs:string", date8.Restriction.Base)
	require.Len(t, date8.Restriction.Patterns, 1)
	assert.Equal(t, `\d{8}`, date8.Restriction.Patterns[0].Value)
	require.NotNil(t, date8.Restriction.Length)
	assert.Equal(t, "8", date8.Restriction.Length.Value)
	assert.Contains(t, date8.Documentation(), "YYYYMMDD")

	amt := schema.SimpleType("amt9v2n")
	require.NotNil(t, amt)
	assert.Equal(t, "11", amt.Restriction.TotalDigits.Value)
	assert.Equal(t, "2", amt.Restriction.FractionDigits.Value)
}

func TestParse_ComplexType(t *testing.T) {
	schema, err := Parse([]byte(sampleXSD))
	require.NoError(t, err)

	ordSet := schema.ComplexType("OrdSet")
	require.NotNil(t, ordSet)
	require.NotNil(t, ordSet.Sequence)
	require.Len(t, ordSet.Sequence.Elements, 2)

	date := ordSet.Sequence.Elements[0]
	assert.Equal(t, "Date", date.Name)
	assert.Equal(t, "date8", date.Type)
	assert.True(t, date.Required())

	amt := ordSet.Sequence.Elements[1]
	assert.False(t, amt.Required())

	require.Len(t, ordSet.Attributes, 1)
	assert.Equal(t, "version", ordSet.Attributes[0].Name)
	assert.Equal(t, "required", ordSet.Attributes[0].Use)
}

func TestParse_GlobalElement(t *testing.T) {
	schema, err := Parse([]byte(sampleXSD))
	require.NoError(t, err)

	ord := schema.Element("Ord")
	require.NotNil(t, ord)
	assert.Equal(t, "OrdSet", ord.Type)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`not xml at all <<<`))
	require.Error(t, err)
}

func TestParse_MissingTypeName(t *testing.T) {
	const anonymous = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:simpleType>
    <xs:restriction base="xs:string"/>
  </xs:simpleType>
</xs:schema>`

	_, err := Parse([]byte(anonymous))
	require.Error(t, err)
}
