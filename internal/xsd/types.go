// Package xsd provides a struct model for XML Schema documents and a decoder
// for the subset of XSD used by REST-style trading APIs: simple types with
// restriction facets, complex types with sequences and attributes, and global
// element declarations.
package xsd

import "encoding/xml"

// Schema is the root xs:schema element. Slices preserve document order.
type Schema struct {
	XMLName            xml.Name      `xml:"schema"`
	TargetNamespace    string        `xml:"targetNamespace,attr"`
	ElementFormDefault string        `xml:"elementFormDefault,attr"`
	Imports            []Import      `xml:"import"`
	Includes           []Include     `xml:"include"`
	Elements           []Element     `xml:"element"`
	ComplexTypes       []ComplexType `xml:"complexType"`
	SimpleTypes        []SimpleType  `xml:"simpleType"`

	elementIndex map[string]*Element
	complexIndex map[string]*ComplexType
	simpleIndex  map[string]*SimpleType
}

// Import is an xs:import reference. Multi-file resolution is out of scope;
// locations are recorded so callers can surface them.
type Import struct {
	Namespace      string `xml:"namespace,attr"`
	SchemaLocation string `xml:"schemaLocation,attr"`
}

// Include is an xs:include reference (same namespace).
type Include struct {
	SchemaLocation string `xml:"schemaLocation,attr"`
}

// Element is an element declaration, top-level or inside a sequence.
type Element struct {
	Name              string       `xml:"name,attr"`
	Type              string       `xml:"type,attr"`
	Ref               string       `xml:"ref,attr"`
	MinOccurs         string       `xml:"minOccurs,attr"`
	MaxOccurs         string       `xml:"maxOccurs,attr"`
	Nillable          bool         `xml:"nillable,attr"`
	SubstitutionGroup string       `xml:"substitutionGroup,attr"`
	Abstract          bool         `xml:"abstract,attr"`
	Annotation        *Annotation  `xml:"annotation"`
	SimpleType        *SimpleType  `xml:"simpleType"`
	ComplexType       *ComplexType `xml:"complexType"`
}

// Required reports whether the element must occur (minOccurs absent or > 0).
func (e *Element) Required() bool {
	return e.MinOccurs != "0"
}

// SimpleType is an xs:simpleType definition.
type SimpleType struct {
	Name        string       `xml:"name,attr"`
	Annotation  *Annotation  `xml:"annotation"`
	Restriction *Restriction `xml:"restriction"`
	Union       *Union       `xml:"union"`
	List        *List        `xml:"list"`
}

// Documentation returns the first xs:documentation text, trimmed by the caller.
func (s *SimpleType) Documentation() string {
	if s.Annotation == nil || len(s.Annotation.Documentation) == 0 {
		return ""
	}
	return s.Annotation.Documentation[0]
}

// ComplexType is an xs:complexType definition.
type ComplexType struct {
	Name       string      `xml:"name,attr"`
	Abstract   bool        `xml:"abstract,attr"`
	Mixed      bool        `xml:"mixed,attr"`
	Annotation *Annotation `xml:"annotation"`
	Sequence   *Sequence   `xml:"sequence"`
	All        *All        `xml:"all"`
	Choice     *Choice     `xml:"choice"`
	Attributes []Attribute `xml:"attribute"`
}

// Sequence is an xs:sequence compositor; element order is significant.
type Sequence struct {
	Elements []Element `xml:"element"`
	Any      []Any     `xml:"any"`
}

// All is an xs:all compositor.
type All struct {
	Elements []Element `xml:"element"`
}

// Choice is an xs:choice compositor.
type Choice struct {
	Elements []Element `xml:"element"`
}

// Any is an xs:any wildcard, which this tool does not convert.
type Any struct {
	Namespace       string `xml:"namespace,attr"`
	ProcessContents string `xml:"processContents,attr"`
}

// Attribute is an xs:attribute declaration on a complex type.
type Attribute struct {
	Name       string      `xml:"name,attr"`
	Type       string      `xml:"type,attr"`
	Use        string      `xml:"use,attr"`
	Annotation *Annotation `xml:"annotation"`
	SimpleType *SimpleType `xml:"simpleType"`
}

// Restriction holds the facets of a simple type restriction.
type Restriction struct {
	Base           string  `xml:"base,attr"`
	Patterns       []Facet `xml:"pattern"`
	Enumerations   []Facet `xml:"enumeration"`
	MinLength      *Facet  `xml:"minLength"`
	MaxLength      *Facet  `xml:"maxLength"`
	Length         *Facet  `xml:"length"`
	TotalDigits    *Facet  `xml:"totalDigits"`
	FractionDigits *Facet  `xml:"fractionDigits"`
	WhiteSpace     *Facet  `xml:"whiteSpace"`
	MinInclusive   *Facet  `xml:"minInclusive"`
	MaxInclusive   *Facet  `xml:"maxInclusive"`
}

// Facet is a single restriction facet carrying a value attribute.
type Facet struct {
	Value string `xml:"value,attr"`
}

// Union is an xs:union of member types (unsupported construct).
type Union struct {
	MemberTypes string `xml:"memberTypes,attr"`
}

// List is an xs:list (unsupported construct).
type List struct {
	ItemType string `xml:"itemType,attr"`
}

// Annotation wraps xs:documentation text.
type Annotation struct {
	Documentation []string `xml:"documentation"`
}
