package xsd

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Parse decodes XSD data and returns a Schema ready for aggregation.
func Parse(data []byte) (*Schema, error) {
	schema := new(Schema)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	if err := decoder.Decode(schema); err != nil {
		return nil, fmt.Errorf("failed to decode XSD: %w", err)
	}

	if err := schema.prepare(); err != nil {
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	return schema, nil
}

// prepare builds name indexes so type lookups do not scan slices.
func (s *Schema) prepare() error {
	s.elementIndex = make(map[string]*Element, len(s.Elements))
	s.complexIndex = make(map[string]*ComplexType, len(s.ComplexTypes))
	s.simpleIndex = make(map[string]*SimpleType, len(s.SimpleTypes))

	for i := range s.Elements {
		el := &s.Elements[i]
		if el.Name == "" && el.Ref == "" {
			return fmt.Errorf("top-level element missing name")
		}
		if el.Name != "" {
			s.elementIndex[el.Name] = el
		}
	}

	for i := range s.ComplexTypes {
		ct := &s.ComplexTypes[i]
		if ct.Name == "" {
			return fmt.Errorf("top-level complexType missing name")
		}
		s.complexIndex[ct.Name] = ct
	}

	for i := range s.SimpleTypes {
		st := &s.SimpleTypes[i]
		if st.Name == "" {
			return fmt.Errorf("top-level simpleType missing name")
		}
		s.simpleIndex[st.Name] = st
	}

	return nil
}

// SimpleType returns the named top-level simple type, or nil.
func (s *Schema) SimpleType(name string) *SimpleType {
	return s.simpleIndex[name]
}

// ComplexType returns the named top-level complex type, or nil.
func (s *Schema) ComplexType(name string) *ComplexType {
	return s.complexIndex[name]
}

// Element returns the named top-level element, or nil.
func (s *Schema) Element(name string) *Element {
	return s.elementIndex[name]
}
