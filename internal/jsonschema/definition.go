package jsonschema

import (
	"bytes"
	"encoding/json"
)

// Definition is one generated JSON Schema type. Created once by the
// aggregator and immutable thereafter.
type Definition struct {
	Name        string
	Ref         string
	Type        string
	Enum        []string
	Pattern     string
	MinLength   *int
	MaxLength   *int
	Description string
	Properties  []Property
	Required    []string

	// Closed marks an object definition as additionalProperties: false.
	Closed bool
}

// Property is one named member of an object definition, held in xs:sequence
// order so generated output renders properties in source order.
type Property struct {
	Name string
	Ref  string
	Type string
}

// HasConstraints reports whether the definition carries anything worth
// injecting into a document property.
func (d *Definition) HasConstraints() bool {
	return d.Pattern != "" || len(d.Enum) > 0 || d.MinLength != nil || d.MaxLength != nil
}

// MarshalJSON renders the definition with a stable key order so generated
// documents diff cleanly between runs.
func (d *Definition) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	obj := newOrderedObject(&buf)

	if d.Ref != "" {
		obj.field("$ref", d.Ref)
		return obj.finish()
	}

	if d.Type != "" {
		obj.field("type", d.Type)
	}
	if len(d.Enum) > 0 {
		obj.field("enum", d.Enum)
	}
	if d.Pattern != "" {
		obj.field("pattern", d.Pattern)
	}
	if d.MinLength != nil {
		obj.field("minLength", *d.MinLength)
	}
	if d.MaxLength != nil {
		obj.field("maxLength", *d.MaxLength)
	}
	if d.Description != "" {
		obj.field("description", d.Description)
	}
	if len(d.Properties) > 0 {
		props, err := marshalProperties(d.Properties)
		if err != nil {
			return nil, err
		}
		obj.rawField("properties", props)
	}
	if len(d.Required) > 0 {
		obj.field("required", d.Required)
	}
	if d.Closed {
		obj.field("additionalProperties", false)
	}

	return obj.finish()
}

func marshalProperties(props []Property) ([]byte, error) {
	var buf bytes.Buffer
	obj := newOrderedObject(&buf)
	for _, p := range props {
		if p.Ref != "" {
			obj.field(p.Name, map[string]string{"$ref": p.Ref})
		} else {
			obj.field(p.Name, map[string]string{"type": p.Type})
		}
	}
	return obj.finish()
}

// orderedObject writes a JSON object with fields in insertion order.
// encoding/json alone cannot do this for maps, and key order is part of the
// generated artifact's contract.
type orderedObject struct {
	buf   *bytes.Buffer
	err   error
	first bool
}

func newOrderedObject(buf *bytes.Buffer) *orderedObject {
	buf.WriteByte('{')
	return &orderedObject{buf: buf, first: true}
}

func (o *orderedObject) field(name string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		if o.err == nil {
			o.err = err
		}
		return
	}
	o.rawField(name, raw)
}

func (o *orderedObject) rawField(name string, raw []byte) {
	if o.err != nil {
		return
	}
	if !o.first {
		o.buf.WriteByte(',')
	}
	o.first = false

	key, err := json.Marshal(name)
	if err != nil {
		o.err = err
		return
	}
	o.buf.Write(key)
	o.buf.WriteByte(':')
	o.buf.Write(raw)
}

func (o *orderedObject) finish() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	o.buf.WriteByte('}')
	return o.buf.Bytes(), nil
}
