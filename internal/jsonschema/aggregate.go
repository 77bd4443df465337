package jsonschema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
	"github.com/bnlcnd/schema-enhancer/internal/xsd"
)

// BuildCatalog walks the named simple types, complex types and global element
// declarations of a parsed XSD in document order and produces the catalog of
// generated definitions. Per-type problems are recorded and skipped; a
// duplicate top-level type name aborts the build.
func BuildCatalog(schema *xsd.Schema, opts MapOptions, report *domain.Report) (*Catalog, error) {
	catalog := NewCatalog()

	for i := range schema.SimpleTypes {
		st := &schema.SimpleTypes[i]
		def, skip := convertSimpleType(st, st.Name, opts, report)
		if skip {
			continue
		}
		if err := catalog.Add(def); err != nil {
			return nil, err
		}
	}

	for i := range schema.ComplexTypes {
		ct := &schema.ComplexTypes[i]
		if ct.Abstract {
			report.AddWarning(domain.WarnUnsupportedConstruct, ct.Name, "abstract complex type skipped")
			continue
		}
		def := convertComplexType(ct, report)
		if err := catalog.Add(def); err != nil {
			return nil, err
		}
	}

	for i := range schema.Elements {
		el := &schema.Elements[i]
		if def, ok := convertGlobalElement(el, opts, report); ok {
			if err := catalog.Add(def); err != nil {
				return nil, err
			}
		}
	}

	return catalog, nil
}

// convertSimpleType maps one simple type. skip is true when the type could
// not be converted; the reason is already on the report.
func convertSimpleType(st *xsd.SimpleType, name string, opts MapOptions, report *domain.Report) (def *Definition, skip bool) {
	if st.Union != nil || st.List != nil {
		report.AddWarning(domain.WarnUnsupportedConstruct, name, "union/list simple type skipped")
		return nil, true
	}

	jsonName := ConvertTypeName(name)
	fs := liftFacets(st)

	def, err := MapFacets(jsonName, fs, opts)
	if err != nil {
		// InvalidPatternError is fatal to this definition only.
		report.AddError(fmt.Sprintf("type %s: %v", name, err))
		return nil, true
	}
	return def, false
}

// liftFacets pulls restriction facets out of the XML model.
func liftFacets(st *xsd.SimpleType) FacetSet {
	fs := FacetSet{Documentation: st.Documentation()}
	r := st.Restriction
	if r == nil {
		fs.BaseType = "string"
		return fs
	}

	fs.BaseType = r.Base
	if len(r.Patterns) > 0 {
		// At most one pattern facet per restriction step in this subset.
		fs.Pattern = r.Patterns[0].Value
	}
	for _, e := range r.Enumerations {
		fs.Enumeration = append(fs.Enumeration, e.Value)
	}
	fs.MinLength = facetInt(r.MinLength)
	fs.MaxLength = facetInt(r.MaxLength)
	fs.Length = facetInt(r.Length)
	fs.TotalDigits = facetInt(r.TotalDigits)
	fs.FractionDigits = facetInt(r.FractionDigits)
	if r.WhiteSpace != nil {
		fs.WhiteSpace = r.WhiteSpace.Value
	}
	return fs
}

func facetInt(f *xsd.Facet) *int {
	if f == nil {
		return nil
	}
	n, err := strconv.Atoi(f.Value)
	if err != nil {
		return nil
	}
	return &n
}

// convertComplexType maps a complex type to an object definition with
// properties in declared sequence order.
func convertComplexType(ct *xsd.ComplexType, report *domain.Report) *Definition {
	def := &Definition{
		Name:   ConvertTypeName(ct.Name),
		Type:   "object",
		Closed: true,
	}
	if ct.Annotation != nil && len(ct.Annotation.Documentation) > 0 {
		def.Description = strings.TrimSpace(ct.Annotation.Documentation[0])
	}

	elements := sequenceElements(ct)
	if ct.Sequence != nil && len(ct.Sequence.Any) > 0 {
		report.AddWarning(domain.WarnUnsupportedConstruct, ct.Name, "xs:any wildcard skipped")
	}

	for i := range elements {
		el := &elements[i]
		if el.SubstitutionGroup != "" || el.Abstract {
			report.AddWarning(domain.WarnUnsupportedConstruct, el.Name, "substitution group member skipped")
			continue
		}
		def.Properties = append(def.Properties, elementProperty(el))
		if el.Required() {
			def.Required = append(def.Required, el.Name)
		}
	}

	for i := range ct.Attributes {
		attr := &ct.Attributes[i]
		prop := Property{Name: attr.Name, Type: "string"}
		if attr.Type != "" {
			prop.Type = ""
			prop.Ref = definitionRef(attr.Type)
		}
		def.Properties = append(def.Properties, prop)
		if attr.Use == "required" {
			def.Required = append(def.Required, attr.Name)
		}
	}

	return def
}

// sequenceElements returns the member elements of whichever compositor the
// complex type uses, preserving declared order.
func sequenceElements(ct *xsd.ComplexType) []xsd.Element {
	switch {
	case ct.Sequence != nil:
		return ct.Sequence.Elements
	case ct.All != nil:
		return ct.All.Elements
	case ct.Choice != nil:
		return ct.Choice.Elements
	default:
		return nil
	}
}

func elementProperty(el *xsd.Element) Property {
	if el.Type != "" {
		return Property{Name: el.Name, Ref: definitionRef(el.Type)}
	}
	return Property{Name: el.Name, Type: "string"}
}

// convertGlobalElement maps a top-level element declaration: a named type
// becomes a reference definition, an inline simple type is mapped directly.
func convertGlobalElement(el *xsd.Element, opts MapOptions, report *domain.Report) (*Definition, bool) {
	if el.Name == "" {
		return nil, false
	}
	if el.SubstitutionGroup != "" || el.Abstract {
		report.AddWarning(domain.WarnUnsupportedConstruct, el.Name, "substitution group head skipped")
		return nil, false
	}

	jsonName := ConvertTypeName(el.Name)

	if el.Type != "" {
		return &Definition{Name: jsonName, Ref: definitionRef(el.Type)}, true
	}
	if el.SimpleType != nil {
		def, skip := convertSimpleType(el.SimpleType, el.Name, opts, report)
		if skip {
			return nil, false
		}
		def.Name = jsonName
		return def, true
	}
	if el.ComplexType != nil {
		def := convertComplexType(el.ComplexType, report)
		def.Name = jsonName
		return def, true
	}
	return nil, false
}

func definitionRef(typeName string) string {
	return "#/definitions/" + ConvertTypeName(typeName)
}

// typeNameTable holds legacy XSD type names whose generated names are fixed
// by convention rather than derivable by case conversion.
var typeNameTable = map[string]string{
	"string2-20":  "String2To20",
	"string3-5":   "String3To5",
	"string5-7":   "String5To7",
	"string2-80":  "String2To80",
	"alpha3-4":    "Alpha3To4",
	"alphanum1-5": "AlphaNum1To5",
	"amt9v2n":     "Amt9V2N",
	"percent2v3":  "Percent2V3",
	"percent3v2":  "Percent3V2",
	"value14":     "Value14",
	"date8":       "Date8",
	"time6":       "Time6",
	"integer3":    "Integer3",
	"integer5":    "Integer5",
	"length4":     "Length4",
	"sintype":     "SINType",
	"yes1":        "Yes1",
	"yesno1":      "YesNo1",
}

var wordSplit = regexp.MustCompile(`[_\-\s]+`)

// ConvertTypeName normalizes an XSD type name to the generated PascalCase
// convention, e.g. "string3-5" becomes "String3To5".
func ConvertTypeName(name string) string {
	if name == "" {
		return "UnknownType"
	}
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	if mapped, ok := typeNameTable[strings.ToLower(name)]; ok {
		return mapped
	}

	words := wordSplit.Split(name, -1)
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}
