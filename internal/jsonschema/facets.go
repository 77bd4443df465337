package jsonschema

import (
	"fmt"
	"strings"
)

// FacetSet is one XSD simple type's restrictions, already lifted out of the
// XML model. BaseType is the local name of the restriction base (string,
// integer, decimal, ...).
type FacetSet struct {
	BaseType       string
	Pattern        string
	Enumeration    []string
	MinLength      *int
	MaxLength      *int
	Length         *int
	TotalDigits    *int
	FractionDigits *int
	WhiteSpace     string
	Documentation  string
}

// MapOptions controls facet mapping output.
type MapOptions struct {
	// CleanOutput suppresses synthesized descriptions.
	CleanOutput bool
}

// collapsePattern rejects leading and trailing whitespace, matching the
// post-collapse value space of whiteSpace="collapse".
const collapsePattern = `^\S(.*\S)?$`

// MapFacets converts a facet set into a named definition. A malformed pattern
// facet returns an InvalidPatternError; the caller records it and continues
// with the remaining types.
func MapFacets(name string, fs FacetSet, opts MapOptions) (*Definition, error) {
	def := &Definition{
		Name: name,
		Type: jsonType(fs.BaseType),
	}

	// Numeric trading identifiers keep leading zeros, so digit-count facets
	// force a string type with a digit pattern instead of a numeric range.
	if fs.TotalDigits != nil && def.Type != "string" {
		def.Type = "string"
		if fs.Pattern == "" {
			def.Pattern = digitPattern(*fs.TotalDigits, fs.FractionDigits)
		}
	}

	if fs.Pattern != "" {
		pattern, err := TranslatePattern(fs.Pattern)
		if err != nil {
			return nil, err
		}
		def.Pattern = pattern
	}

	if len(fs.Enumeration) > 0 {
		def.Enum = append([]string(nil), fs.Enumeration...)
	}

	if fs.Length != nil {
		n := *fs.Length
		def.MinLength = &n
		m := *fs.Length
		def.MaxLength = &m
	} else {
		if fs.MinLength != nil {
			n := *fs.MinLength
			def.MinLength = &n
		}
		if fs.MaxLength != nil {
			n := *fs.MaxLength
			def.MaxLength = &n
		}
	}

	if fs.WhiteSpace == "collapse" && def.Type == "string" && def.Pattern == "" && len(def.Enum) == 0 {
		def.Pattern = collapsePattern
	}

	def.Description = describe(fs, opts)

	return def, nil
}

// describe returns the xs:documentation text when present. Outside clean
// mode a short description is synthesized from the facets themselves.
func describe(fs FacetSet, opts MapOptions) string {
	if doc := strings.TrimSpace(fs.Documentation); doc != "" {
		return doc
	}
	if opts.CleanOutput {
		return ""
	}

	var parts []string
	switch {
	case fs.Length != nil:
		parts = append(parts, fmt.Sprintf("String of exactly %d characters", *fs.Length))
	case fs.MinLength != nil && fs.MaxLength != nil:
		parts = append(parts, fmt.Sprintf("String with length %d-%d characters", *fs.MinLength, *fs.MaxLength))
	case fs.MaxLength != nil:
		parts = append(parts, fmt.Sprintf("String with maximum %d characters", *fs.MaxLength))
	}
	if fs.Pattern != "" {
		parts = append(parts, "with pattern validation")
	}
	if len(fs.Enumeration) > 0 {
		parts = append(parts, "Enumeration: "+strings.Join(fs.Enumeration, ", "))
	}
	return strings.Join(parts, " ")
}

// jsonType maps an XSD base type local name to a JSON Schema type.
func jsonType(base string) string {
	if i := strings.IndexByte(base, ':'); i >= 0 {
		base = base[i+1:]
	}
	switch base {
	case "int", "integer", "long", "short", "byte",
		"nonNegativeInteger", "positiveInteger", "unsignedInt", "unsignedLong":
		return "integer"
	case "decimal", "float", "double":
		return "number"
	case "boolean":
		return "boolean"
	default:
		return "string"
	}
}

// digitPattern constrains total and fractional digit counts for a numeric
// value carried as a string.
func digitPattern(total int, fraction *int) string {
	if fraction != nil && *fraction > 0 && *fraction < total {
		whole := total - *fraction
		return fmt.Sprintf(`^-?\d{1,%d}(\.\d{1,%d})?$`, whole, *fraction)
	}
	return fmt.Sprintf(`^-?\d{1,%d}$`, total)
}
