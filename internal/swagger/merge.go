package swagger

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
	"github.com/bnlcnd/schema-enhancer/internal/jsonschema"
)

// Merge injects catalog constraints into the document in place and returns
// the enhancement report. The merge is additive: existing type, format,
// description, example and externalDocs survive untouched, and a constraint
// already present with a different value wins over the catalog's.
func Merge(doc *openapi3.T, catalog *jsonschema.Catalog, opts domain.Options) *domain.Report {
	report := domain.NewReport("")
	m := &merger{
		resolver:  jsonschema.NewResolver(catalog, opts.FieldMappings),
		catalog:   catalog,
		opts:      opts,
		report:    report,
		visited:   make(map[*openapi3.Schema]bool),
		unmatched: make(map[string]bool),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for _, name := range sortedKeys(doc.Components.Schemas) {
			ref := doc.Components.Schemas[name]
			changed := m.enhanceNamed(name, ref)
			if m.walkRef(ref) {
				changed = true
			}
			if changed {
				report.SchemasEnhanced++
			}
		}
	}

	if doc.Paths != nil {
		pathMap := doc.Paths.Map()
		for _, path := range sortedKeys(pathMap) {
			m.walkPathItem(pathMap[path])
		}
	}

	return report
}

type merger struct {
	resolver  *jsonschema.Resolver
	catalog   *jsonschema.Catalog
	opts      domain.Options
	report    *domain.Report
	visited   map[*openapi3.Schema]bool
	unmatched map[string]bool
}

func (m *merger) walkPathItem(item *openapi3.PathItem) {
	if item == nil {
		return
	}
	ops := item.Operations()
	for _, method := range sortedKeys(ops) {
		op := ops[method]

		if op.RequestBody != nil && op.RequestBody.Value != nil {
			m.walkContent(op.RequestBody.Value.Content)
		}

		if op.Responses != nil {
			respMap := op.Responses.Map()
			for _, status := range sortedKeys(respMap) {
				resp := respMap[status]
				if resp != nil && resp.Value != nil {
					m.walkContent(resp.Value.Content)
				}
			}
		}
	}
}

func (m *merger) walkContent(content openapi3.Content) {
	for _, mediaType := range sortedKeys(content) {
		if media := content[mediaType]; media != nil {
			m.walkRef(media.Schema)
		}
	}
}

// walkRef follows one schema reference, entering each distinct target once
// per run so self-referential schemas terminate.
func (m *merger) walkRef(ref *openapi3.SchemaRef) bool {
	if ref == nil {
		return false
	}
	if ref.Value == nil {
		if ref.Ref != "" {
			m.report.Fail((&domain.RefResolutionError{Ref: ref.Ref}).Error())
		}
		return false
	}
	return m.walkSchema(ref.Value)
}

func (m *merger) walkSchema(s *openapi3.Schema) bool {
	if m.visited[s] {
		return false
	}
	m.visited[s] = true

	changed := false

	if len(s.Properties) > 0 {
		if m.opts.Strict && s.AdditionalProperties.Has == nil && s.AdditionalProperties.Schema == nil {
			s.AdditionalProperties.Has = openapi3.BoolPtr(false)
			changed = true
		}

		for _, propName := range sortedKeys(s.Properties) {
			prop := s.Properties[propName]
			if prop == nil {
				continue
			}
			if prop.Value != nil {
				if m.enhanceProperty(propName, prop.Value) {
					changed = true
				}
			}
			if m.walkRef(prop) {
				changed = true
			}
		}
	}

	if m.walkRef(s.Items) {
		changed = true
	}
	for _, sub := range s.AllOf {
		if m.walkRef(sub) {
			changed = true
		}
	}
	for _, sub := range s.AnyOf {
		if m.walkRef(sub) {
			changed = true
		}
	}
	for _, sub := range s.OneOf {
		if m.walkRef(sub) {
			changed = true
		}
	}
	if s.AdditionalProperties.Schema != nil {
		if m.walkRef(s.AdditionalProperties.Schema) {
			changed = true
		}
	}

	return changed
}

// enhanceNamed applies catalog constraints to a top-level component schema
// whose own name matches a catalog key (scalar schemas published as named
// components).
func (m *merger) enhanceNamed(name string, ref *openapi3.SchemaRef) bool {
	if ref == nil || ref.Value == nil || len(ref.Value.Properties) > 0 {
		return false
	}
	def := m.lookup(name)
	if def == nil {
		return false
	}
	return m.apply(name, def, ref.Value)
}

// enhanceProperty resolves one property name against the catalog and applies
// the matched definition.
func (m *merger) enhanceProperty(name string, s *openapi3.Schema) bool {
	def := m.lookup(name)
	if def == nil {
		return false
	}
	return m.apply(name, def, s)
}

// lookup resolves a field name to a constraint-bearing catalog definition,
// recording match bookkeeping on the report.
func (m *merger) lookup(name string) *jsonschema.Definition {
	result := m.resolver.Resolve(name)
	if result.Kind == jsonschema.MatchNone {
		if !m.unmatched[name] {
			m.unmatched[name] = true
			m.report.AddUnmatched(name)
		}
		return nil
	}
	if result.Ambiguous {
		m.report.AddWarning(domain.WarnAmbiguousMatch, name,
			fmt.Sprintf("multiple catalog keys fold to %q; using %q", name, result.Key))
	}

	def := m.catalog.Get(result.Key)
	if def == nil || !def.HasConstraints() {
		return nil
	}
	m.report.FieldsMatched++
	return def
}

// apply copies absent constraints from the definition onto the schema.
// Existing author intent wins: a differing constraint already present is left
// alone and noted.
func (m *merger) apply(field string, def *jsonschema.Definition, s *openapi3.Schema) bool {
	changed := false

	if def.Name == domain.TransactionTypeKey && m.opts.APITransactionType != "" {
		return m.narrowTransactionType(field, s)
	}

	if (s.Type == nil || len(s.Type.Slice()) == 0) && def.Type != "" && def.Type != "object" {
		s.Type = &openapi3.Types{def.Type}
		changed = true
	}

	if def.Pattern != "" {
		switch s.Pattern {
		case "":
			s.Pattern = def.Pattern
			changed = true
		case def.Pattern:
		default:
			m.report.AddConflict(field, "pattern", s.Pattern, def.Pattern)
		}
	}

	if len(def.Enum) > 0 {
		switch {
		case len(s.Enum) == 0:
			s.Enum = enumValues(def.Enum)
			changed = true
		case enumEqual(s.Enum, def.Enum):
		default:
			m.report.AddConflict(field, "enum", s.Enum, def.Enum)
		}
	}

	if def.MinLength != nil {
		want := uint64(*def.MinLength)
		switch s.MinLength {
		case 0:
			s.MinLength = want
			changed = true
		case want:
		default:
			m.report.AddConflict(field, "minLength", s.MinLength, want)
		}
	}

	if def.MaxLength != nil {
		want := uint64(*def.MaxLength)
		switch {
		case s.MaxLength == nil:
			s.MaxLength = &want
			changed = true
		case *s.MaxLength == want:
		default:
			m.report.AddConflict(field, "maxLength", *s.MaxLength, want)
		}
	}

	return changed
}

// narrowTransactionType restricts the shared transaction-type enumeration to
// the single literal of the configured API flavor, so a Buy-flavored API
// cannot accept Sell or Switch codes. Applying it twice is a no-op.
func (m *merger) narrowTransactionType(field string, s *openapi3.Schema) bool {
	literal := domain.TransactionTypeLiterals[m.opts.APITransactionType]
	if enumEqual(s.Enum, []string{literal}) {
		return false
	}
	if s.Type == nil || len(s.Type.Slice()) == 0 {
		s.Type = &openapi3.Types{"string"}
	}
	s.Enum = []any{literal}
	m.report.AddWarning(domain.WarnTransactionNarrowed, field,
		fmt.Sprintf("enum narrowed to %q for %s APIs", literal, m.opts.APITransactionType))
	return true
}

func enumValues(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func enumEqual(existing []any, want []string) bool {
	if len(existing) != len(want) {
		return false
	}
	for i, v := range existing {
		if fmt.Sprintf("%v", v) != want[i] {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
