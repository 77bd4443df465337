package jsonschema

import (
	"sort"
	"strings"
)

// MatchKind classifies how a query name matched a catalog key.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchCaseInsensitive
)

// String returns the kind name for reports.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchCaseInsensitive:
		return "case-insensitive"
	default:
		return "none"
	}
}

// MatchResult is the outcome of one catalog lookup.
type MatchResult struct {
	Key  string
	Kind MatchKind

	// Ambiguous is set when several keys case-fold to the query and the
	// lexicographically smallest was chosen.
	Ambiguous bool
}

// Resolver finds the best-matching catalog key for a document field name.
// Overrides are consulted first, then exact match, then a case-folded index
// built once at construction. Tie-breaking is deterministic: when multiple
// keys share a fold, the lexicographically smallest wins on every run.
type Resolver struct {
	catalog   *Catalog
	overrides map[string]string
	folded    map[string][]string
}

// NewResolver builds a resolver over a constructed catalog. The fold index is
// built eagerly; the catalog must not change afterwards.
func NewResolver(catalog *Catalog, overrides map[string]string) *Resolver {
	folded := make(map[string][]string, catalog.Len())
	for _, name := range catalog.Names() {
		key := strings.ToLower(name)
		folded[key] = append(folded[key], name)
	}
	for _, candidates := range folded {
		sort.Strings(candidates)
	}
	return &Resolver{catalog: catalog, overrides: overrides, folded: folded}
}

// Resolve maps a query name to a catalog key.
func (r *Resolver) Resolve(query string) MatchResult {
	if target, ok := r.overrides[query]; ok {
		if r.catalog.Get(target) != nil {
			return MatchResult{Key: target, Kind: MatchExact}
		}
	}

	if r.catalog.Get(query) != nil {
		return MatchResult{Key: query, Kind: MatchExact}
	}

	candidates := r.folded[strings.ToLower(query)]
	if len(candidates) == 0 {
		return MatchResult{Kind: MatchNone}
	}
	return MatchResult{
		Key:       candidates[0],
		Kind:      MatchCaseInsensitive,
		Ambiguous: len(candidates) > 1,
	}
}
