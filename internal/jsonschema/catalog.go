package jsonschema

import "github.com/bnlcnd/schema-enhancer/internal/domain"

// Catalog is the flat mapping of type name to definition produced from one
// XSD. Insertion order mirrors declaration order. The catalog is read-only
// after construction, so batch workers can share one instance without locking.
type Catalog struct {
	names []string
	defs  map[string]*Definition
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{defs: make(map[string]*Definition)}
}

// Add inserts a definition. Two top-level types sharing a name make the
// catalog ambiguous and unsafe to merge from, so that is a hard error.
func (c *Catalog) Add(def *Definition) error {
	if _, exists := c.defs[def.Name]; exists {
		return &domain.DuplicateTypeNameError{Name: def.Name}
	}
	c.names = append(c.names, def.Name)
	c.defs[def.Name] = def
	return nil
}

// Get returns the definition for an exact key, or nil.
func (c *Catalog) Get(name string) *Definition {
	return c.defs[name]
}

// Names returns the keys in insertion order. Callers must not mutate the
// returned slice.
func (c *Catalog) Names() []string {
	return c.names
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.names)
}
