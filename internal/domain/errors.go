package domain

import "fmt"

// InvalidPatternError reports a malformed regex facet. It is fatal to the
// affected type definition only; conversion continues for other types.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern facet %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// DuplicateTypeNameError reports two top-level XSD types sharing a name.
// An ambiguous catalog is unsafe to merge from, so this aborts the run.
type DuplicateTypeNameError struct {
	Name string
}

func (e *DuplicateTypeNameError) Error() string {
	return fmt.Sprintf("duplicate type name %q in schema", e.Name)
}

// RefResolutionError reports a $ref whose target is missing from the document.
type RefResolutionError struct {
	Ref string
}

func (e *RefResolutionError) Error() string {
	return fmt.Sprintf("unresolvable $ref %q", e.Ref)
}
