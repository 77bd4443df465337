// Package jsonschema converts XSD facets into JSON Schema definitions and
// holds the catalog those definitions are merged from.
package jsonschema

import (
	"regexp"
	"strings"

	"github.com/bnlcnd/schema-enhancer/internal/domain"
)

// TranslatePattern converts a raw XSD regex facet into a JSON-Schema-ready
// pattern: anchored at both ends, with a top-level alternation wrapped in a
// group so the anchors bind to the disjunction as a whole. The output is
// logical regex text; string escaping for a serialization format is the
// serializer's job, never this function's.
//
// Translation is idempotent: a pattern that already carries both anchors is
// returned unchanged.
func TranslatePattern(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	// XSD regexes are implicitly anchored and never carry ^/$ themselves, so a
	// fully anchored input is an already-translated pattern.
	if strings.HasPrefix(raw, "^") && hasUnescapedSuffix(raw, '$') {
		if _, err := regexp.Compile(raw); err != nil {
			return "", &domain.InvalidPatternError{Pattern: raw, Err: err}
		}
		return raw, nil
	}

	body := raw
	if hasTopLevelAlternation(body) && !isFullySpannedGroup(body) {
		body = "(" + body + ")"
	}

	translated := "^" + body + "$"
	if _, err := regexp.Compile(translated); err != nil {
		return "", &domain.InvalidPatternError{Pattern: raw, Err: err}
	}
	return translated, nil
}

// hasTopLevelAlternation reports whether the pattern contains an unescaped |
// outside character classes and outside any group.
func hasTopLevelAlternation(pattern string) bool {
	depth := 0
	inClass := false
	escaped := false

	for _, r := range pattern {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case inClass:
			if r == ']' {
				inClass = false
			}
		case r == '[':
			inClass = true
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == '|' && depth == 0:
			return true
		}
	}
	return false
}

// isFullySpannedGroup reports whether the pattern is a single group enclosing
// the entire body, i.e. the paren opened at position 0 closes at the last
// position. A prefix/suffix check alone would wrongly accept "(a)|(b)".
func isFullySpannedGroup(pattern string) bool {
	if len(pattern) < 2 || pattern[0] != '(' || !hasUnescapedSuffix(pattern, ')') {
		return false
	}

	depth := 0
	inClass := false
	escaped := false

	for i, r := range pattern {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case inClass:
			if r == ']' {
				inClass = false
			}
		case r == '[':
			inClass = true
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth == 0 {
				return i == len(pattern)-1
			}
		}
	}
	return false
}

// hasUnescapedSuffix reports whether the pattern ends with suffix not preceded
// by an odd number of backslashes.
func hasUnescapedSuffix(pattern string, suffix byte) bool {
	if len(pattern) == 0 || pattern[len(pattern)-1] != suffix {
		return false
	}
	backslashes := 0
	for i := len(pattern) - 2; i >= 0 && pattern[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 0
}
