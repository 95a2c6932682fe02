// Package treeregexp wraps a compiled regular expression with a tree view
// of its capture groups.
//
// The flat submatch indices returned by a regex engine lose the nesting
// structure of the pattern. This package rebuilds that structure: New scans
// the pattern text once and records where each capturing group sits
// relative to the others, and Match maps submatch indices onto a nested
// Group tree. Matching is delegated to github.com/coregx/coregex.
package treeregexp

import (
	"github.com/coregx/coregex"
)

// TreeRegexp is a compiled pattern paired with its capture group structure.
// It is immutable after New and safe for concurrent use.
type TreeRegexp struct {
	re      *coregex.Regex
	builder *GroupBuilder
}

// New compiles pattern and derives its capture group tree.
func New(pattern string) (*TreeRegexp, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	builder, err := parseGroups(pattern)
	if err != nil {
		return nil, err
	}
	return &TreeRegexp{re: re, builder: builder}, nil
}

// MustNew is like New but panics on error. Useful for patterns known to be
// valid at compile time.
func MustNew(pattern string) *TreeRegexp {
	t, err := New(pattern)
	if err != nil {
		panic("treeregexp: New(`" + pattern + "`): " + err.Error())
	}
	return t
}

// Pattern returns the source pattern.
func (t *TreeRegexp) Pattern() string {
	return t.re.String()
}

// Regexp returns the underlying compiled regex.
func (t *TreeRegexp) Regexp() *coregex.Regex {
	return t.re
}

// GroupBuilder returns the root of the capture group structure. The root
// represents the whole match; its children are the top-level capturing
// groups in opening-paren order.
func (t *TreeRegexp) GroupBuilder() *GroupBuilder {
	return t.builder
}

// Match runs the pattern against text and returns the capture group tree
// for the leftmost match, or nil if the pattern does not match.
func (t *TreeRegexp) Match(text string) *Group {
	indices := t.re.FindStringSubmatchIndex(text)
	if indices == nil {
		return nil
	}
	next := 0
	return t.builder.build(text, indices, &next)
}
