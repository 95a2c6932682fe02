package treeregexp

import (
	"errors"
	"fmt"
)

// ErrUnbalancedGroup indicates a pattern whose parentheses do not pair up.
// New reports it wrapped in a ParseError; it should not occur for patterns
// the engine itself accepted.
var ErrUnbalancedGroup = errors.New("unbalanced group in pattern")

// ParseError wraps a failure to derive the group structure of a pattern.
type ParseError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("treeregexp: cannot parse groups of %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// GroupBuilder records the position of one capturing group relative to the
// others. The tree mirrors the nesting of capturing groups in the pattern;
// non-capturing groups are transparent (their capturing children attach to
// the nearest capturing ancestor).
type GroupBuilder struct {
	children []*GroupBuilder
}

// Children returns the direct capturing sub-groups in opening-paren order.
func (b *GroupBuilder) Children() []*GroupBuilder {
	return b.children
}

// build maps flat submatch index pairs onto a Group tree. Capture groups
// are numbered by opening paren, which is exactly a preorder walk of the
// builder tree, so a single advancing cursor assigns every index pair.
func (b *GroupBuilder) build(text string, indices []int, next *int) *Group {
	i := *next
	*next = i + 1
	g := &Group{start: indices[2*i], end: indices[2*i+1]}
	if g.start >= 0 {
		g.value = text[g.start:g.end]
		g.matched = true
	}
	g.children = make([]*Group, 0, len(b.children))
	for _, child := range b.children {
		g.children = append(g.children, child.build(text, indices, next))
	}
	return g
}

// parseGroups scans pattern text and builds the capturing group tree.
// A '(' opens a capturing group unless followed by '?', except for the
// named form '(?P<'. Parens inside character classes or escaped with a
// backslash are literal.
func parseGroups(pattern string) (*GroupBuilder, error) {
	root := &GroupBuilder{}
	// stack entries: the enclosing builder for capturing groups, nil for
	// non-capturing groups (children fall through to the last non-nil).
	stack := []*GroupBuilder{root}
	capturing := []*GroupBuilder{root}

	runes := []rune(pattern)
	escaped := false
	inClass := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case r == '\\':
			escaped = true
		case inClass:
			if r == ']' {
				inClass = false
			}
		case r == '[':
			inClass = true
		case r == '(':
			if isNonCapturing(runes, i) {
				stack = append(stack, nil)
				continue
			}
			b := &GroupBuilder{}
			parent := capturing[len(capturing)-1]
			parent.children = append(parent.children, b)
			stack = append(stack, b)
			capturing = append(capturing, b)
		case r == ')':
			if len(stack) == 1 {
				return nil, &ParseError{Pattern: pattern, Err: ErrUnbalancedGroup}
			}
			if top := stack[len(stack)-1]; top != nil {
				capturing = capturing[:len(capturing)-1]
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 1 {
		return nil, &ParseError{Pattern: pattern, Err: ErrUnbalancedGroup}
	}
	return root, nil
}

// isNonCapturing reports whether the '(' at position i opens a group that
// does not capture: any '(?...' form except the named group '(?P<name>'.
func isNonCapturing(runes []rune, i int) bool {
	if i+1 >= len(runes) || runes[i+1] != '?' {
		return false
	}
	// (?P<name>...) captures; (?:...), flag groups and the rest do not.
	return i+2 >= len(runes) || runes[i+2] != 'P'
}
