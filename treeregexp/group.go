package treeregexp

// Group is the match result of one capturing group. The root group of a
// match covers the whole matched text; Children follow the nesting of
// capturing groups in the pattern, in opening-paren order.
type Group struct {
	value    string
	start    int
	end      int
	matched  bool
	children []*Group
}

// Value returns the matched text, or the empty string if the group did not
// participate in the match.
func (g *Group) Value() string {
	return g.value
}

// Start returns the byte offset of the group's match, or -1 if the group
// did not participate in the match.
func (g *Group) Start() int {
	return g.start
}

// End returns the byte offset just past the group's match, or -1 if the
// group did not participate in the match.
func (g *Group) End() int {
	return g.end
}

// Matched reports whether the group participated in the match. An optional
// group that was absent is unmatched even though its Value is empty.
func (g *Group) Matched() bool {
	return g.matched
}

// Children returns the nested capture groups in opening-paren order.
func (g *Group) Children() []*Group {
	return g.children
}
