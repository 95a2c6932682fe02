package stepexpr

import (
	"fmt"
	"strings"

	"github.com/coregx/stepexpr/ast"
)

// compiler rewrites a parsed expression tree into an anchored regex
// pattern. It walks the tree once, depth-first; parameter types accumulate
// in parameterTypes in the order their nodes are visited, which is their
// left-to-right order in the source. Any violation aborts the walk, so a
// failed compilation never leaks a partial pattern or type list.
type compiler struct {
	source         string
	registry       *ParameterTypeRegistry
	parameterTypes []*ParameterType
}

func (c *compiler) rewrite(node ast.Node) (string, error) {
	switch node.Type {
	case ast.TextNode:
		return escapeRegex(node.Text()), nil
	case ast.OptionalNode:
		return c.rewriteOptional(node)
	case ast.AlternationNode:
		return c.rewriteAlternation(node)
	case ast.AlternativeNode:
		return c.rewriteChildren(node, "", "", "")
	case ast.ParameterNode:
		return c.rewriteParameter(node)
	case ast.ExpressionNode:
		return c.rewriteChildren(node, "^", "", "$")
	}
	return "", fmt.Errorf("stepexpr: unknown node type %v", node.Type)
}

func (c *compiler) rewriteChildren(node ast.Node, prefix, sep, suffix string) (string, error) {
	var b strings.Builder
	b.WriteString(prefix)
	for i, child := range node.Nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		frag, err := c.rewrite(child)
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
	}
	b.WriteString(suffix)
	return b.String(), nil
}

func (c *compiler) rewriteOptional(node ast.Node) (string, error) {
	if hasParameterChild(node) {
		return "", &CompileError{Source: c.source, Err: ErrParameterInOptional}
	}
	if !hasTextChild(node) {
		return "", &CompileError{Source: c.source, Err: ErrEmptyOptional}
	}
	return c.rewriteChildren(node, "(?:", "", ")?")
}

func (c *compiler) rewriteAlternation(node ast.Node) (string, error) {
	for _, branch := range node.Nodes {
		if len(branch.Nodes) == 0 {
			return "", &CompileError{Source: c.source, Err: ErrEmptyAlternative}
		}
		if hasParameterChild(branch) {
			return "", &CompileError{Source: c.source, Err: ErrParameterInAlternative}
		}
		if !hasTextChild(branch) {
			return "", &CompileError{Source: c.source, Err: ErrOnlyOptionals}
		}
	}
	return c.rewriteChildren(node, "(?:", "|", ")")
}

// rewriteParameter emits exactly one capturing group per parameter node.
// A type with a single regexp compiles to (p); a type with several
// compiles to ((?:p1)|(?:p2)), still a single group.
func (c *compiler) rewriteParameter(node ast.Node) (string, error) {
	name := node.Text()
	if err := CheckParameterTypeName(name); err != nil {
		return "", err
	}
	pt := c.registry.LookupByName(name)
	if pt == nil {
		return "", &UndefinedParameterTypeError{Name: name, Source: c.source}
	}
	c.parameterTypes = append(c.parameterTypes, pt)

	regexps := pt.Regexps()
	if len(regexps) == 1 {
		return "(" + regexps[0] + ")", nil
	}
	var b strings.Builder
	b.WriteString("((?:")
	for i, re := range regexps {
		if i > 0 {
			b.WriteString(")|(?:")
		}
		b.WriteString(re)
	}
	b.WriteString("))")
	return b.String(), nil
}

// The validators below inspect a node's direct children only, not deeper
// descendants. The grammar keeps parameters and text at the level these
// checks look at, so a deep walk would not change the outcome.

func hasParameterChild(node ast.Node) bool {
	for _, c := range node.Nodes {
		if c.Type == ast.ParameterNode {
			return true
		}
	}
	return false
}

func hasTextChild(node ast.Node) bool {
	for _, c := range node.Nodes {
		if c.Type == ast.TextNode {
			return true
		}
	}
	return false
}
