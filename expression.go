// Package stepexpr compiles step-definition expressions into anchored
// regular expressions.
//
// A step-definition expression is literal text plus three constructs:
//
//	I have {int} cup(s) of tea/coffee
//
//	{int}        a typed parameter, captured and transformed to a value
//	(s)          an optional segment
//	tea/coffee   an alternation between literal texts
//
// Compile rewrites an expression into a single anchored regex pattern and
// records, in source order, the parameter types a successful match will
// bind:
//
//	registry := stepexpr.NewParameterTypeRegistry()
//	expr, err := stepexpr.Compile("I have {int} cup(s)", registry)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	args, _ := expr.Match("I have 2 cups")
//	// args[0].Value() == 2
//
// A compiled Expression is immutable and safe to share across any number
// of concurrent Match calls. Regex execution is delegated to
// github.com/coregx/coregex.
package stepexpr

import (
	"reflect"

	"github.com/coregx/coregex"

	"github.com/coregx/stepexpr/parser"
	"github.com/coregx/stepexpr/treeregexp"
)

// Expression is a compiled step-definition expression: the anchored regex
// pattern plus the ordered parameter types its capture groups bind.
type Expression struct {
	source         string
	tree           *treeregexp.TreeRegexp
	parameterTypes []*ParameterType
	registry       *ParameterTypeRegistry
}

// Compile parses and rewrites a step-definition expression.
//
// Every parameter name in the expression must be registered in registry.
// Compilation fails on grammar errors, on structural violations (a
// parameter inside an optional or an alternation branch, an empty
// alternation branch, an optional or branch without literal text) and on
// unregistered parameter names. A failed compilation returns no partial
// result.
func Compile(source string, registry *ParameterTypeRegistry) (*Expression, error) {
	node, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	c := &compiler{source: source, registry: registry}
	pattern, err := c.rewrite(node)
	if err != nil {
		return nil, err
	}
	tree, err := treeregexp.New(pattern)
	if err != nil {
		return nil, err
	}
	if got := len(tree.GroupBuilder().Children()); got != len(c.parameterTypes) {
		return nil, &GroupCountError{Source: source, Groups: got, Types: len(c.parameterTypes)}
	}
	return &Expression{
		source:         source,
		tree:           tree,
		parameterTypes: c.parameterTypes,
		registry:       registry,
	}, nil
}

// MustCompile is like Compile but panics on error. Useful for expressions
// known to be valid at compile time.
func MustCompile(source string, registry *ParameterTypeRegistry) *Expression {
	e, err := Compile(source, registry)
	if err != nil {
		panic("stepexpr: Compile(`" + source + "`): " + err.Error())
	}
	return e
}

// Source returns the original expression text.
func (e *Expression) Source() string {
	return e.source
}

// Pattern returns the anchored regex pattern the expression compiled to.
func (e *Expression) Pattern() string {
	return e.tree.Pattern()
}

// Regexp returns the compiled regex executing the pattern.
func (e *Expression) Regexp() *coregex.Regex {
	return e.tree.Regexp()
}

// ParameterTypes returns the expression's parameter types in the order
// their parameters appear in the source.
func (e *Expression) ParameterTypes() []*ParameterType {
	types := make([]*ParameterType, len(e.parameterTypes))
	copy(types, e.parameterTypes)
	return types
}

// Match runs the expression against text.
//
// It returns one Argument per parameter, in source order, or nil if the
// text does not match. Anonymous parameter types are specialized for this
// call using typeHints: the hint at position i applies to the parameter at
// position i, with string as the default. Hints never affect the compiled
// expression itself, so concurrent Match calls with different hints do not
// interfere.
func (e *Expression) Match(text string, typeHints ...reflect.Type) ([]*Argument, error) {
	group := e.tree.Match(text)
	if group == nil {
		return nil, nil
	}
	return buildArguments(group, e.resolveTypes(typeHints)), nil
}
