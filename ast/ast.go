// Package ast defines the tokens and syntax tree nodes for step-definition
// expressions.
//
// The tree is built once by the parser and is read-only afterwards: the
// compiler walks it in a single depth-first pass and never mutates it.
// Node kinds form a closed set, so consumers can dispatch exhaustively on
// NodeType.
package ast

import "strings"

// TokenType identifies the kind of a lexical token.
type TokenType int

const (
	// StartOfLine and EndOfLine are synthetic tokens marking the
	// boundaries of the source. They carry no text.
	StartOfLine TokenType = iota
	EndOfLine

	// WhiteSpace is a contiguous run of whitespace characters.
	WhiteSpace

	// BeginOptional and EndOptional are the '(' and ')' delimiters.
	BeginOptional
	EndOptional

	// BeginParameter and EndParameter are the '{' and '}' delimiters.
	BeginParameter
	EndParameter

	// Alternation is the '/' separator between alternative texts.
	Alternation

	// Text is a contiguous run of literal characters, with any escape
	// sequences already resolved.
	Text
)

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case StartOfLine:
		return "start of line"
	case EndOfLine:
		return "end of line"
	case WhiteSpace:
		return "whitespace"
	case BeginOptional:
		return "begin optional"
	case EndOptional:
		return "end optional"
	case BeginParameter:
		return "begin parameter"
	case EndParameter:
		return "end parameter"
	case Alternation:
		return "alternation"
	case Text:
		return "text"
	}
	return "unknown"
}

// Symbol returns the source character for delimiter tokens, or an empty
// string for tokens without a fixed symbol.
func (t TokenType) Symbol() string {
	switch t {
	case BeginOptional:
		return "("
	case EndOptional:
		return ")"
	case BeginParameter:
		return "{"
	case EndParameter:
		return "}"
	case Alternation:
		return "/"
	}
	return ""
}

// Token is a single lexical token. Start and End are rune offsets into the
// original source, used for error reporting.
type Token struct {
	Text  string
	Type  TokenType
	Start int
	End   int
}

// NodeType identifies the kind of a syntax tree node.
type NodeType int

const (
	// TextNode is a literal text leaf.
	TextNode NodeType = iota

	// OptionalNode is a '(...)' segment that may be absent in matched text.
	OptionalNode

	// AlternationNode groups two or more alternative branches.
	AlternationNode

	// AlternativeNode is one branch of an alternation.
	AlternativeNode

	// ParameterNode is a '{name}' placeholder; its children hold the name.
	ParameterNode

	// ExpressionNode is the root of a parsed expression.
	ExpressionNode
)

// String returns a human-readable name for the node type.
func (t NodeType) String() string {
	switch t {
	case TextNode:
		return "text"
	case OptionalNode:
		return "optional"
	case AlternationNode:
		return "alternation"
	case AlternativeNode:
		return "alternative"
	case ParameterNode:
		return "parameter"
	case ExpressionNode:
		return "expression"
	}
	return "unknown"
}

// Node is one node of the syntax tree. Leaves carry their literal text in
// Token; interior nodes carry children in Nodes. Start and End are rune
// offsets into the original source.
type Node struct {
	Type  NodeType
	Nodes []Node
	Token string
	Start int
	End   int
}

// Text returns the literal text of the node: the token payload for leaves,
// or the concatenated text of all children for interior nodes. For a
// ParameterNode this yields the parameter name.
func (n Node) Text() string {
	if len(n.Nodes) == 0 {
		return n.Token
	}
	var b strings.Builder
	for _, c := range n.Nodes {
		b.WriteString(c.Text())
	}
	return b.String()
}
