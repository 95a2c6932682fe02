// Package parser turns step-definition expression source text into the
// syntax tree consumed by the compiler.
//
// The package implements two stages: Tokenize splits the source into
// tokens (resolving escape sequences), and Parse builds an ast.Node tree
// from the tokens. Both stages report authoring mistakes as typed errors
// carrying the offending source and position.
package parser

import (
	"fmt"

	"github.com/coregx/stepexpr/ast"
)

// CantEscapeError indicates a backslash before a character that has no
// special meaning. Only '{', '}', '(', ')', '/', '\' and whitespace can
// be escaped.
type CantEscapeError struct {
	Source string
	Pos    int
}

// Error implements the error interface
func (e *CantEscapeError) Error() string {
	return fmt.Sprintf(
		"only the characters '{', '}', '(', ')', '\\', '/' and whitespace can be escaped (at offset %d): %s",
		e.Pos, e.Source)
}

// EscapedEndOfLineError indicates a trailing backslash with nothing to
// escape.
type EscapedEndOfLineError struct {
	Source string
}

// Error implements the error interface
func (e *EscapedEndOfLineError) Error() string {
	return fmt.Sprintf("the end of line can not be escaped: %s", e.Source)
}

// MissingEndTokenError indicates an unterminated optional or parameter:
// a begin delimiter whose matching end delimiter never appears.
type MissingEndTokenError struct {
	Source string
	Begin  ast.TokenType
	End    ast.TokenType
	Pos    int
}

// Error implements the error interface
func (e *MissingEndTokenError) Error() string {
	return fmt.Sprintf("the '%s' at offset %d does not have a matching '%s': %s",
		e.Begin.Symbol(), e.Pos, e.End.Symbol(), e.Source)
}

// NestedParameterError indicates a '{' inside a parameter name.
type NestedParameterError struct {
	Source string
	Pos    int
}

// Error implements the error interface
func (e *NestedParameterError) Error() string {
	return fmt.Sprintf("a parameter may not contain another parameter (at offset %d): %s",
		e.Pos, e.Source)
}
