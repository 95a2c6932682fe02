package stepexpr

import (
	"errors"
	"fmt"
)

// Structural violations detected while rewriting an expression. Each is
// reported wrapped in a CompileError carrying the offending source.
var (
	// ErrParameterInOptional indicates a parameter inside an optional,
	// e.g. "(a {int})".
	ErrParameterInOptional = errors.New("parameter types cannot be optional")

	// ErrParameterInAlternative indicates a parameter inside an
	// alternation branch, e.g. "a/{int}b".
	ErrParameterInAlternative = errors.New("parameter types cannot be alternative")

	// ErrEmptyAlternative indicates an alternation branch with no content,
	// e.g. "a//b".
	ErrEmptyAlternative = errors.New("alternative may not be empty")

	// ErrEmptyOptional indicates an optional with no literal text, e.g. "()".
	ErrEmptyOptional = errors.New("optional may not be empty")

	// ErrOnlyOptionals indicates an alternation branch made up entirely
	// of optionals, e.g. "a/(b)".
	ErrOnlyOptionals = errors.New("alternative may not exclusively contain optionals")

	// ErrIllegalParameterName indicates a parameter name containing one of
	// the reserved characters '[', ']', '(', ')', '$', '.', '|', '?', '*', '+'.
	ErrIllegalParameterName = errors.New("illegal character in parameter name")

	// ErrDuplicateParameterType indicates a second registration under an
	// already taken name.
	ErrDuplicateParameterType = errors.New("parameter type already registered")
)

// CompileError reports a structural violation in an expression, with the
// source text that triggered it.
type CompileError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Source)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// UndefinedParameterTypeError reports a parameter name with no registry
// entry. This is an authoring error: the type must be registered before
// any expression referring to it is compiled.
type UndefinedParameterTypeError struct {
	Name   string
	Source string
}

// Error implements the error interface
func (e *UndefinedParameterTypeError) Error() string {
	return fmt.Sprintf("undefined parameter type {%s}: %s", e.Name, e.Source)
}

// GroupCountError reports a mismatch between the capture groups of a
// compiled expression and its parameter types. It indicates a parameter
// type whose own regexps introduce stray top-level capture groups.
type GroupCountError struct {
	Source string
	Groups int
	Types  int
}

// Error implements the error interface
func (e *GroupCountError) Error() string {
	return fmt.Sprintf("expression %q has %d top-level capture groups, but %d parameter types",
		e.Source, e.Groups, e.Types)
}
