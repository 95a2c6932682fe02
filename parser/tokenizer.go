package parser

import (
	"strings"
	"unicode"

	"github.com/coregx/stepexpr/ast"
)

type runKind int

const (
	runNone runKind = iota
	runText
	runSpace
)

// Tokenize splits expression source text into tokens.
//
// Contiguous literal characters collapse into a single Text token and
// contiguous whitespace into a single WhiteSpace token. A backslash escapes
// the following character, which must be one of '{', '}', '(', ')', '/',
// '\' or whitespace; the escaped character joins the surrounding text run.
// The returned slice always begins with a StartOfLine token and ends with
// an EndOfLine token.
//
// Example:
//
//	tokens, err := parser.Tokenize("I have {int} cup(s)")
func Tokenize(source string) ([]ast.Token, error) {
	runes := []rune(source)
	tokens := make([]ast.Token, 0, len(runes)/2+2)
	tokens = append(tokens, ast.Token{Type: ast.StartOfLine})

	var buf strings.Builder
	kind := runNone
	runStart := 0

	flush := func(end int) {
		if kind == runNone {
			return
		}
		tt := ast.Text
		if kind == runSpace {
			tt = ast.WhiteSpace
		}
		tokens = append(tokens, ast.Token{Text: buf.String(), Type: tt, Start: runStart, End: end})
		buf.Reset()
		kind = runNone
	}

	escaped := false
	for i, r := range runes {
		if escaped {
			escaped = false
			switch {
			case r == '(' || r == ')' || r == '{' || r == '}' || r == '/' || r == '\\':
			case unicode.IsSpace(r):
			default:
				return nil, &CantEscapeError{Source: source, Pos: i - 1}
			}
			// The escaped character is literal text; the run starts at
			// the backslash so error offsets stay accurate.
			if kind != runText {
				flush(i - 1)
				kind = runText
				runStart = i - 1
			}
			buf.WriteRune(r)
			continue
		}

		switch {
		case r == '\\':
			escaped = true
		case r == '(' || r == ')' || r == '{' || r == '}' || r == '/':
			flush(i)
			tokens = append(tokens, ast.Token{
				Text:  string(r),
				Type:  delimiterType(r),
				Start: i,
				End:   i + 1,
			})
		case unicode.IsSpace(r):
			if kind != runSpace {
				flush(i)
				kind = runSpace
				runStart = i
			}
			buf.WriteRune(r)
		default:
			if kind != runText {
				flush(i)
				kind = runText
				runStart = i
			}
			buf.WriteRune(r)
		}
	}
	if escaped {
		return nil, &EscapedEndOfLineError{Source: source}
	}
	flush(len(runes))
	tokens = append(tokens, ast.Token{Type: ast.EndOfLine, Start: len(runes), End: len(runes)})
	return tokens, nil
}

func delimiterType(r rune) ast.TokenType {
	switch r {
	case '(':
		return ast.BeginOptional
	case ')':
		return ast.EndOptional
	case '{':
		return ast.BeginParameter
	case '}':
		return ast.EndParameter
	}
	return ast.Alternation
}
