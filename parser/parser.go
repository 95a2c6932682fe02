package parser

import "github.com/coregx/stepexpr/ast"

// Parse tokenizes source and builds its syntax tree.
//
// The grammar, informally:
//
//	expression  := ( alternation | optional | parameter | text )*
//	alternation := alternative ( '/' alternative )+   (bounded by whitespace)
//	alternative := ( optional | parameter | text )*
//	optional    := '(' ( optional | parameter | text )* ')'
//	parameter   := '{' text* '}'
//
// Stray ')' and '}' delimiters are literal text. A '/' inside an optional
// or a parameter is literal text. Alternation branches may parse empty;
// rejecting them is the compiler's job, not the parser's.
func Parse(source string) (ast.Node, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return ast.Node{}, err
	}
	p := &parser{source: source, tokens: tokens, pos: 1} // skip StartOfLine
	return p.parseExpression()
}

type parser struct {
	source string
	tokens []ast.Token
	pos    int
}

func (p *parser) parseExpression() (ast.Node, error) {
	var nodes []ast.Node

	// word collects the items since the last whitespace boundary; when a
	// '/' appears inside a word, the completed branches accumulate in
	// alternatives until the word ends.
	var word []ast.Node
	var alternatives [][]ast.Node
	altStart := 0

	closeWord := func(end int) {
		if alternatives == nil {
			nodes = append(nodes, word...)
			word = nil
			return
		}
		alternatives = append(alternatives, word)
		word = nil
		branches := make([]ast.Node, 0, len(alternatives))
		for _, alt := range alternatives {
			start, stop := altStart, end
			if len(alt) > 0 {
				start, stop = alt[0].Start, alt[len(alt)-1].End
			}
			branches = append(branches, ast.Node{
				Type:  ast.AlternativeNode,
				Nodes: alt,
				Start: start,
				End:   stop,
			})
		}
		nodes = append(nodes, ast.Node{
			Type:  ast.AlternationNode,
			Nodes: branches,
			Start: altStart,
			End:   end,
		})
		alternatives = nil
	}

	for {
		t := p.tokens[p.pos]
		switch t.Type {
		case ast.EndOfLine:
			closeWord(t.Start)
			return ast.Node{Type: ast.ExpressionNode, Nodes: nodes, Start: 0, End: t.End}, nil
		case ast.WhiteSpace:
			closeWord(t.Start)
			nodes = append(nodes, textLeaf(t))
			p.pos++
		case ast.Alternation:
			if alternatives == nil {
				altStart = t.Start
				if len(word) > 0 {
					altStart = word[0].Start
				}
			}
			alternatives = append(alternatives, word)
			word = nil
			p.pos++
		case ast.BeginOptional:
			n, err := p.parseOptional()
			if err != nil {
				return ast.Node{}, err
			}
			word = append(word, n)
		case ast.BeginParameter:
			n, err := p.parseParameter()
			if err != nil {
				return ast.Node{}, err
			}
			word = append(word, n)
		default: // Text and stray EndOptional / EndParameter
			word = append(word, textLeaf(t))
			p.pos++
		}
	}
}

func (p *parser) parseOptional() (ast.Node, error) {
	begin := p.tokens[p.pos]
	p.pos++
	var nodes []ast.Node
	for {
		t := p.tokens[p.pos]
		switch t.Type {
		case ast.EndOptional:
			p.pos++
			return ast.Node{Type: ast.OptionalNode, Nodes: nodes, Start: begin.Start, End: t.End}, nil
		case ast.BeginOptional:
			n, err := p.parseOptional()
			if err != nil {
				return ast.Node{}, err
			}
			nodes = append(nodes, n)
		case ast.BeginParameter:
			n, err := p.parseParameter()
			if err != nil {
				return ast.Node{}, err
			}
			nodes = append(nodes, n)
		case ast.EndOfLine:
			return ast.Node{}, &MissingEndTokenError{
				Source: p.source,
				Begin:  ast.BeginOptional,
				End:    ast.EndOptional,
				Pos:    begin.Start,
			}
		default: // text, whitespace, '/' and '}' are literal inside an optional
			nodes = append(nodes, textLeaf(t))
			p.pos++
		}
	}
}

func (p *parser) parseParameter() (ast.Node, error) {
	begin := p.tokens[p.pos]
	p.pos++
	var nodes []ast.Node
	for {
		t := p.tokens[p.pos]
		switch t.Type {
		case ast.EndParameter:
			p.pos++
			return ast.Node{Type: ast.ParameterNode, Nodes: nodes, Start: begin.Start, End: t.End}, nil
		case ast.BeginParameter:
			return ast.Node{}, &NestedParameterError{Source: p.source, Pos: t.Start}
		case ast.EndOfLine:
			return ast.Node{}, &MissingEndTokenError{
				Source: p.source,
				Begin:  ast.BeginParameter,
				End:    ast.EndParameter,
				Pos:    begin.Start,
			}
		default: // everything else is part of the name
			nodes = append(nodes, textLeaf(t))
			p.pos++
		}
	}
}

func textLeaf(t ast.Token) ast.Node {
	return ast.Node{Type: ast.TextNode, Token: t.Text, Start: t.Start, End: t.End}
}
