package ast

import "testing"

// TestNodeText tests text extraction from leaves and interior nodes.
func TestNodeText(t *testing.T) {
	leaf := Node{Type: TextNode, Token: "mice"}
	if got := leaf.Text(); got != "mice" {
		t.Errorf("leaf Text() = %q, want %q", got, "mice")
	}

	param := Node{Type: ParameterNode, Nodes: []Node{
		{Type: TextNode, Token: "order"},
		{Type: TextNode, Token: "-"},
		{Type: TextNode, Token: "id"},
	}}
	if got := param.Text(); got != "order-id" {
		t.Errorf("parameter Text() = %q, want %q", got, "order-id")
	}
}

// TestTokenTypeSymbol tests the delimiter symbols used in error messages.
func TestTokenTypeSymbol(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{BeginOptional, "("},
		{EndOptional, ")"},
		{BeginParameter, "{"},
		{EndParameter, "}"},
		{Alternation, "/"},
		{Text, ""},
		{WhiteSpace, ""},
	}
	for _, tt := range tests {
		if got := tt.typ.Symbol(); got != tt.want {
			t.Errorf("Symbol(%v) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
