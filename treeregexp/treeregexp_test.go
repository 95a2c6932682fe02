package treeregexp

import (
	"errors"
	"testing"
)

// shape flattens a builder tree into preorder child counts for easy
// comparison.
func shape(b *GroupBuilder) []int {
	counts := []int{len(b.children)}
	for _, c := range b.children {
		counts = append(counts, shape(c)...)
	}
	return counts
}

// TestGroupStructure tests which parens count as capturing groups.
func TestGroupStructure(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []int // preorder child counts, root first
	}{
		{"single group", `^I have (-?\d+) cup(?:s)?$`, []int{1, 0}},
		{"sibling groups", `(a)(b)`, []int{2, 0, 0}},
		{"nested groups", `(a(b))(c)`, []int{2, 1, 0, 0}},
		{"non-capturing wrapper", `(?:(a)|(b))`, []int{2, 0, 0}},
		{"alternative patterns of one parameter", `((?:"([^"]*)")|(?:'([^']*)'))`, []int{1, 2, 0, 0}},
		{"named group captures", `(?P<year>\d{4})`, []int{1, 0}},
		{"flag group does not capture", `(?i:a)`, []int{0}},
		{"escaped paren is literal", `\(x\)`, []int{0}},
		{"paren in class is literal", `[(](a)[)]`, []int{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.pattern)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.pattern, err)
			}
			got := shape(tr.GroupBuilder())
			if len(got) != len(tt.want) {
				t.Fatalf("shape = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("shape = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

// TestMatch tests mapping submatch indices onto the group tree.
func TestMatch(t *testing.T) {
	tr := MustNew(`^(a+)(?:-)(b(c))?$`)

	t.Run("all groups participate", func(t *testing.T) {
		g := tr.Match("aa-bc")
		if g == nil {
			t.Fatal("Match returned nil, want a match")
		}
		if g.Value() != "aa-bc" {
			t.Errorf("root Value = %q, want %q", g.Value(), "aa-bc")
		}
		children := g.Children()
		if len(children) != 2 {
			t.Fatalf("root has %d children, want 2", len(children))
		}
		if children[0].Value() != "aa" {
			t.Errorf("group 1 Value = %q, want %q", children[0].Value(), "aa")
		}
		if children[1].Value() != "bc" {
			t.Errorf("group 2 Value = %q, want %q", children[1].Value(), "bc")
		}
		nested := children[1].Children()
		if len(nested) != 1 || nested[0].Value() != "c" {
			t.Errorf("nested groups = %v, want one group capturing %q", nested, "c")
		}
	})

	t.Run("optional group absent", func(t *testing.T) {
		g := tr.Match("aa-")
		if g == nil {
			t.Fatal("Match returned nil, want a match")
		}
		children := g.Children()
		if children[1].Matched() {
			t.Error("absent optional group reports Matched() = true")
		}
		if children[1].Start() != -1 {
			t.Errorf("absent group Start = %d, want -1", children[1].Start())
		}
	})

	t.Run("no match", func(t *testing.T) {
		if g := tr.Match("xyz"); g != nil {
			t.Errorf("Match = %v, want nil", g)
		}
	})
}

// TestNewErrors tests rejection of invalid patterns.
func TestNewErrors(t *testing.T) {
	if _, err := New(`(a`); err == nil {
		t.Error("New(`(a`) succeeded, want error")
	}
}

// TestParseGroupsUnbalanced tests the group scanner's own balance check.
func TestParseGroupsUnbalanced(t *testing.T) {
	_, err := parseGroups(`a)b`)
	if !errors.Is(err, ErrUnbalancedGroup) {
		t.Errorf("parseGroups error = %v, want ErrUnbalancedGroup", err)
	}
}
