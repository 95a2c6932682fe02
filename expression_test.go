package stepexpr

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
)

// TestMatch tests compiled expressions end to end.
func TestMatch(t *testing.T) {
	t.Run("single capture with optional", func(t *testing.T) {
		expr := MustCompile("I have {count} cup(s)", testRegistry(t))

		args, err := expr.Match("I have 2 cups")
		if err != nil {
			t.Fatalf("Match error = %v", err)
		}
		if len(args) != 1 {
			t.Fatalf("got %d arguments, want 1", len(args))
		}
		if got := args[0].Group().Value(); got != "2" {
			t.Errorf("captured %q, want %q", got, "2")
		}
		value, err := args[0].Value()
		if err != nil {
			t.Fatalf("Value error = %v", err)
		}
		if value != 2 {
			t.Errorf("Value = %v (%T), want 2 (int)", value, value)
		}
	})

	t.Run("optional absent", func(t *testing.T) {
		expr := MustCompile("I have {count} cup(s)", testRegistry(t))
		args, err := expr.Match("I have 2 cup")
		if err != nil || args == nil {
			t.Fatalf("Match = %v, %v; want a match", args, err)
		}
	})

	t.Run("no match", func(t *testing.T) {
		expr := MustCompile("I have {count} cup(s)", testRegistry(t))
		args, err := expr.Match("I have two cups")
		if err != nil {
			t.Fatalf("Match error = %v", err)
		}
		if args != nil {
			t.Errorf("Match = %v, want nil", args)
		}
	})

	t.Run("negative int", func(t *testing.T) {
		expr := MustCompile("a temperature of {int} degrees", testRegistry(t))
		args, err := expr.Match("a temperature of -17 degrees")
		if err != nil || len(args) != 1 {
			t.Fatalf("Match = %v, %v; want one argument", args, err)
		}
		value, _ := args[0].Value()
		if value != -17 {
			t.Errorf("Value = %v, want -17", value)
		}
	})

	t.Run("multiple parameters in order", func(t *testing.T) {
		expr := MustCompile("{word} ate {int} cakes", testRegistry(t))
		args, err := expr.Match("alice ate 3 cakes")
		if err != nil || len(args) != 2 {
			t.Fatalf("Match = %v, %v; want two arguments", args, err)
		}
		first, _ := args[0].Value()
		second, _ := args[1].Value()
		if first != "alice" || second != 3 {
			t.Errorf("values = %v, %v; want alice, 3", first, second)
		}
	})

	t.Run("quoted string parameter", func(t *testing.T) {
		expr := MustCompile("a book named {string}", testRegistry(t))
		for _, text := range []string{
			`a book named "The Hive"`,
			`a book named 'The Hive'`,
		} {
			args, err := expr.Match(text)
			if err != nil || len(args) != 1 {
				t.Fatalf("Match(%q) = %v, %v; want one argument", text, args, err)
			}
			value, _ := args[0].Value()
			if value != "The Hive" {
				t.Errorf("Match(%q) value = %q, want %q", text, value, "The Hive")
			}
		}
	})

	t.Run("metacharacters match literally", func(t *testing.T) {
		expr := MustCompile(`mr.smith pays $5 \(gross\)`, testRegistry(t))
		args, err := expr.Match("mr.smith pays $5 (gross)")
		if err != nil || args == nil {
			t.Fatalf("Match = %v, %v; want a match", args, err)
		}
		if args, _ := expr.Match("mrXsmith pays $5 (gross)"); args != nil {
			t.Error("'.' matched a non-literal character")
		}
	})

	t.Run("alternation", func(t *testing.T) {
		expr := MustCompile("mouse/rat attacks", testRegistry(t))
		for text, want := range map[string]bool{
			"mouse attacks": true,
			"rat attacks":   true,
			"cat attacks":   false,
		} {
			args, err := expr.Match(text)
			if err != nil {
				t.Fatalf("Match(%q) error = %v", text, err)
			}
			if (args != nil) != want {
				t.Errorf("Match(%q) = %v, want match=%v", text, args, want)
			}
		}
	})
}

// TestMatchTypeHints tests per-call specialization of anonymous types.
func TestMatchTypeHints(t *testing.T) {
	registry := NewParameterTypeRegistry()
	expr := MustCompile("{}", registry)

	t.Run("defaults to string", func(t *testing.T) {
		args, err := expr.Match("42")
		if err != nil || len(args) != 1 {
			t.Fatalf("Match = %v, %v; want one argument", args, err)
		}
		value, err := args[0].Value()
		if err != nil {
			t.Fatalf("Value error = %v", err)
		}
		if value != "42" {
			t.Errorf("Value = %v (%T), want \"42\" (string)", value, value)
		}
	})

	t.Run("hint picks the target type", func(t *testing.T) {
		args, err := expr.Match("42", intType)
		if err != nil || len(args) != 1 {
			t.Fatalf("Match = %v, %v; want one argument", args, err)
		}
		value, err := args[0].Value()
		if err != nil {
			t.Fatalf("Value error = %v", err)
		}
		if value != 42 {
			t.Errorf("Value = %v (%T), want 42 (int)", value, value)
		}
		if got := args[0].ParameterType(); got.IsAnonymous() {
			t.Error("resolved type is still anonymous")
		}
	})

	t.Run("compiled list never mutates", func(t *testing.T) {
		if _, err := expr.Match("42", intType); err != nil {
			t.Fatalf("Match error = %v", err)
		}
		if !expr.ParameterTypes()[0].IsAnonymous() {
			t.Error("compiled parameter type lost its anonymity after a hinted match")
		}
	})

	t.Run("hints do not affect concrete types", func(t *testing.T) {
		concrete := MustCompile("{int}", registry)
		args, err := concrete.Match("42", reflect.TypeOf(float64(0)))
		if err != nil || len(args) != 1 {
			t.Fatalf("Match = %v, %v; want one argument", args, err)
		}
		value, _ := args[0].Value()
		if value != 42 {
			t.Errorf("Value = %v (%T), want 42 (int)", value, value)
		}
	})
}

// TestConcurrentMatch tests that concurrent matches on one Expression with
// different type hints resolve independently.
func TestConcurrentMatch(t *testing.T) {
	expr := MustCompile("{} cups", NewParameterTypeRegistry())

	const numGoroutines = 50
	const numIterations = 200

	var wg sync.WaitGroup
	var mismatches atomic.Int64

	for i := 0; i < numGoroutines; i++ {
		wantInt := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				var args []*Argument
				var err error
				if wantInt {
					args, err = expr.Match("7 cups", intType)
				} else {
					args, err = expr.Match("7 cups")
				}
				if err != nil || len(args) != 1 {
					mismatches.Add(1)
					continue
				}
				value, err := args[0].Value()
				if err != nil {
					mismatches.Add(1)
					continue
				}
				if wantInt && value != 7 {
					mismatches.Add(1)
				}
				if !wantInt && value != "7" {
					mismatches.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	if n := mismatches.Load(); n != 0 {
		t.Errorf("%d concurrent matches resolved the wrong type", n)
	}
}
