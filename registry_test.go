package stepexpr

import (
	"errors"
	"math/big"
	"reflect"
	"testing"
)

func typeOf(v interface{}) reflect.Type {
	return reflect.TypeOf(v)
}

// TestBuiltinTypes tests the preinstalled registry entries.
func TestBuiltinTypes(t *testing.T) {
	registry := NewParameterTypeRegistry()

	for _, name := range []string{"int", "float", "word", "string", "biginteger", "bigdecimal", ""} {
		if registry.LookupByName(name) == nil {
			t.Errorf("LookupByName(%q) = nil, want a builtin type", name)
		}
	}

	if registry.LookupByName("no-such-type") != nil {
		t.Error("LookupByName returned a type for an unregistered name")
	}

	anon := registry.LookupByName("")
	if !anon.IsAnonymous() {
		t.Error("the {} type is not anonymous")
	}

	if n := len(registry.LookupByName("int").Regexps()); n != 1 {
		t.Errorf("{int} has %d regexps, want 1", n)
	}
	if n := len(registry.LookupByName("string").Regexps()); n != 2 {
		t.Errorf("{string} has %d regexps, want 2", n)
	}
}

// TestRegisterDuplicate tests rejection of name collisions.
func TestRegisterDuplicate(t *testing.T) {
	registry := NewParameterTypeRegistry()
	pt, err := NewParameterType("int", []string{`\d+`}, intType, func(v string) (interface{}, error) {
		return v, nil
	}, false, false)
	if err != nil {
		t.Fatalf("NewParameterType: %v", err)
	}
	if err := registry.Register(pt); !errors.Is(err, ErrDuplicateParameterType) {
		t.Errorf("Register duplicate error = %v, want ErrDuplicateParameterType", err)
	}
}

// TestBuiltinTransforms tests the value conversion of builtin types.
func TestBuiltinTransforms(t *testing.T) {
	registry := NewParameterTypeRegistry()

	tests := []struct {
		typeName string
		raw      string
		want     interface{}
	}{
		{"int", "42", 42},
		{"int", "-17", -17},
		{"float", "3.5", 3.5},
		{"float", "-.5", -0.5},
		{"word", "banana", "banana"},
		{"string", `"nice cup"`, "nice cup"},
		{"string", `'nice cup'`, "nice cup"},
		{"string", `"say \"hi\""`, `say "hi"`},
	}
	for _, tt := range tests {
		t.Run(tt.typeName+"/"+tt.raw, func(t *testing.T) {
			pt := registry.LookupByName(tt.typeName)
			got, err := pt.Transform(tt.raw)
			if err != nil {
				t.Fatalf("Transform(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Transform(%q) = %v (%T), want %v (%T)", tt.raw, got, got, tt.want, tt.want)
			}
		})
	}

	t.Run("biginteger", func(t *testing.T) {
		pt := registry.LookupByName("biginteger")
		got, err := pt.Transform("123456789012345678901234567890")
		if err != nil {
			t.Fatalf("Transform error = %v", err)
		}
		want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
		if got.(*big.Int).Cmp(want) != 0 {
			t.Errorf("Transform = %v, want %v", got, want)
		}
	})
}

// TestDefaultTransformer tests the strconv-based conversion used for
// anonymous type specialization.
func TestDefaultTransformer(t *testing.T) {
	transformer := NewParameterTypeRegistry().DefaultTransformer()

	tests := []struct {
		name   string
		value  string
		target interface{} // zero value of the target type
		want   interface{}
	}{
		{"string passthrough", "hello", "", "hello"},
		{"int", "42", int(0), 42},
		{"int64", "42", int64(0), int64(42)},
		{"float64", "1.25", float64(0), 1.25},
		{"bool", "true", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transformer(tt.value, typeOf(tt.target))
			if err != nil {
				t.Fatalf("transform error = %v", err)
			}
			if got != tt.want {
				t.Errorf("transform(%q) = %v (%T), want %v (%T)", tt.value, got, got, tt.want, tt.want)
			}
		})
	}

	t.Run("unsupported target", func(t *testing.T) {
		if _, err := transformer("x", typeOf(struct{}{})); err == nil {
			t.Error("transform to struct succeeded, want error")
		}
	})

	t.Run("nil target passes through", func(t *testing.T) {
		got, err := transformer("x", nil)
		if err != nil || got != "x" {
			t.Errorf("transform = %v, %v; want \"x\"", got, err)
		}
	})
}
