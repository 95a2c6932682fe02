package stepexpr

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// DefaultTransformer converts captured raw text to a value of the given
// target type. It backs the specialization of anonymous parameter types.
type DefaultTransformer func(value string, target reflect.Type) (interface{}, error)

// Builtin regexps.
const (
	integerRegexp      = `-?\d+`
	floatRegexp        = `[-+]?\d*\.?\d+`
	wordRegexp         = `[^\s]+`
	doubleQuotedRegexp = `"([^"\\]*(\\.[^"\\]*)*)"`
	singleQuotedRegexp = `'([^'\\]*(\\.[^'\\]*)*)'`
	anythingGoesRegexp = `.*`
)

var (
	stringType   = reflect.TypeOf("")
	intType      = reflect.TypeOf(int(0))
	float64Type  = reflect.TypeOf(float64(0))
	bigIntType   = reflect.TypeOf((*big.Int)(nil))
	bigFloatType = reflect.TypeOf((*big.Float)(nil))
)

// ParameterTypeRegistry holds the parameter types available to expression
// compilation, keyed by name, plus the default transformer used when an
// anonymous type is specialized without a transform of its own.
//
// The registry is not synchronized: register all types up front, then
// share it read-only across compilations and matches.
type ParameterTypeRegistry struct {
	byName             map[string]*ParameterType
	defaultTransformer DefaultTransformer
}

// NewParameterTypeRegistry creates a registry preinstalled with the
// builtin types {int}, {float}, {word}, {string}, {biginteger},
// {bigdecimal} and the anonymous type {}.
func NewParameterTypeRegistry() *ParameterTypeRegistry {
	r := &ParameterTypeRegistry{
		byName:             make(map[string]*ParameterType),
		defaultTransformer: transformToType,
	}
	r.mustInstall("int", []string{integerRegexp}, intType, func(v string) (interface{}, error) {
		return strconv.Atoi(v)
	}, true, true)
	r.mustInstall("float", []string{floatRegexp}, float64Type, func(v string) (interface{}, error) {
		return strconv.ParseFloat(v, 64)
	}, true, false)
	r.mustInstall("word", []string{wordRegexp}, stringType, func(v string) (interface{}, error) {
		return v, nil
	}, false, false)
	r.mustInstall("string", []string{doubleQuotedRegexp, singleQuotedRegexp}, stringType, func(v string) (interface{}, error) {
		return unquote(v), nil
	}, true, false)
	r.mustInstall("biginteger", []string{integerRegexp}, bigIntType, func(v string) (interface{}, error) {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("cannot parse %q as biginteger", v)
		}
		return n, nil
	}, false, false)
	r.mustInstall("bigdecimal", []string{floatRegexp}, bigFloatType, func(v string) (interface{}, error) {
		f, _, err := big.ParseFloat(v, 10, 236, big.ToNearestEven)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as bigdecimal: %w", v, err)
		}
		return f, nil
	}, false, false)
	r.mustInstall("", []string{anythingGoesRegexp}, nil, nil, false, false)
	return r
}

func (r *ParameterTypeRegistry) mustInstall(name string, regexps []string, target reflect.Type, transform Transform, useForSnippets, preferForRegexpMatch bool) {
	pt, err := NewParameterType(name, regexps, target, transform, useForSnippets, preferForRegexpMatch)
	if err == nil {
		err = r.Register(pt)
	}
	if err != nil {
		panic("stepexpr: installing builtin parameter type {" + name + "}: " + err.Error())
	}
}

// Register adds a parameter type. Registering a second type under an
// already taken name is an error.
func (r *ParameterTypeRegistry) Register(pt *ParameterType) error {
	if _, exists := r.byName[pt.Name()]; exists {
		return fmt.Errorf("%w: {%s}", ErrDuplicateParameterType, pt.Name())
	}
	r.byName[pt.Name()] = pt
	return nil
}

// LookupByName returns the parameter type registered under name, or nil.
// The name "" resolves to the anonymous type.
func (r *ParameterTypeRegistry) LookupByName(name string) *ParameterType {
	return r.byName[name]
}

// ParameterTypes returns all registered types sorted by name.
func (r *ParameterTypeRegistry) ParameterTypes() []*ParameterType {
	types := make([]*ParameterType, 0, len(r.byName))
	for _, pt := range r.byName {
		types = append(types, pt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name() < types[j].Name() })
	return types
}

// DefaultTransformer returns the transformer used to specialize anonymous
// parameter types.
func (r *ParameterTypeRegistry) DefaultTransformer() DefaultTransformer {
	return r.defaultTransformer
}

// SetDefaultTransformer replaces the default transformer. Call before the
// registry is shared.
func (r *ParameterTypeRegistry) SetDefaultTransformer(t DefaultTransformer) {
	r.defaultTransformer = t
}

// transformToType is the builtin default transformer: strconv-based
// conversion to the requested type, with string as the passthrough case.
func transformToType(value string, target reflect.Type) (interface{}, error) {
	if target == nil {
		return value, nil
	}
	switch target.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int:
		return strconv.Atoi(value)
	case reflect.Int64:
		return strconv.ParseInt(value, 10, 64)
	case reflect.Float64:
		return strconv.ParseFloat(value, 64)
	case reflect.Float32:
		f, err := strconv.ParseFloat(value, 32)
		return float32(f), err
	case reflect.Bool:
		return strconv.ParseBool(value)
	}
	switch target {
	case bigIntType:
		n, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return nil, fmt.Errorf("cannot transform %q to %v", value, target)
		}
		return n, nil
	case bigFloatType:
		f, _, err := big.ParseFloat(value, 10, 236, big.ToNearestEven)
		return f, err
	}
	return nil, fmt.Errorf("cannot transform %q to %v", value, target)
}

// unquote strips the surrounding quotes of a {string} capture and resolves
// the escapes \" \' and \\.
func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	quote := v[0]
	inner := v[1 : len(v)-1]
	inner = strings.ReplaceAll(inner, `\`+string(quote), string(quote))
	return strings.ReplaceAll(inner, `\\`, `\`)
}
