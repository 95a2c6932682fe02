// Package typesfile loads parameter type definitions from YAML files into
// a registry.
//
// File format:
//
//	parameter-types:
//	  - name: color
//	    regexps: ["red|blue|green"]
//	    type: string
//	  - name: order-id
//	    regexps: ['#\d{6}']
//	    type: int
//
// The type field names the Go value type of the parameter; the raw text is
// converted with the registry's default conversion rules.
package typesfile

import (
	"fmt"
	"math/big"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/coregx/stepexpr"
)

// yamlDocument is the internal YAML parsing struct for a types file. It is
// converted to registry registrations before anything is returned to
// callers.
type yamlDocument struct {
	ParameterTypes []yamlParameterType `yaml:"parameter-types"`
}

// yamlParameterType is the YAML representation of one parameter type.
type yamlParameterType struct {
	Name                 string   `yaml:"name"`
	Regexps              []string `yaml:"regexps"`
	Type                 string   `yaml:"type,omitempty"`
	UseForSnippets       *bool    `yaml:"use-for-snippets,omitempty"`
	PreferForRegexpMatch bool     `yaml:"prefer-for-regexp-match,omitempty"`
}

// TypeByName resolves a type name from a types file (or a --hint flag) to
// its reflect.Type. Supported names: string, int, int64, float, float32,
// bool, biginteger, bigdecimal.
func TypeByName(name string) (reflect.Type, error) {
	switch name {
	case "", "string":
		return reflect.TypeOf(""), nil
	case "int":
		return reflect.TypeOf(int(0)), nil
	case "int64":
		return reflect.TypeOf(int64(0)), nil
	case "float", "float64":
		return reflect.TypeOf(float64(0)), nil
	case "float32":
		return reflect.TypeOf(float32(0)), nil
	case "bool":
		return reflect.TypeOf(false), nil
	case "biginteger":
		return reflect.TypeOf((*big.Int)(nil)), nil
	case "bigdecimal":
		return reflect.TypeOf((*big.Float)(nil)), nil
	}
	return nil, fmt.Errorf("unknown type name %q", name)
}

// LoadInto reads a YAML types file and registers every definition in
// registry. Raw text is converted to the declared type with the registry's
// default transformer.
func LoadInto(path string, registry *stepexpr.ParameterTypeRegistry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, def := range doc.ParameterTypes {
		if def.Name == "" {
			return fmt.Errorf("%s: parameter type without a name", path)
		}
		target, err := TypeByName(def.Type)
		if err != nil {
			return fmt.Errorf("%s: parameter type {%s}: %w", path, def.Name, err)
		}
		useForSnippets := true
		if def.UseForSnippets != nil {
			useForSnippets = *def.UseForSnippets
		}
		transformer := registry.DefaultTransformer()
		pt, err := stepexpr.NewParameterType(
			def.Name,
			def.Regexps,
			target,
			func(value string) (interface{}, error) { return transformer(value, target) },
			useForSnippets,
			def.PreferForRegexpMatch,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := registry.Register(pt); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
