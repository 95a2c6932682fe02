package stepexpr

import (
	"fmt"
	"reflect"
	"strings"
)

// Transform converts the raw text captured for a parameter into its typed
// value.
type Transform func(value string) (interface{}, error)

// illegalNameChars are reserved inside parameter names because they carry
// meaning in the expression language or in regex syntax.
const illegalNameChars = "[]()$.|?*+"

// CheckParameterTypeName validates a parameter type name. The empty name
// is legal: it denotes the anonymous type.
func CheckParameterTypeName(name string) error {
	if strings.ContainsAny(name, illegalNameChars) {
		return fmt.Errorf("%w {%s}: may not contain %q", ErrIllegalParameterName, name, illegalNameChars)
	}
	return nil
}

// ParameterType describes one kind of parameter: the regexps that match
// its raw text, the Go type of its value, and the transform between the
// two. A type with an empty name is anonymous: it has no fixed target type
// and is specialized per match call via Deanonymize.
//
// ParameterType values are immutable and safe to share.
type ParameterType struct {
	name                 string
	regexps              []string
	targetType           reflect.Type
	transform            Transform
	useForSnippets       bool
	preferForRegexpMatch bool
}

// NewParameterType creates a parameter type.
//
// name must pass CheckParameterTypeName; regexps must be non-empty. When
// regexps has more than one entry, all entries match alternative raw forms
// of the same type. transform may be nil only for the anonymous type.
func NewParameterType(name string, regexps []string, targetType reflect.Type, transform Transform, useForSnippets, preferForRegexpMatch bool) (*ParameterType, error) {
	if err := CheckParameterTypeName(name); err != nil {
		return nil, err
	}
	if len(regexps) == 0 {
		return nil, fmt.Errorf("parameter type {%s} must have at least one regexp", name)
	}
	return &ParameterType{
		name:                 name,
		regexps:              append([]string(nil), regexps...),
		targetType:           targetType,
		transform:            transform,
		useForSnippets:       useForSnippets,
		preferForRegexpMatch: preferForRegexpMatch,
	}, nil
}

// Name returns the type's name; empty for the anonymous type.
func (p *ParameterType) Name() string {
	return p.name
}

// Regexps returns the regexps matching the type's raw text forms.
// The returned slice must not be modified.
func (p *ParameterType) Regexps() []string {
	return p.regexps
}

// TargetType returns the Go type values of this parameter resolve to, or
// nil for an anonymous type that has not been specialized.
func (p *ParameterType) TargetType() reflect.Type {
	return p.targetType
}

// IsAnonymous reports whether the type is the anonymous placeholder type.
func (p *ParameterType) IsAnonymous() bool {
	return p.name == ""
}

// UseForSnippets reports whether snippet generation should offer this type.
func (p *ParameterType) UseForSnippets() bool {
	return p.useForSnippets
}

// PreferForRegexpMatch reports whether this type wins when several types
// share a regexp.
func (p *ParameterType) PreferForRegexpMatch() bool {
	return p.preferForRegexpMatch
}

// Transform converts captured raw text into the type's value.
func (p *ParameterType) Transform(value string) (interface{}, error) {
	if p.transform == nil {
		return nil, fmt.Errorf("parameter type {%s} has no transform", p.name)
	}
	return p.transform(value)
}

// Deanonymize specializes an anonymous type to a concrete target type.
// It returns a new, non-anonymous ParameterType and never modifies the
// receiver; the receiver's own transform is kept when it has one,
// otherwise fallback is used.
func (p *ParameterType) Deanonymize(target reflect.Type, fallback Transform) *ParameterType {
	transform := p.transform
	if transform == nil {
		transform = fallback
	}
	return &ParameterType{
		name:                 "anonymous",
		regexps:              p.regexps,
		targetType:           target,
		transform:            transform,
		useForSnippets:       p.useForSnippets,
		preferForRegexpMatch: p.preferForRegexpMatch,
	}
}
