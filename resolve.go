package stepexpr

import "reflect"

// resolveTypes builds the per-call parameter type list for one match.
//
// It works on a fresh copy of the compiled list and never writes back:
// the compiled expression's own types stay untouched no matter how many
// matches run concurrently. For position i the caller's hint applies, or
// string when absent. Anonymous types are specialized to the resolved
// target via the registry's default transformer; non-anonymous types pass
// through unchanged regardless of hints.
func (e *Expression) resolveTypes(typeHints []reflect.Type) []*ParameterType {
	types := make([]*ParameterType, len(e.parameterTypes))
	copy(types, e.parameterTypes)
	for i, pt := range types {
		if !pt.IsAnonymous() {
			continue
		}
		target := stringType
		if i < len(typeHints) && typeHints[i] != nil {
			target = typeHints[i]
		}
		transformer := e.registry.DefaultTransformer()
		types[i] = pt.Deanonymize(target, func(value string) (interface{}, error) {
			return transformer(value, target)
		})
	}
	return types
}
