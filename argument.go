package stepexpr

import "github.com/coregx/stepexpr/treeregexp"

// Argument is one matched parameter: the capture group that matched it
// paired with its resolved parameter type.
type Argument struct {
	group         *treeregexp.Group
	parameterType *ParameterType
}

// buildArguments pairs each top-level capture group of a match with the
// parameter type at the same position. Compile guarantees the counts line
// up, so the two slices zip directly.
func buildArguments(match *treeregexp.Group, types []*ParameterType) []*Argument {
	groups := match.Children()
	args := make([]*Argument, len(types))
	for i := range types {
		args[i] = &Argument{group: groups[i], parameterType: types[i]}
	}
	return args
}

// Group returns the capture group that matched this argument, with any
// nested groups its parameter type's regexps introduced.
func (a *Argument) Group() *treeregexp.Group {
	return a.group
}

// ParameterType returns the argument's resolved parameter type.
func (a *Argument) ParameterType() *ParameterType {
	return a.parameterType
}

// Value transforms the captured text into the parameter type's value.
func (a *Argument) Value() (interface{}, error) {
	return a.parameterType.Transform(a.group.Value())
}
