package overload

import "fmt"

// ParameterKind classifies how a parameter may be supplied by a caller.
type ParameterKind int

const (
	// PositionalOnly parameters can only be filled by position.
	PositionalOnly ParameterKind = iota
	// PositionalOrNamed parameters can be filled by position or by name.
	PositionalOrNamed
	// VariadicPositional absorbs any number of extra positional arguments.
	VariadicPositional
	// NamedOnly parameters can only be filled by name.
	NamedOnly
	// VariadicNamed absorbs any number of extra named arguments.
	VariadicNamed

	numParameterKinds = int(iota)
)

var parameterKindNames = [numParameterKinds]string{
	PositionalOnly:     "positional-only",
	PositionalOrNamed:  "positional-or-named",
	VariadicPositional: "variadic-positional",
	NamedOnly:          "named-only",
	VariadicNamed:      "variadic-named",
}

func (k ParameterKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("ParameterKind(%d)", int(k))
	}
	return parameterKindNames[k]
}

func (k ParameterKind) valid() bool {
	return k >= 0 && int(k) < numParameterKinds
}

func (k ParameterKind) variadic() bool {
	return k == VariadicPositional || k == VariadicNamed
}

// acceptsPosition reports whether a positional argument may land on k.
func (k ParameterKind) acceptsPosition() bool {
	return k != NamedOnly && k != VariadicNamed
}
