package overload

// ParameterSpec describes one declared parameter of a candidate.
type ParameterSpec struct {
	Name       string
	Kind       ParameterKind
	Constraint TypeTag // empty when unconstrained
	HasDefault bool
}

// Positional declares a positional-only parameter.
func Positional(name string) ParameterSpec {
	return ParameterSpec{Name: name, Kind: PositionalOnly}
}

// Param declares a parameter that may be passed by position or by name.
func Param(name string) ParameterSpec {
	return ParameterSpec{Name: name, Kind: PositionalOrNamed}
}

// Named declares a named-only parameter.
func Named(name string) ParameterSpec {
	return ParameterSpec{Name: name, Kind: NamedOnly}
}

// VarPositional declares a parameter absorbing extra positional arguments.
func VarPositional(name string) ParameterSpec {
	return ParameterSpec{Name: name, Kind: VariadicPositional}
}

// VarNamed declares a parameter absorbing extra named arguments.
func VarNamed(name string) ParameterSpec {
	return ParameterSpec{Name: name, Kind: VariadicNamed}
}

// Of returns a copy of p constrained to tag.
func (p ParameterSpec) Of(tag TypeTag) ParameterSpec {
	p.Constraint = tag
	return p
}

// WithDefault returns a copy of p marked as optional.
func (p ParameterSpec) WithDefault() ParameterSpec {
	p.HasDefault = true
	return p
}

// accepts reports whether a value may bind to p under its type constraint.
func (p ParameterSpec) accepts(v any) bool {
	return Satisfies(TagOf(v), p.Constraint)
}

// required reports whether p must be bound for a call to be complete.
func (p ParameterSpec) required() bool {
	return !p.Kind.variadic() && !p.HasDefault
}
