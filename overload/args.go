package overload

// Func is the shape every candidate implementation and fallback share.
// It receives the call's arguments exactly as the caller supplied them.
type Func func(Args) (any, error)

// NamedArg is a single name=value argument.
type NamedArg struct {
	Name  string
	Value any
}

// Args holds the actual arguments of one call.
// Positional values keep call order; named values keep call order too.
type Args struct {
	Positional []any
	Named      []NamedArg
}

// Pos builds Args from positional values.
func Pos(vals ...any) Args {
	return Args{Positional: vals}
}

// With returns a copy of a with name=value appended to the named arguments.
// A name already present is replaced in place.
func (a Args) With(name string, value any) Args {
	named := make([]NamedArg, 0, len(a.Named)+1)
	replaced := false
	for _, n := range a.Named {
		if n.Name == name {
			n.Value = value
			replaced = true
		}
		named = append(named, n)
	}
	if !replaced {
		named = append(named, NamedArg{Name: name, Value: value})
	}
	a.Named = named
	return a
}

// At returns the i-th positional argument.
func (a Args) At(i int) (any, bool) {
	if i < 0 || i >= len(a.Positional) {
		return nil, false
	}
	return a.Positional[i], true
}

// Lookup returns the value of the named argument name.
func (a Args) Lookup(name string) (any, bool) {
	for _, n := range a.Named {
		if n.Name == name {
			return n.Value, true
		}
	}
	return nil, false
}

// Bind returns the argument for the parameter at position i called name:
// the positional value if one was passed there, else the named value.
func (a Args) Bind(i int, name string) (any, bool) {
	if v, ok := a.At(i); ok {
		return v, true
	}
	return a.Lookup(name)
}

// Len is the total number of arguments.
func (a Args) Len() int {
	return len(a.Positional) + len(a.Named)
}
