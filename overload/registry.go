package overload

import (
	"iter"
	"slices"
)

// Candidate is one implementation together with its declared parameters.
type Candidate struct {
	Name   string
	Impl   Func
	Params []ParameterSpec
}

// Registry is the ordered, immutable set of candidates of a dispatcher plus
// its fallback. Declaration order is the tie-break rule.
type Registry struct {
	candidates []Candidate
	fallback   Func
}

// NewRegistry validates and copies candidates.
// It fails with an *InvalidSignatureError wrapping ErrInvalidSignature.
func NewRegistry(candidates []Candidate, fallback Func) (*Registry, error) {
	if fallback == nil {
		return nil, &InvalidSignatureError{Candidate: -1, Name: "fallback", Reason: "nil implementation"}
	}
	owned := make([]Candidate, len(candidates))
	for i, c := range candidates {
		if err := validate(i, c); err != nil {
			return nil, err
		}
		owned[i] = Candidate{
			Name:   c.Name,
			Impl:   c.Impl,
			Params: slices.Clone(c.Params),
		}
	}
	return &Registry{candidates: owned, fallback: fallback}, nil
}

// Len is the number of candidates, fallback excluded.
func (r *Registry) Len() int {
	return len(r.candidates)
}

// Candidate returns the i-th candidate in declaration order.
// The returned Params slice is a copy.
func (r *Registry) Candidate(i int) Candidate {
	c := r.candidates[i]
	c.Params = slices.Clone(c.Params)
	return c
}

// All iterates candidates in declaration order.
func (r *Registry) All() iter.Seq2[int, Candidate] {
	return func(yield func(int, Candidate) bool) {
		for i := range r.candidates {
			if !yield(i, r.Candidate(i)) {
				return
			}
		}
	}
}

// Fallback returns the implementation used when no candidate matches.
func (r *Registry) Fallback() Func {
	return r.fallback
}

// validate enforces the conventional parameter ordering:
// positional-only, positional-or-named, variadic-positional, named-only,
// variadic-named; with at most one parameter of each variadic kind.
func validate(idx int, c Candidate) error {
	fail := func(param, reason string) error {
		return &InvalidSignatureError{Candidate: idx, Name: c.Name, Param: param, Reason: reason}
	}

	if c.Impl == nil {
		return fail("", "nil implementation")
	}

	seen := make(map[string]struct{}, len(c.Params))
	var varPositional, varNamed int
	prev := PositionalOnly
	for _, p := range c.Params {
		if !p.Kind.valid() {
			return fail(p.Name, "unknown parameter kind "+p.Kind.String())
		}
		if p.Name == "" {
			return fail(p.Name, "empty parameter name")
		}
		if _, dup := seen[p.Name]; dup {
			return fail(p.Name, "duplicate parameter name")
		}
		seen[p.Name] = struct{}{}

		switch p.Kind {
		case VariadicPositional:
			varPositional++
			if varPositional > 1 {
				return fail(p.Name, "more than one variadic-positional parameter")
			}
		case VariadicNamed:
			varNamed++
			if varNamed > 1 {
				return fail(p.Name, "more than one variadic-named parameter")
			}
		}

		if p.Kind < prev {
			return fail(p.Name, p.Kind.String()+" parameter after "+prev.String())
		}
		prev = p.Kind
	}
	return nil
}
