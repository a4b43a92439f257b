package overload

// dispatchState is the per-call resolution state. It is never shared.
type dispatchState struct {
	params     [][]ParameterSpec
	cursor     []int
	eliminated []bool
}

func newDispatchState(reg *Registry) *dispatchState {
	n := len(reg.candidates)
	params := make([][]ParameterSpec, n)
	for i, c := range reg.candidates {
		params[i] = c.Params
	}
	return &dispatchState{
		params:     params,
		cursor:     make([]int, n),
		eliminated: make([]bool, n),
	}
}

func (s *dispatchState) eliminate(i int) {
	s.eliminated[i] = true
}

// current returns the parameter under i's cursor, eliminating i when its
// parameter list is exhausted.
func (s *dispatchState) current(i int) (ParameterSpec, bool) {
	if s.cursor[i] >= len(s.params[i]) {
		s.eliminate(i)
		return ParameterSpec{}, false
	}
	return s.params[i][s.cursor[i]], true
}

func (s *dispatchState) scanPositional(v any) {
	for i := range s.params {
		if s.eliminated[i] {
			continue
		}
		p, ok := s.current(i)
		if !ok {
			continue
		}
		if !p.Kind.acceptsPosition() || !p.accepts(v) {
			s.eliminate(i)
			continue
		}
		if p.Kind != VariadicPositional {
			s.cursor[i]++
		}
	}
}

func (s *dispatchState) scanNamed(name string, v any) {
	for i := range s.params {
		if s.eliminated[i] {
			continue
		}
		p, ok := s.current(i)
		if !ok {
			continue
		}
		// a named argument ends variadic-positional absorption
		if p.Kind == VariadicPositional {
			s.cursor[i]++
			if p, ok = s.current(i); !ok {
				continue
			}
		}
		switch {
		case p.Kind == PositionalOnly:
			s.eliminate(i)
			continue
		case (p.Kind == PositionalOrNamed || p.Kind == NamedOnly) && p.Name != name:
			s.eliminate(i)
			continue
		case !p.accepts(v):
			s.eliminate(i)
			continue
		}
		if p.Kind != VariadicNamed {
			s.cursor[i]++
		}
	}
}

// complete reports whether every parameter past i's cursor is optional.
func (s *dispatchState) complete(i int) bool {
	for _, p := range s.params[i][s.cursor[i]:] {
		if p.required() {
			return false
		}
	}
	return true
}

func (s *dispatchState) selectFirst(strict bool) (int, bool) {
	for i := range s.params {
		if s.eliminated[i] {
			continue
		}
		if strict && !s.complete(i) {
			continue
		}
		return i, true
	}
	return -1, false
}

func resolve(reg *Registry, args Args, strict bool) (int, bool) {
	s := newDispatchState(reg)
	for _, v := range args.Positional {
		s.scanPositional(v)
	}
	for _, n := range args.Named {
		s.scanNamed(n.Name, n.Value)
	}
	return s.selectFirst(strict)
}

// Resolve returns the index of the first candidate of reg that survives
// elimination against args, or false when none does.
//
// A survivor whose unconsumed parameters still include a required one is
// selected anyway; see ResolveStrict.
func Resolve(reg *Registry, args Args) (int, bool) {
	return resolve(reg, args, false)
}

// ResolveStrict is Resolve, except survivors that would be left with an
// unbound required parameter are skipped at selection time.
func ResolveStrict(reg *Registry, args Args) (int, bool) {
	return resolve(reg, args, true)
}
