package access

import (
	"fmt"

	"github.com/on-the-ground/toolkit_ive_go/overload"
	"github.com/on-the-ground/toolkit_ive_go/shared/helper"
)

// Accessor pairs an IndexOf and a SetIndex dispatcher built with the same
// options. The package-level functions use a default Accessor.
type Accessor struct {
	index *overload.Dispatcher
	set   *overload.Dispatcher
}

// NewAccessor registers both dispatchers, applying opts to each after
// naming them "index_of" and "set_index".
func NewAccessor(opts ...overload.Option) *Accessor {
	return &Accessor{
		index: overload.MustRegister(indexOfCandidates(), indexOfFallback,
			append([]overload.Option{overload.WithName("index_of")}, opts...)...),
		set: overload.MustRegister(setIndexCandidates(), unsupportedSet,
			append([]overload.Option{overload.WithName("set_index")}, opts...)...),
	}
}

func indexOfCandidates() []overload.Candidate {
	return []overload.Candidate{
		{
			Name: "indexOfSequence",
			Impl: indexOfSequence,
			Params: []overload.ParameterSpec{
				overload.Param("target").Of(overload.TagSequence),
				overload.Param("index").Of(overload.TagInt),
				overload.Param("default").WithDefault(),
			},
		},
		{
			Name: "indexOfMapping",
			Impl: indexOfMapping,
			Params: []overload.ParameterSpec{
				overload.Param("target").Of(overload.TagMapping),
				overload.Param("key").Of(overload.TagString),
				overload.Param("default").WithDefault(),
			},
		},
	}
}

func setIndexCandidates() []overload.Candidate {
	return []overload.Candidate{
		{
			Name: "setIndexOfSequence",
			Impl: setIndexOfSequence,
			Params: []overload.ParameterSpec{
				overload.Param("target").Of(overload.TagSequence),
				overload.Param("index").Of(overload.TagInt),
				overload.Param("value"),
			},
		},
		{
			Name: "setIndexOfMapping",
			Impl: setIndexOfMapping,
			Params: []overload.ParameterSpec{
				overload.Param("target").Of(overload.TagMapping),
				overload.Param("key").Of(overload.TagString),
				overload.Param("value"),
			},
		},
	}
}

var defaultAccessor = NewAccessor()

// IndexOfDispatcher selects between the sequence and mapping readers.
// Use it directly to pass the default by name:
//
//	access.IndexOfDispatcher.Call(overload.Pos(m, "k").With("default", 0))
var IndexOfDispatcher = defaultAccessor.index

// SetIndexDispatcher selects between the sequence and mapping writers.
var SetIndexDispatcher = defaultAccessor.set

// IndexOf returns target[key] for a sequence and integer index, or for a
// mapping and string key. Out-of-range indexes and missing keys return
// def[0], or nil when no default is given. Any other shape of arguments
// returns nil, ignoring def.
func IndexOf(target, key any, def ...any) any {
	return defaultAccessor.IndexOf(target, key, def...)
}

// IndexOfAs is IndexOf asserting the element to T.
// A missing element yields ErrNotFound.
func IndexOfAs[T any](target, key any) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		v := IndexOf(target, key)
		if v == nil {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, key)
		}
		return v, nil
	})
}

// Path follows keys from target with IndexOf, returning nil as soon as a
// step finds nothing.
func Path(target any, keys ...any) any {
	return defaultAccessor.Path(target, keys...)
}

// SetIndex sets target[key] = value and returns value.
// A *[]any target grows with nil elements to fit the index.
func SetIndex(target, key, value any) (any, error) {
	return defaultAccessor.SetIndex(target, key, value)
}

// IndexOf is the package-level IndexOf over a's dispatcher.
func (a *Accessor) IndexOf(target, key any, def ...any) any {
	args := overload.Pos(target, key)
	if len(def) > 0 {
		args = args.With("default", def[0])
	}
	res, _ := a.index.Call(args)
	return res
}

// Path is the package-level Path over a's dispatcher.
func (a *Accessor) Path(target any, keys ...any) any {
	cur := target
	for _, k := range keys {
		if cur = a.IndexOf(cur, k); cur == nil {
			return nil
		}
	}
	return cur
}

// SetIndex is the package-level SetIndex over a's dispatcher.
func (a *Accessor) SetIndex(target, key, value any) (any, error) {
	return a.set.Invoke(target, key, value)
}

func indexOfFallback(overload.Args) (any, error) { return nil, nil }

func bindAs[T any](args overload.Args, i int, name string) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) { return args.Bind(i, name) })
}

func defaultOf(args overload.Args) any {
	v, _ := args.Bind(2, "default")
	return v
}

func indexOfSequence(args overload.Args) (any, error) {
	target, _ := args.Bind(0, "target")
	rawIndex, _ := args.Bind(1, "index")
	if index, ok := toInt(rawIndex); ok {
		if v, ok := lookupSequence(target, index); ok {
			return v, nil
		}
	}
	return defaultOf(args), nil
}

func indexOfMapping(args overload.Args) (any, error) {
	target, _ := args.Bind(0, "target")
	key, _ := bindAs[string](args, 1, "key")
	if v, ok := lookupMapping(target, key); ok {
		return v, nil
	}
	return defaultOf(args), nil
}

func setIndexOfSequence(args overload.Args) (any, error) {
	target, _ := args.Bind(0, "target")
	rawIndex, _ := args.Bind(1, "index")
	value, _ := args.Bind(2, "value")
	index, ok := toInt(rawIndex)
	if !ok {
		return nil, fmt.Errorf("%w: %v does not fit an int", ErrIndexOutOfRange, rawIndex)
	}
	if err := assignSequence(target, index, value); err != nil {
		return nil, err
	}
	return value, nil
}

func setIndexOfMapping(args overload.Args) (any, error) {
	target, _ := args.Bind(0, "target")
	key, _ := bindAs[string](args, 1, "key")
	value, _ := args.Bind(2, "value")
	if err := assignMapping(target, key, value); err != nil {
		return nil, err
	}
	return value, nil
}

func unsupportedSet(args overload.Args) (any, error) {
	tags := make([]overload.TypeTag, 0, args.Len())
	for _, v := range args.Positional {
		tags = append(tags, overload.TagOf(v))
	}
	for _, n := range args.Named {
		tags = append(tags, overload.TagOf(n.Value))
	}
	return nil, fmt.Errorf("%w: no writer for %v", ErrUnsupportedTarget, tags)
}
