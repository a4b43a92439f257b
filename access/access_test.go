package access_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/toolkit_ive_go/access"
	"github.com/on-the-ground/toolkit_ive_go/overload"
	"github.com/on-the-ground/toolkit_ive_go/shared/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOf_Sequence(t *testing.T) {
	list := []any{"a", "b", "c"}

	assert.Equal(t, "a", access.IndexOf(list, 0))
	assert.Equal(t, "c", access.IndexOf(list, 2))
	assert.Equal(t, "c", access.IndexOf(list, -1))
	assert.Equal(t, "a", access.IndexOf(list, -3))
	assert.Nil(t, access.IndexOf(list, 3))
	assert.Nil(t, access.IndexOf(list, -4))
	assert.Equal(t, "dflt", access.IndexOf(list, 10, "dflt"))

	assert.Equal(t, "b", access.IndexOf(&list, int64(1)))
	assert.Equal(t, 20, access.IndexOf([]int{10, 20}, 1))
	assert.Equal(t, "é", access.IndexOf("héllo", 1))
}

func TestIndexOf_Mapping(t *testing.T) {
	m := map[string]any{"k": 1, "nil": nil}

	assert.Equal(t, 1, access.IndexOf(m, "k"))
	assert.Nil(t, access.IndexOf(m, "missing"))
	assert.Equal(t, 0, access.IndexOf(m, "missing", 0))
	assert.Nil(t, access.IndexOf(m, "nil", "dflt"), "present keys win over the default")
	assert.Equal(t, "v", access.IndexOf(map[string]string{"k": "v"}, "k"))
}

func TestIndexOf_MismatchedShapesFallBackToNil(t *testing.T) {
	list := []any{1, 2, 3}
	m := map[string]any{"0": "zero"}

	assert.Nil(t, access.IndexOf(list, "k"))
	assert.Nil(t, access.IndexOf(m, 0))
	assert.Nil(t, access.IndexOf(42, 0))
	assert.Nil(t, access.IndexOf(nil, "k"))
	assert.Nil(t, access.IndexOf(list, "k", "dflt"), "the fallback ignores defaults")
}

func TestIndexOfDispatcher_NamedDefault(t *testing.T) {
	m := map[string]any{}

	res, err := access.IndexOfDispatcher.Call(overload.Pos(m, "k").With("default", "named"))
	require.NoError(t, err)
	assert.Equal(t, "named", res)

	res, err = access.IndexOfDispatcher.Call(overload.Pos().With("target", m).With("key", "k").With("default", 7))
	require.NoError(t, err)
	assert.Equal(t, 7, res)

	// a sequence index passed under the mapping's parameter name fits neither candidate
	res, err = access.IndexOfDispatcher.Call(overload.Pos([]any{1}).With("key", 0))
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestIndexOfAs(t *testing.T) {
	m := map[string]any{"n": 3, "s": "x"}

	n, err := access.IndexOfAs[int](m, "n")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = access.IndexOfAs[int](m, "s")
	assert.Error(t, err)

	_, err = access.IndexOfAs[int](m, "missing")
	assert.ErrorIs(t, err, access.ErrNotFound)
}

func TestPath(t *testing.T) {
	doc := map[string]any{
		"items": []any{
			map[string]any{"name": "first"},
			map[string]any{"name": "second", "tags": []any{"x", "y"}},
		},
	}

	assert.Equal(t, "second", access.Path(doc, "items", 1, "name"))
	assert.Equal(t, "y", access.Path(doc, "items", -1, "tags", 1))
	assert.Nil(t, access.Path(doc, "items", 5, "name"))
	assert.Nil(t, access.Path(doc, "items", "1"))
	assert.Equal(t, doc, access.Path(doc))
}

func TestSetIndex_GrowsSequencePointer(t *testing.T) {
	list := []any{"a"}

	v, err := access.SetIndex(&list, 3, "d")
	require.NoError(t, err)
	assert.Equal(t, "d", v)
	assert.Equal(t, []any{"a", nil, nil, "d"}, list)

	_, err = access.SetIndex(&list, -1, "z")
	require.NoError(t, err)
	assert.Equal(t, "z", list[3])

	_, err = access.SetIndex(&list, -5, "z")
	assert.ErrorIs(t, err, access.ErrIndexOutOfRange)
}

func TestSetIndex_SliceInPlace(t *testing.T) {
	list := []any{"a", "b"}

	_, err := access.SetIndex(list, 1, "B")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "B"}, list)

	_, err = access.SetIndex(list, 2, "c")
	assert.ErrorIs(t, err, access.ErrIndexOutOfRange)

	_, err = access.SetIndex("abc", 0, "z")
	assert.ErrorIs(t, err, access.ErrImmutableTarget)

	_, err = access.SetIndex([]int{1}, 0, 2)
	assert.ErrorIs(t, err, access.ErrUnsupportedTarget)
}

func TestSetIndex_Mapping(t *testing.T) {
	m := map[string]any{}

	v, err := access.SetIndex(m, "k", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, map[string]any{"k": 1}, m)

	ms := map[string]string{}
	_, err = access.SetIndex(ms, "k", "v")
	require.NoError(t, err)
	assert.Equal(t, "v", ms["k"])

	_, err = access.SetIndex(ms, "k", 1)
	assert.ErrorIs(t, err, access.ErrUnsupportedTarget)
}

func TestSetIndex_NoMatchingWriter(t *testing.T) {
	_, err := access.SetIndex(map[string]any{}, 1, "v")
	assert.ErrorIs(t, err, access.ErrUnsupportedTarget)

	_, err = access.SetIndex([]any{}, "k", "v")
	assert.ErrorIs(t, err, access.ErrUnsupportedTarget)

	_, err = access.SetIndexDispatcher.Invoke([]any{1}, 0)
	assert.NoError(t, err, "missing value still selects the writer, which receives nil")
}

type ring struct{ vals []string }

func (r ring) TypeTag() overload.TypeTag { return overload.TagSequence }
func (r ring) Len() int                  { return len(r.vals) }
func (r ring) At(i int) any              { return r.vals[i] }

func TestIndexOf_CustomIndexable(t *testing.T) {
	r := ring{vals: []string{"x", "y"}}
	assert.Equal(t, "y", access.IndexOf(r, 1))
	assert.Nil(t, access.IndexOf(r, 2))
}

func TestAccessor_StrictArity(t *testing.T) {
	a := access.NewAccessor(overload.WithStrictArity(), overload.WithLogger(logging.NewTest()))
	list := []any{1}

	_, err := a.SetIndex(list, 0, "v")
	require.NoError(t, err)
	assert.Equal(t, []any{"v"}, list)

	_, err = a.SetIndex(list, 0, nil)
	require.NoError(t, err, "an explicit nil value is still bound")
	assert.Equal(t, []any{nil}, list)
	_, err = a.SetIndex(list, 0, "v")
	require.NoError(t, err)

	assert.Equal(t, "v", a.IndexOf(list, 0))
	assert.Equal(t, "v", a.Path(map[string]any{"l": list}, "l", 0))
}

func TestIndexOf_IndexTooLargeForInt(t *testing.T) {
	list := []any{"a", "b", "c"}

	assert.Nil(t, access.IndexOf(list, uint64(math.MaxUint64)))
	assert.Equal(t, "dflt", access.IndexOf(list, uint64(math.MaxUint64), "dflt"))
	assert.Nil(t, access.IndexOf(list, uint(math.MaxUint)))
	assert.Equal(t, "b", access.IndexOf(list, uint64(1)))
}

func TestSetIndex_IndexTooLargeForInt(t *testing.T) {
	list := []any{"a", "b", "c"}

	_, err := access.SetIndex(&list, uint64(math.MaxUint64), "X")
	assert.ErrorIs(t, err, access.ErrIndexOutOfRange)
	assert.Equal(t, []any{"a", "b", "c"}, list)

	_, err = access.SetIndex(list, uint(math.MaxUint), "X")
	assert.ErrorIs(t, err, access.ErrIndexOutOfRange)
	assert.Equal(t, []any{"a", "b", "c"}, list)
}

func TestSetIndex_GrowthIsBounded(t *testing.T) {
	list := []any{"a"}

	assert.NotPanics(t, func() {
		_, err := access.SetIndex(&list, int64(1<<62), "X")
		assert.ErrorIs(t, err, access.ErrIndexOutOfRange)
	})
	assert.Equal(t, []any{"a"}, list)

	_, err := access.SetIndex(&list, 1000, "X")
	require.NoError(t, err)
	assert.Len(t, list, 1001)
	assert.Equal(t, "X", list[1000])
}
