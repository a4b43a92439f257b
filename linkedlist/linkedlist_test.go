package linkedlist_test

import (
	"slices"
	"testing"

	"github.com/on-the-ground/toolkit_ive_go/linkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestList_PushPop(t *testing.T) {
	l := linkedlist.New[int]().Push(1).Push(2).Push(3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Head().Value)
	assert.Equal(t, 3, l.Tail().Value)

	v, ok := l.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2}, l.Items())

	l.Pop()
	l.Pop()
	_, ok = l.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Head())
	assert.Nil(t, l.Tail())
}

func TestList_UnshiftShift(t *testing.T) {
	l := linkedlist.New[string]().Unshift("b").Unshift("a").Push("c")
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())

	v, ok := l.Shift()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, "b", l.Head().Value)
	assert.Nil(t, l.Head().Prev())

	l.Shift()
	l.Shift()
	_, ok = l.Shift()
	assert.False(t, ok)
	assert.Nil(t, l.Tail())
}

func TestList_ZeroValueIsUsable(t *testing.T) {
	var l linkedlist.List[int]
	l.Push(1)
	assert.Equal(t, []int{1}, l.Items())
}

func TestList_Index(t *testing.T) {
	l := linkedlist.From(0, 1, 2, 3, 4, 5)
	for i := 0; i < l.Len(); i++ {
		v, ok := l.At(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Nil(t, l.Index(-1))
	assert.Nil(t, l.Index(6))
	_, ok := l.At(6)
	assert.False(t, ok)
}

func TestList_Truncate(t *testing.T) {
	l := linkedlist.From(1, 2, 3, 4, 5).Truncate(2, false)
	assert.Equal(t, []int{1, 2}, l.Items())
	assert.Equal(t, 2, l.Len())
	assert.Nil(t, l.Tail().Next())

	l = linkedlist.From(1, 2, 3, 4, 5).Truncate(2, true)
	assert.Equal(t, []int{4, 5}, l.Items())
	assert.Nil(t, l.Head().Prev())

	l = linkedlist.From(1, 2).Truncate(5, true)
	assert.Equal(t, []int{1, 2}, l.Items())

	l = linkedlist.From(1, 2).Truncate(0, false)
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Items())
}

func TestList_Backward(t *testing.T) {
	l := linkedlist.From("a", "b", "c")
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(l.Backward()))

	var firstTwo []string
	for v := range l.All() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	assert.Equal(t, []string{"a", "b"}, firstTwo)
}

// The list must behave like a slice under any sequence of operations.
func TestList_MatchesSliceModel(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := linkedlist.New[int]()
		var model []int

		ops := rapid.SliceOfN(rapid.IntRange(0, 4), 0, 50).Draw(rt, "ops")
		for i, op := range ops {
			switch op {
			case 0:
				l.Push(i)
				model = append(model, i)
			case 1:
				l.Unshift(i)
				model = append([]int{i}, model...)
			case 2:
				v, ok := l.Pop()
				if ok != (len(model) > 0) {
					rt.Fatalf("pop ok=%v with model %v", ok, model)
				}
				if ok {
					if v != model[len(model)-1] {
						rt.Fatalf("pop %d, want %d", v, model[len(model)-1])
					}
					model = model[:len(model)-1]
				}
			case 3:
				v, ok := l.Shift()
				if ok != (len(model) > 0) {
					rt.Fatalf("shift ok=%v with model %v", ok, model)
				}
				if ok {
					if v != model[0] {
						rt.Fatalf("shift %d, want %d", v, model[0])
					}
					model = model[1:]
				}
			case 4:
				keep := rapid.IntRange(0, len(model)+1).Draw(rt, "keep")
				fromHead := rapid.Bool().Draw(rt, "fromHead")
				l.Truncate(keep, fromHead)
				if keep < len(model) {
					if fromHead {
						model = model[len(model)-keep:]
					} else {
						model = model[:keep]
					}
				}
			}

			if l.Len() != len(model) || !slices.Equal(l.Items(), model) {
				rt.Fatalf("list %v != model %v", l.Items(), model)
			}
			backward := slices.Collect(l.Backward())
			slices.Reverse(backward)
			if !slices.Equal(backward, model) {
				rt.Fatalf("backward %v != model %v", backward, model)
			}
		}
	})
}
