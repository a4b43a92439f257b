package access

import (
	"fmt"
	"math"
)

// Indexable lets custom sequence types take part in IndexOf.
// Such types should also report overload.TagSequence via overload.Tagged.
type Indexable interface {
	Len() int
	At(i int) any
}

// maxGrowth bounds how many nil elements a *[]any write may append.
const maxGrowth = 1 << 20

// toInt converts an integer of any width to int, failing when it does not fit.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		return fromUnsigned(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return fromUnsigned(uint64(n))
	case uint64:
		return fromUnsigned(n)
	default:
		return 0, false
	}
}

func fromUnsigned(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// normalizeIndex maps a possibly negative index onto [0, length).
func normalizeIndex(index, length int) (int, bool) {
	if index < -length || index >= length {
		return 0, false
	}
	if index < 0 {
		index += length
	}
	return index, true
}

// lookupSequence returns target[index], counting negative indexes from the end.
func lookupSequence(target any, index int) (any, bool) {
	switch s := target.(type) {
	case []any:
		return at(s, index)
	case *[]any:
		if s == nil {
			return nil, false
		}
		return at(*s, index)
	case []string:
		return at(s, index)
	case []int:
		return at(s, index)
	case []float64:
		return at(s, index)
	case []byte:
		return at(s, index)
	case string:
		runes := []rune(s)
		if i, ok := normalizeIndex(index, len(runes)); ok {
			return string(runes[i]), true
		}
		return nil, false
	case Indexable:
		if i, ok := normalizeIndex(index, s.Len()); ok {
			return s.At(i), true
		}
		return nil, false
	default:
		return nil, false
	}
}

func at[E any](s []E, index int) (any, bool) {
	if i, ok := normalizeIndex(index, len(s)); ok {
		return s[i], true
	}
	return nil, false
}

// assignSequence sets target[index] = value. A *[]any target is extended
// with nil elements when index is past its end, by at most maxGrowth.
func assignSequence(target any, index int, value any) error {
	switch s := target.(type) {
	case *[]any:
		if s == nil {
			return fmt.Errorf("%w: nil sequence pointer", ErrUnsupportedTarget)
		}
		if index-len(*s) >= maxGrowth {
			return fmt.Errorf("%w: %d of %d exceeds growth limit %d", ErrIndexOutOfRange, index, len(*s), maxGrowth)
		}
		if missing := index + 1 - len(*s); missing > 0 {
			*s = append(*s, make([]any, missing)...)
		}
		i, ok := normalizeIndex(index, len(*s))
		if !ok {
			return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(*s))
		}
		(*s)[i] = value
		return nil
	case []any:
		i, ok := normalizeIndex(index, len(s))
		if !ok {
			return fmt.Errorf("%w: %d of %d (pass *[]any to grow)", ErrIndexOutOfRange, index, len(s))
		}
		s[i] = value
		return nil
	case string, []byte:
		return fmt.Errorf("%w: %T", ErrImmutableTarget, target)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedTarget, target)
	}
}
