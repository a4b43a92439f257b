package overload

// TypeTag is a closed identifier standing in for the relevant type of a value.
// The zero value means "no constraint" when used in a ParameterSpec.
type TypeTag string

const (
	TagNil      TypeTag = "nil"
	TagBool     TypeTag = "bool"
	TagInt      TypeTag = "int"
	TagFloat    TypeTag = "float"
	TagString   TypeTag = "string"
	TagBytes    TypeTag = "bytes"
	TagSequence TypeTag = "sequence"
	TagMapping  TypeTag = "mapping"
	TagFunc     TypeTag = "func"
	TagUnknown  TypeTag = "unknown"
)

// Tagged is implemented by values that report their own type tag.
// A TypeTag method that panics, such as a value receiver reached through a
// nil pointer, tags the value TagUnknown.
type Tagged interface {
	TypeTag() TypeTag
}

// TagOf returns the type tag of v.
func TagOf(v any) TypeTag {
	switch v := v.(type) {
	case nil:
		return TagNil
	case Tagged:
		return tagOfTagged(v)
	case bool:
		return TagBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TagInt
	case float32, float64:
		return TagFloat
	case string:
		return TagString
	case []byte:
		return TagBytes
	case []any, *[]any, []string, []int, []float64:
		return TagSequence
	case map[string]any, map[any]any, map[string]string:
		return TagMapping
	case Func, func(Args) (any, error):
		return TagFunc
	default:
		return TagUnknown
	}
}

func tagOfTagged(v Tagged) (tag TypeTag) {
	defer func() {
		if recover() != nil {
			tag = TagUnknown
		}
	}()
	return v.TypeTag()
}

// sequenceLike lists the tags that also satisfy a sequence constraint.
var sequenceLike = map[TypeTag]bool{
	TagSequence: true,
	TagString:   true,
	TagBytes:    true,
}

// Satisfies reports whether a value tagged tag meets constraint.
func Satisfies(tag, constraint TypeTag) bool {
	switch {
	case constraint == "":
		return true
	case tag == constraint:
		return true
	case constraint == TagSequence:
		return sequenceLike[tag]
	default:
		return false
	}
}
