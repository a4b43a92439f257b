package access

import "fmt"

func lookupMapping(target any, key string) (any, bool) {
	switch m := target.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[any]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	default:
		return nil, false
	}
}

func assignMapping(target any, key string, value any) error {
	switch m := target.(type) {
	case map[string]any:
		if m == nil {
			return fmt.Errorf("%w: nil map", ErrUnsupportedTarget)
		}
		m[key] = value
	case map[any]any:
		if m == nil {
			return fmt.Errorf("%w: nil map", ErrUnsupportedTarget)
		}
		m[key] = value
	case map[string]string:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %T value for map[string]string", ErrUnsupportedTarget, value)
		}
		if m == nil {
			return fmt.Errorf("%w: nil map", ErrUnsupportedTarget)
		}
		m[key] = s
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedTarget, target)
	}
	return nil
}
