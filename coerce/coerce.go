// Package coerce turns numeric-looking strings into numbers and passes
// everything else through.
package coerce

import (
	"regexp"
	"strconv"
)

// realPattern accepts unsigned decimal integers and reals with an optional
// leading or trailing dot, e.g. "10", "1.5", "1.", ".5".
var realPattern = regexp.MustCompile(`^\d*(\.?)\d*$`)

// TryReal converts a real-number string to int or float64.
// Non-strings, "", "." and strings that are not plain unsigned reals are
// returned unchanged, as are integers too large for int.
func TryReal(v any) any {
	s, ok := v.(string)
	if !ok || s == "" || s == "." {
		return v
	}
	m := realPattern.FindStringSubmatch(s)
	if m == nil {
		return v
	}
	if m[1] != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v
		}
		return f
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return v
	}
	return n
}

// TryRealAll applies TryReal to each string.
func TryRealAll(vs ...string) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = TryReal(v)
	}
	return out
}
