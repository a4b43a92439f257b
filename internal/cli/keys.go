package cli

import (
	"fmt"

	"github.com/on-the-ground/toolkit_ive_go/access"
	"github.com/on-the-ground/toolkit_ive_go/coerce"
	"github.com/on-the-ground/toolkit_ive_go/overload"
)

// keyFor is raw as-is under a mapping and coerced anywhere else, so string
// keys that look like numbers stay reachable.
func keyFor(target any, raw string) any {
	if overload.TagOf(target) == overload.TagMapping {
		return raw
	}
	return coerce.TryReal(raw)
}

// walk follows raw keys from doc, failing with access.ErrNotFound at the
// first step that finds nothing.
func (a *app) walk(doc any, raw []string) (any, error) {
	cur := doc
	for i, k := range raw {
		if cur = a.accessor.IndexOf(cur, keyFor(cur, k)); cur == nil {
			return nil, fmt.Errorf("%w: %v", access.ErrNotFound, raw[:i+1])
		}
	}
	return cur, nil
}
