// Package access reads and writes elements of sequences and mappings through
// a single entry point per operation.
//
// IndexOf and SetIndex are overload dispatchers. Each registers a sequence
// candidate (sequence target, integer index) and a mapping candidate (mapping
// target, string key), in that order, so the shape of the arguments decides
// which one runs:
//
//	access.IndexOf([]any{"a", "b"}, 1)         // "b"
//	access.IndexOf(map[string]any{"k": 1}, "k") // 1
//	access.IndexOf([]any{"a"}, "k")             // nil: no candidate matched
//
// Reads never fail. An index outside the sequence or a missing key yields
// the default (nil unless given). Arguments matching neither candidate yield
// nil whatever the default. Writes report problems as errors.
package access
