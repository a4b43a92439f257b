package access

import "errors"

var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrImmutableTarget   = errors.New("target is immutable")
	ErrUnsupportedTarget = errors.New("unsupported target")
	ErrNotFound          = errors.New("not found")
)
