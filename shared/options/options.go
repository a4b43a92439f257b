// Package options provides generic functional options pattern utilities.
package options

// Option represents a functional option that configures a value of type T.
type Option[T any] func(*T)

// Apply runs opts against t in order, skipping nil options.
func Apply[T any](t *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}
