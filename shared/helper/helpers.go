package helper

import (
	"errors"
	"fmt"
)

// ErrUnexpectedType is returned when a value cannot be asserted to the requested type.
var ErrUnexpectedType = errors.New("unexpected type")

// GetTypedValueOf runs getFn and asserts its result to T.
// Errors from getFn are wrapped; a failed assertion yields ErrUnexpectedType.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T, want %T", ErrUnexpectedType, res, zero)
	}

	return val, nil
}

// GetTypedValueOf2 is GetTypedValueOf for comma-ok getters.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}
