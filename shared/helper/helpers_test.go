package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/toolkit_ive_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = helper.GetTypedValueOf[string](func() (any, error) { return 3, nil })
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)

	cause := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, cause })
	assert.ErrorIs(t, err, cause)
}

func TestGetTypedValueOf2(t *testing.T) {
	v, ok := helper.GetTypedValueOf2[string](func() (any, bool) { return "a", true })
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = helper.GetTypedValueOf2[string](func() (any, bool) { return 1, true })
	assert.False(t, ok)

	_, ok = helper.GetTypedValueOf2[string](func() (any, bool) { return nil, false })
	assert.False(t, ok)
}
