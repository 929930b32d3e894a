package jipg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterParser_RegisteredParsersAssignsHeadName(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	RegisterParser("Widget", func() *Value {
		return Object(Field("id", Int()))
	})

	defs := RegisteredParsers()
	require.Len(t, defs, 1)
	assert.Equal(t, "Widget", defs[0].Name)
	assert.Equal(t, "Widget", defs[0].Root.Name)
	assert.True(t, defs[0].Root.Head)
}

func TestRegisterParser_PreservesRegistrationOrder(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	RegisterParser("First", func() *Value { return Object() })
	RegisterParser("Second", func() *Value { return Object() })

	defs := RegisteredParsers()
	require.Len(t, defs, 2)
	assert.Equal(t, "First", defs[0].Name)
	assert.Equal(t, "Second", defs[1].Name)
}

func TestRegisterParser_BuildIsLazy(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	called := false
	RegisterParser("Lazy", func() *Value {
		called = true
		return Object()
	})
	assert.False(t, called)

	RegisteredParsers()
	assert.True(t, called)
}
