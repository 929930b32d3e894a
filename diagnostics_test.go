package jipg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_ErrorSubstitutesParams(t *testing.T) {
	d := newDiagnostic("Person.name", "duplicate_object_key",
		"object declares key {key} more than once", map[string]any{"key": "name"})
	assert.Equal(t, "object declares key name more than once", d.Error())
}

func TestDiagnostic_LocalizeFallsBackWithoutLocalizer(t *testing.T) {
	d := newDiagnostic("Person", "empty_object_key", "object field declared with an empty key", nil)
	assert.Equal(t, d.Error(), d.Localize(nil))
}

func TestDiagnostics_EmptyAndItems(t *testing.T) {
	ds := &Diagnostics{}
	assert.True(t, ds.Empty())

	ds.add(newDiagnostic("a", "c1", "first", nil))
	ds.add(newDiagnostic("b", "c2", "second", nil))
	require.Len(t, ds.Items(), 2)
	assert.False(t, ds.Empty())
	assert.Equal(t, "first; second", ds.Error())
}

func TestDiagnostics_ErrorOnEmpty(t *testing.T) {
	ds := &Diagnostics{}
	assert.Equal(t, "no diagnostics", ds.Error())
}
