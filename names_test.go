package jipg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignNames_HeadKeepsRegisteredName(t *testing.T) {
	root := Object(Field("name", String()))
	root.Head = true
	root.Name = "Person"

	defs := []*ParserDef{{Name: "Person", Root: root}}
	AssignNames(defs)

	assert.Equal(t, "Person", root.Name)
}

func TestAssignNames_NestedAggregatesGetDeterministicNames(t *testing.T) {
	root := Object(
		Field("address", Object(Field("city", String()))),
		Field("tags", Array(String())),
	)
	root.Head = true
	root.Name = "Person"

	defs := []*ParserDef{{Name: "Person", Root: root}}
	AssignNames(defs)

	address := root.Fields[0].Elem
	tags := root.Fields[1].Elem
	require.NotEmpty(t, address.Name)
	require.NotEmpty(t, tags.Name)
	assert.Equal(t, "Person_object0", address.Name)
	assert.Equal(t, "Person_array1", tags.Name)
}

func TestAssignNames_CounterSharedAcrossTrees(t *testing.T) {
	first := Object(Field("a", Object(Field("x", String()))))
	first.Head = true
	first.Name = "First"

	second := Object(Field("b", Object(Field("y", String()))))
	second.Head = true
	second.Name = "Second"

	defs := []*ParserDef{
		{Name: "First", Root: first},
		{Name: "Second", Root: second},
	}
	AssignNames(defs)

	assert.Equal(t, "First_object0", first.Fields[0].Elem.Name)
	assert.Equal(t, "Second_object1", second.Fields[0].Elem.Name)
}
