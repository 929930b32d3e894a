package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macsencasaus/jipg-go"
)

func TestAggregateEmissionOrder_DependenciesBeforeDependents(t *testing.T) {
	city := jipg.Object(jipg.Field("name", jipg.String()))
	address := jipg.Object(jipg.Field("city", city))
	root := jipg.Object(
		jipg.Field("address", address),
		jipg.Field("tags", jipg.Array(jipg.String())),
	)
	root.Head = true
	root.Name = "Person"

	defs := []*jipg.ParserDef{{Name: "Person", Root: root}}
	jipg.AssignNames(defs)

	order, err := aggregateEmissionOrder(defs)
	require.NoError(t, err)

	index := make(map[string]int, len(order))
	for i, v := range order {
		index[v.Name] = i
	}

	require.Contains(t, index, city.Name)
	require.Contains(t, index, address.Name)
	require.Contains(t, index, "Person")
	assert.Less(t, index[city.Name], index[address.Name])
	assert.Less(t, index[address.Name], index["Person"])
}

func TestAggregateEmissionOrder_DetectsCycles(t *testing.T) {
	root := jipg.Object()
	root.Head = true
	root.Name = "Cyclic"
	root.Fields = []*jipg.Value{jipg.Field("self", root)}

	_, err := aggregateEmissionOrder([]*jipg.ParserDef{{Name: "Cyclic", Root: root}})
	assert.ErrorIs(t, err, jipg.ErrCyclicSchema)
}
