// Dependency analysis for the type emitter: before a nested aggregate's
// Go type can be referenced by its parent's struct field or slice
// element, it must already have been declared. This file builds a
// dependency graph over the aggregate (object/array) nodes of every
// registered schema and topologically sorts it with the same
// graph-plus-DFS technique the struct-tag generator in this repo's
// history used to detect circular struct references.
package main

import (
	"fmt"

	"github.com/macsencasaus/jipg-go"
)

// dependencyGraph tracks, for each named aggregate, the names of the
// aggregates it directly contains.
type dependencyGraph struct {
	nodes map[string]*jipg.Value // name -> aggregate node
	edges map[string][]string    // name -> names of directly-contained aggregates
	order []string                // discovery order, used to break ties deterministically
	seen  map[*jipg.Value]bool    // pointer identity, since two aggregates may share a name only across distinct ParserDefs
}

func newDependencyGraph() *dependencyGraph {
	return &dependencyGraph{
		nodes: make(map[string]*jipg.Value),
		edges: make(map[string][]string),
		seen:  make(map[*jipg.Value]bool),
	}
}

// addSchema walks def's tree, registering every aggregate node and the
// containment edges between them.
func (g *dependencyGraph) addSchema(def *jipg.ParserDef) {
	g.visit(def.Root)
}

func (g *dependencyGraph) visit(v *jipg.Value) {
	if v == nil || g.seen[v] {
		return
	}

	switch v.Kind {
	case jipg.KindObject:
		g.register(v)
		for _, f := range v.Fields {
			g.visitChild(v, f.Elem)
		}
	case jipg.KindArray:
		g.register(v)
		g.visitChild(v, v.Elem)
	case jipg.KindObjectField:
		g.visit(v.Elem)
	default:
		// scalar leaves declare no type of their own
	}
}

func (g *dependencyGraph) visitChild(parent, child *jipg.Value) {
	if child == nil {
		return
	}
	if child.IsAggregate() {
		g.addEdge(parent.Name, child.Name)
	}
	g.visit(child)
}

func (g *dependencyGraph) register(v *jipg.Value) {
	g.seen[v] = true
	if _, exists := g.nodes[v.Name]; !exists {
		g.nodes[v.Name] = v
		g.order = append(g.order, v.Name)
	}
}

func (g *dependencyGraph) addEdge(from, to string) {
	for _, existing := range g.edges[from] {
		if existing == to {
			return
		}
	}
	g.edges[from] = append(g.edges[from], to)
}

// emissionOrder returns every aggregate name in dependency-first
// (post-order) sequence: a name never appears before the names it
// depends on. Names in independent subtrees keep the order addSchema
// discovered them in.
func (g *dependencyGraph) emissionOrder() ([]string, error) {
	var order []string
	visited := make(map[string]bool)
	onStack := make(map[string]bool)

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		if onStack[name] {
			return fmt.Errorf("%w: %v", jipg.ErrCyclicSchema, append(path, name))
		}
		if visited[name] {
			return nil
		}
		onStack[name] = true
		path = append(path, name)

		for _, dep := range g.edges[name] {
			if err := visit(dep, path); err != nil {
				return err
			}
		}

		onStack[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.order {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// aggregateEmissionOrder builds a dependency graph over every
// registered parser's tree and returns the aggregate Value nodes in
// the order the type emitter must declare them in.
func aggregateEmissionOrder(defs []*jipg.ParserDef) ([]*jipg.Value, error) {
	g := newDependencyGraph()
	for _, def := range defs {
		g.addSchema(def)
	}

	names, err := g.emissionOrder()
	if err != nil {
		return nil, err
	}

	values := make([]*jipg.Value, len(names))
	for i, name := range names {
		values[i] = g.nodes[name]
	}
	return values, nil
}
