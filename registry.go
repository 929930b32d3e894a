package jipg

import "sync"

// ParserDef is one entry in the process-wide parser registry: the
// user-supplied top-level name and the already-built schema tree
// rooted at it.
type ParserDef struct {
	Name string
	Root *Value
}

type registryEntry struct {
	name  string
	build func() *Value
}

var (
	registryMu sync.Mutex
	registry   []registryEntry
)

// RegisterParser declares a named top-level parser. build is called
// lazily, each time RegisteredParsers is invoked, so declaration
// order at package scope (the common case — a package-level var built
// from Object/Array/...) never depends on Go's init ordering across
// files.
//
// Registration order is preserved and becomes the order AssignNames
// walks schemas in, which in turn drives the deterministic nominal
// names assigned to every nested aggregate.
func RegisterParser(name string, build func() *Value) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, registryEntry{name: name, build: build})
}

// RegisteredParsers returns every parser registered so far, in
// registration order, with names assigned by AssignNames.
func RegisteredParsers() []*ParserDef {
	registryMu.Lock()
	entries := make([]registryEntry, len(registry))
	copy(entries, registry)
	registryMu.Unlock()

	defs := make([]*ParserDef, len(entries))
	for i, e := range entries {
		root := e.build()
		root.Head = true
		root.Name = e.name
		defs[i] = &ParserDef{Name: e.name, Root: root}
	}

	AssignNames(defs)
	return defs
}

// resetRegistry clears the process-wide registry. Exercised by tests
// only; production code never needs to unregister a parser.
func resetRegistry() {
	registryMu.Lock()
	registry = nil
	registryMu.Unlock()
}
