package jipg

import (
	"strconv"
	"strings"
)

// AssignNames walks every registered parser's schema tree in
// registration order and assigns a deterministic nominal Go type name
// to each aggregate node (KindObject, KindArray). The head of each
// tree keeps the name the caller registered it under; every nested
// aggregate gets "<root>_object<n>" or "<root>_array<n>", where <root>
// is that tree's head name and n comes from a single counter shared
// across every tree AssignNames visits — so re-running AssignNames
// over the same registrations in the same order always reproduces the
// same names, byte for byte.
//
// The walk is pre-order: a node is named before its children. Emission
// order (cmd/jipggen's topological pass) is a separate, later concern
// — naming only needs a stable visiting order, not a dependency-safe
// one.
//
// The original C generator built these names with a fixed-size char
// buffer and a manual strcpy/length bookkeeping that could overrun past
// its declared capacity for a long enough root name. This version has
// no such ceiling: strings.Builder grows to whatever the name needs.
func AssignNames(defs []*ParserDef) {
	var counter int
	for _, def := range defs {
		assignNamesRec(def.Root, def.Name, &counter)
	}
}

func assignNamesRec(v *Value, root string, counter *int) {
	switch v.Kind {
	case KindObject:
		if !v.Head {
			v.Name = nextName(root, "object", counter)
		}
		for _, f := range v.Fields {
			assignNamesRec(f.Elem, root, counter)
		}
	case KindArray:
		if !v.Head {
			v.Name = nextName(root, "array", counter)
		}
		assignNamesRec(v.Elem, root, counter)
	case KindObjectField:
		assignNamesRec(v.Elem, root, counter)
	default:
		// Scalar leaves (string, int, float, bool) are emitted inline
		// and never need a nominal name.
	}
}

func nextName(root, kindWord string, counter *int) string {
	var b strings.Builder
	b.WriteString(root)
	b.WriteByte('_')
	b.WriteString(kindWord)
	b.WriteString(strconv.Itoa(*counter))
	*counter++
	return b.String()
}
