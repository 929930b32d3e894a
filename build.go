package jipg

import "fmt"

// Check validates a set of registered parsers before code generation:
// every parser has a non-empty, unique name; every object's keys are
// non-empty, unique, and distinguishable under the sbox hash; every
// fixed capacity is positive; every integer/float width is one the
// generator knows how to emit; and no schema tree references itself.
//
// cmd/jipggen calls Check before emitting anything — a schema that
// fails Check has no well-defined generated form.
func Check(defs []*ParserDef) *Diagnostics {
	ds := &Diagnostics{}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			ds.add(newDiagnostic("", "empty_parser_name",
				"parser registered with an empty name", nil))
			continue
		}
		if seen[def.Name] {
			ds.add(newDiagnostic(def.Name, "duplicate_parser_name",
				"duplicate parser name {name}", map[string]any{"name": def.Name}))
			continue
		}
		seen[def.Name] = true

		checkValue(def.Root, def.Name, make(map[*Value]bool), ds)
	}

	return ds
}

func checkValue(v *Value, path string, onPath map[*Value]bool, ds *Diagnostics) {
	if v == nil {
		return
	}
	if onPath[v] {
		ds.add(newDiagnostic(path, "cyclic_schema",
			"schema {name} references itself", map[string]any{"name": path}))
		return
	}
	onPath[v] = true
	defer delete(onPath, v)

	switch v.Kind {
	case KindObject:
		keys := make(map[string]bool, len(v.Fields))
		hashes := make(map[uint64]string, len(v.Fields))
		for _, f := range v.Fields {
			if f.Key == "" {
				ds.add(newDiagnostic(path, "empty_object_key",
					"object field declared with an empty key", nil))
			} else if keys[f.Key] {
				ds.add(newDiagnostic(path, "duplicate_object_key",
					"object declares key {key} more than once",
					map[string]any{"key": f.Key}))
			} else {
				keys[f.Key] = true
			}

			h := SboxHash([]byte(f.Key))
			if other, collide := hashes[h]; collide && other != f.Key {
				ds.add(newDiagnostic(path, "sbox_collision",
					"keys {a} and {b} collide under the sbox hash",
					map[string]any{"a": other, "b": f.Key}))
			} else {
				hashes[h] = f.Key
			}

			checkValue(f.Elem, fmt.Sprintf("%s.%s", path, f.Key), onPath, ds)
		}
	case KindArray:
		if v.Cap < 0 {
			ds.add(newDiagnostic(path, "invalid_capacity",
				"capacity must be positive, got {cap}", map[string]any{"cap": v.Cap}))
		}
		checkValue(v.Elem, path+"[]", onPath, ds)
	case KindString:
		if v.Cap < 0 {
			ds.add(newDiagnostic(path, "invalid_capacity",
				"capacity must be positive, got {cap}", map[string]any{"cap": v.Cap}))
		}
	case KindInt:
		switch v.IntBits {
		case 8, 16, 32, 64:
		default:
			ds.add(newDiagnostic(path, "invalid_int_bits",
				"integer bit width must be 8, 16, 32, or 64, got {bits}",
				map[string]any{"bits": v.IntBits}))
		}
	case KindFloat:
		switch v.FloatBits {
		case 32, 64:
		default:
			ds.add(newDiagnostic(path, "invalid_float_bits",
				"float bit width must be 32 or 64, got {bits}",
				map[string]any{"bits": v.FloatBits}))
		}
	case KindBool:
	}
}
