package main

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/json"

	"github.com/macsencasaus/jipg-go"
)

// irNode is the JSON-serializable projection of a jipg.Value used by
// --dump-ir: a plain tree mirroring the schema's shape after naming,
// for inspecting what a schema resolved to without reading Go source.
type irNode struct {
	Kind      string   `json:"kind"`
	Name      string   `json:"name,omitempty"`
	Key       string   `json:"key,omitempty"`
	Cap       int      `json:"cap,omitempty"`
	IntBits   int      `json:"intBits,omitempty"`
	FloatBits int      `json:"floatBits,omitempty"`
	Fields    []irNode `json:"fields,omitempty"`
	Elem      *irNode  `json:"elem,omitempty"`
}

func toIR(v *jipg.Value) *irNode {
	if v == nil {
		return nil
	}
	n := &irNode{
		Kind:      v.Kind.String(),
		Name:      v.Name,
		Key:       v.Key,
		Cap:       v.Cap,
		IntBits:   v.IntBits,
		FloatBits: v.FloatBits,
	}
	for _, f := range v.Fields {
		n.Fields = append(n.Fields, *toIR(f))
	}
	n.Elem = toIR(v.Elem)
	return n
}

type irDump struct {
	Name string `json:"name"`
	Root irNode `json:"root"`
}

// DumpIR serializes the post-name-pass IR of every registered parser to
// path as JSON, for inspecting what the name-assignment pass produced
// without reading the generated Go source.
func DumpIR(defs []*jipg.ParserDef, path string) error {
	dumps := make([]irDump, len(defs))
	for i, def := range defs {
		dumps[i] = irDump{Name: def.Name, Root: *toIR(def.Root)}
	}

	data, err := json.MarshalIndent(dumps, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal IR: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", jipg.ErrOutputWrite, path, err)
	}
	return nil
}
