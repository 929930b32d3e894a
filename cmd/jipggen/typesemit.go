package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/macsencasaus/jipg-go"
)

// emitTypes renders the Go type declarations for every aggregate in
// order — the dependency-first sequence aggregateEmissionOrder returns,
// so a struct field or slice element type is always already declared
// by the time something else names it.
func emitTypes(order []*jipg.Value) string {
	var b strings.Builder
	for i, v := range order {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch v.Kind {
		case jipg.KindObject:
			emitStructType(&b, v)
		case jipg.KindArray:
			emitSliceType(&b, v)
		}
	}
	return b.String()
}

func emitStructType(b *strings.Builder, v *jipg.Value) {
	fmt.Fprintf(b, "type %s struct {\n", v.Name)
	for _, f := range v.Fields {
		fmt.Fprintf(b, "\t%s %s `json:%q`\n", fieldGoName(f.Key), goType(f.Elem), f.Key)
	}
	b.WriteString("}\n")
}

func emitSliceType(b *strings.Builder, v *jipg.Value) {
	cap := ""
	if v.Cap > 0 {
		cap = fmt.Sprintf(" // fixed capacity %d, enforced by the generated parser", v.Cap)
	}
	fmt.Fprintf(b, "type %s []%s%s\n", v.Name, goType(v.Elem), cap)
}

// goType returns the Go type expression used wherever v is referenced
// — its own nominal name for an aggregate, or the corresponding
// built-in type for a scalar leaf.
func goType(v *jipg.Value) string {
	switch v.Kind {
	case jipg.KindObject, jipg.KindArray:
		return v.Name
	case jipg.KindString:
		return "string"
	case jipg.KindBool:
		return "bool"
	case jipg.KindInt:
		return fmt.Sprintf("int%d", v.IntBits)
	case jipg.KindFloat:
		return fmt.Sprintf("float%d", v.FloatBits)
	default:
		return "any"
	}
}

// fieldGoName converts a JSON object key into an exported Go field
// name: snake_case or kebab-case segments become PascalCase, matching
// the convention cmd/schemagen's structNameToFileName used in reverse.
func fieldGoName(key string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range key {
		switch {
		case r == '_' || r == '-':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		return "Field"
	}
	return name
}
