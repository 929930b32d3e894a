package main

import (
	"fmt"
	"strings"

	"github.com/macsencasaus/jipg-go"
)

// emitParsers renders every aggregate's parser function, in the same
// dependency-first order used for type declarations, followed by one
// Parse<Name>/Parse<Name>CString pair per registered top-level schema.
func emitParsers(order []*jipg.Value, defs []*jipg.ParserDef) string {
	var b strings.Builder
	for _, v := range order {
		switch v.Kind {
		case jipg.KindObject:
			emitObjectParser(&b, v)
		case jipg.KindArray:
			emitArrayParser(&b, v)
		}
		b.WriteByte('\n')
	}
	for _, def := range defs {
		emitTopLevel(&b, def)
		b.WriteByte('\n')
	}
	return b.String()
}

func parseFuncName(v *jipg.Value) string {
	return "parse_" + v.Name
}

// emitObjectParser renders parse_<name>, a dispatch loop that hashes
// each incoming key with sboxHash and falls through to skipValue for
// any key outside the schema. The hash match is trusted outright: a
// key distinct from every declared key that happens to collide with one
// of them under sboxHash is parsed into that declared key's field; no
// string comparison confirms the match.
func emitObjectParser(b *strings.Builder, v *jipg.Value) {
	fmt.Fprintf(b, "func %s(lx *lexer, out *%s) bool {\n", parseFuncName(v), v.Name)
	b.WriteString("\tif !lx.expect('{') {\n\t\treturn false\n\t}\n")
	b.WriteString("\tfor {\n")
	b.WriteString("\t\tif lx.peekIs('}') {\n\t\t\tlx.pos++\n\t\t\treturn true\n\t\t}\n")
	b.WriteString("\t\tkey, ok := lx.scanString()\n")
	b.WriteString("\t\tif !ok {\n\t\t\treturn false\n\t\t}\n")
	b.WriteString("\t\tif !lx.expect(':') {\n\t\t\treturn false\n\t\t}\n")
	b.WriteString("\t\tswitch sboxHash([]byte(key)) {\n")
	for _, f := range v.Fields {
		fmt.Fprintf(b, "\t\tcase %d: // %s\n", jipg.SboxHash([]byte(f.Key)), f.Key)
		for _, line := range emitValueParse(fmt.Sprintf("out.%s", fieldGoName(f.Key)), f.Elem) {
			b.WriteString("\t\t\t")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	b.WriteString("\t\tdefault:\n\t\t\tif !lx.skipValue() {\n\t\t\t\treturn false\n\t\t\t}\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t\tif lx.expect(',') {\n\t\t\tcontinue\n\t\t}\n")
	b.WriteString("\t\tif lx.expect('}') {\n\t\t\treturn true\n\t\t}\n")
	b.WriteString("\t\treturn false\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n")
}

// emitArrayParser renders parse_<name>, an append loop bounded by
// Cap when the schema fixes one — exceeding a fixed capacity is a
// parse error rather than a silent truncation or reallocation.
func emitArrayParser(b *strings.Builder, v *jipg.Value) {
	elemType := goType(v.Elem)
	fmt.Fprintf(b, "func %s(lx *lexer, out *%s) bool {\n", parseFuncName(v), v.Name)
	b.WriteString("\tif !lx.expect('[') {\n\t\treturn false\n\t}\n")
	fmt.Fprintf(b, "\tif *out == nil {\n\t\t*out = %s{}\n\t}\n", v.Name)
	b.WriteString("\tfor {\n")
	b.WriteString("\t\tif lx.peekIs(']') {\n\t\t\tlx.pos++\n\t\t\treturn true\n\t\t}\n")
	if v.Cap > 0 {
		fmt.Fprintf(b, "\t\tif len(*out) >= %d {\n\t\t\treturn false\n\t\t}\n", v.Cap)
	}
	fmt.Fprintf(b, "\t\tvar elem %s\n", elemType)
	for _, line := range emitValueParse("elem", v.Elem) {
		b.WriteString("\t\t")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\t\t*out = append(*out, elem)\n")
	b.WriteString("\t\tif lx.expect(',') {\n\t\t\tcontinue\n\t\t}\n")
	b.WriteString("\t\tif lx.expect(']') {\n\t\t\treturn true\n\t\t}\n")
	b.WriteString("\t\treturn false\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n")
}

// emitValueParse renders the statements that parse one value of schema
// v into dst, where dst is an addressable Go expression (a struct field
// or a local variable) — used identically for object field assignment
// and array element population, since Go's address-of syntax works the
// same in both positions.
func emitValueParse(dst string, v *jipg.Value) []string {
	switch v.Kind {
	case jipg.KindObject, jipg.KindArray:
		return []string{
			fmt.Sprintf("if !%s(lx, &%s) {", parseFuncName(v), dst),
			"\treturn false",
			"}",
		}
	case jipg.KindString:
		lines := []string{
			"s, ok := lx.scanString()",
			"if !ok {",
			"\treturn false",
			"}",
		}
		if v.Cap > 0 {
			lines = append(lines,
				fmt.Sprintf("if len(s) > %d {", v.Cap),
				"\treturn false",
				"}",
			)
		}
		lines = append(lines, fmt.Sprintf("%s = s", dst))
		return lines
	case jipg.KindInt:
		return []string{
			"numTok, ok := lx.scanNumber()",
			"if !ok {",
			"\treturn false",
			"}",
			fmt.Sprintf("n, err := strconv.ParseInt(numTok, 10, %d)", v.IntBits),
			"if err != nil {",
			"\treturn false",
			"}",
			fmt.Sprintf("%s = %s(n)", dst, goType(v)),
		}
	case jipg.KindFloat:
		return []string{
			"numTok, ok := lx.scanNumber()",
			"if !ok {",
			"\treturn false",
			"}",
			fmt.Sprintf("f, err := strconv.ParseFloat(numTok, %d)", v.FloatBits),
			"if err != nil {",
			"\treturn false",
			"}",
			fmt.Sprintf("%s = %s(f)", dst, goType(v)),
		}
	case jipg.KindBool:
		return []string{
			"switch {",
			"case lx.matchLiteral(\"true\"):",
			fmt.Sprintf("\t%s = true", dst),
			"case lx.matchLiteral(\"false\"):",
			fmt.Sprintf("\t%s = false", dst),
			"default:",
			"\treturn false",
			"}",
		}
	default:
		return []string{"return false"}
	}
}

// emitTopLevel renders the exported Parse<Name> and Parse<Name>CString
// entry points for one registered schema. An aggregate-rooted schema
// already has a named parse_<name> function to call; a scalar-rooted
// one has no aggregate function of its own, so the scalar-parsing
// block is inlined directly against *out.
func emitTopLevel(b *strings.Builder, def *jipg.ParserDef) {
	root := def.Root
	goT := goType(root)

	fmt.Fprintf(b, "// Parse%s parses data as JSON into out, reporting whether the\n", def.Name)
	fmt.Fprintf(b, "// entire input was consumed by a single well-formed %s value.\n", def.Name)
	b.WriteString("// When it returns false, out may be partly filled in and must not be read.\n")
	fmt.Fprintf(b, "func Parse%s(data []byte, out *%s) bool {\n", def.Name, goT)
	b.WriteString("\tlx := newLexer(data)\n")
	if root.IsAggregate() {
		fmt.Fprintf(b, "\tif !%s(lx, out) {\n\t\treturn false\n\t}\n", parseFuncName(root))
	} else {
		for _, line := range emitValueParse("*out", root) {
			b.WriteString("\t")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	b.WriteString("\tlx.skipWS()\n")
	b.WriteString("\treturn lx.eof()\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "// Parse%sCString is like Parse%s, but data is expected to carry a\n", def.Name, def.Name)
	b.WriteString("// trailing NUL terminator, which is trimmed before parsing begins.\n")
	fmt.Fprintf(b, "func Parse%sCString(data []byte, out *%s) bool {\n", def.Name, goT)
	b.WriteString("\tif n := len(data); n > 0 && data[n-1] == 0 {\n")
	b.WriteString("\t\tdata = data[:n-1]\n")
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\treturn Parse%s(data, out)\n", def.Name)
	b.WriteString("}\n")
}
