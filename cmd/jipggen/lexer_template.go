package main

import (
	"fmt"
	"strings"

	"github.com/macsencasaus/jipg-go"
	"github.com/macsencasaus/jipg-go/cmd/jipggen/lexerrt"
)

// sboxSource renders jipg.Sbox and jipg.SboxHash as a standalone Go
// declaration for embedding into generated output. The emitted parser
// never imports this repository's own jipg package at runtime, so the
// table is reproduced by value here — built straight from jipg.Sbox
// rather than copied by hand, so the two can never drift apart.
func sboxSource() string {
	var b strings.Builder
	b.WriteString("var sbox = [256]uint64{\n")
	for i := 0; i < len(jipg.Sbox); i += 4 {
		b.WriteByte('\t')
		for j := i; j < i+4; j++ {
			fmt.Fprintf(&b, "0x%016X, ", jipg.Sbox[j])
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n\n")
	b.WriteString("func sboxHash(key []byte) uint64 {\n")
	b.WriteString("\tvar h uint64\n")
	b.WriteString("\tfor _, b := range key {\n")
	b.WriteString("\t\th = (h + sbox[b]) * 3\n")
	b.WriteString("\t}\n")
	b.WriteString("\treturn h\n")
	b.WriteString("}\n")
	return b.String()
}

// lexerSource is lexerrt's tested lexer body, ready to splice into a
// generated parser file — the per-schema variability lives entirely in
// the object/array parser functions parseremit.go builds around it.
var lexerSource = lexerrt.Source
