package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macsencasaus/jipg-go"
)

func TestEmitObjectParser_DispatchesOnSboxHash(t *testing.T) {
	root := jipg.Object(
		jipg.Field("name", jipg.String()),
		jipg.Field("age", jipg.Int()),
	)
	root.Head = true
	root.Name = "Person"
	defs := []*jipg.ParserDef{{Name: "Person", Root: root}}
	jipg.AssignNames(defs)

	order, err := aggregateEmissionOrder(defs)
	if err != nil {
		t.Fatal(err)
	}

	out := emitParsers(order, defs)
	assert.Contains(t, out, "func parse_Person(lx *lexer, out *Person) bool {")
	assert.Contains(t, out, "switch sboxHash([]byte(key)) {")
	assert.Contains(t, out, "default:")
	assert.Contains(t, out, "lx.skipValue()")
	assert.Contains(t, out, "func ParsePerson(data []byte, out *Person) bool {")
	assert.Contains(t, out, "func ParsePersonCString(data []byte, out *Person) bool {")
}

func TestEmitArrayParser_CapacityBound(t *testing.T) {
	root := jipg.ArrayCap(jipg.Int(), 3)
	root.Head = true
	root.Name = "Scores"
	defs := []*jipg.ParserDef{{Name: "Scores", Root: root}}
	jipg.AssignNames(defs)

	order, err := aggregateEmissionOrder(defs)
	if err != nil {
		t.Fatal(err)
	}

	out := emitParsers(order, defs)
	assert.Contains(t, out, "if len(*out) >= 3 {")
	assert.Contains(t, out, "func ParseScores(data []byte, out *Scores) bool {")
}

// TestEmitTopLevel_ScalarRootInlinesParse exercises emitTopLevel's
// non-aggregate branch: a schema whose root is a bare scalar has no
// parse_<name> function of its own, so ParseAge must inline the
// scalar parse directly instead of delegating to one.
func TestEmitTopLevel_ScalarRootInlinesParse(t *testing.T) {
	root := jipg.Int()
	root.Head = true
	root.Name = "Age"
	defs := []*jipg.ParserDef{{Name: "Age", Root: root}}
	jipg.AssignNames(defs)

	order, err := aggregateEmissionOrder(defs)
	if err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, order)

	out := emitParsers(order, defs)
	assert.Contains(t, out, "func ParseAge(data []byte, out *int64) bool {")
	assert.Contains(t, out, "numTok, ok := lx.scanNumber()")
	assert.Contains(t, out, "strconv.ParseInt(numTok, 10, 64)")
	assert.NotContains(t, out, "func parse_Age(")
	assert.Contains(t, out, "func ParseAgeCString(data []byte, out *int64) bool {")
}

func TestEmitValueParse_IntUsesParseIntDirectly(t *testing.T) {
	lines := emitValueParse("out.Age", jipg.Int())
	joined := ""
	for _, l := range lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "strconv.ParseInt(numTok, 10, 64)")
	assert.NotContains(t, joined, "ParseFloat")
}

func TestEmitValueParse_BoolMatchesLiteral(t *testing.T) {
	lines := emitValueParse("out.Active", jipg.Bool())
	joined := ""
	for _, l := range lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, `lx.matchLiteral("true")`)
	assert.Contains(t, joined, `lx.matchLiteral("false")`)
}
