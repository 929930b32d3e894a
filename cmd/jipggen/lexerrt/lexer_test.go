package lexerrt

import "testing"

func TestScanString_RawNoUnescape(t *testing.T) {
	lx := newLexer([]byte(`"Ada\n"`))
	s, ok := lx.scanString()
	if !ok {
		t.Fatal("expected scanString to succeed")
	}
	if s != `Ada\n` {
		t.Fatalf("expected raw backslash sequence, got %q", s)
	}
}

func TestScanString_EscapedQuoteDoesNotTerminateEarly(t *testing.T) {
	lx := newLexer([]byte(`"a\"b" `))
	s, ok := lx.scanString()
	if !ok {
		t.Fatal("expected scanString to succeed")
	}
	if s != `a\"b` {
		t.Fatalf("expected the escaped quote to stay inside the string, got %q", s)
	}
	lx.skipWS()
	if !lx.eof() {
		t.Fatalf("expected cursor past the closing quote, pos=%d len=%d", lx.pos, len(lx.data))
	}
}

func TestScanString_TrailingBackslashFails(t *testing.T) {
	lx := newLexer([]byte(`"a\`))
	if _, ok := lx.scanString(); ok {
		t.Fatal("expected scanString to fail on an unterminated trailing escape")
	}
}

func TestSkipValue_ObjectWithEscapedQuoteInKeyAndValue(t *testing.T) {
	lx := newLexer([]byte(`{"a\"b":"c\"d","e":1} `))
	if !lx.skipValue() {
		t.Fatal("expected skipValue to consume the whole object")
	}
	lx.skipWS()
	if !lx.eof() {
		t.Fatalf("expected lexer fully consumed after skipValue, pos=%d len=%d", lx.pos, len(lx.data))
	}
}

func TestScanNumber_AcceptsSignedExponent(t *testing.T) {
	for _, tok := range []string{"1e-3", "1E+3", "1e3", "-2.5e-10"} {
		lx := newLexer([]byte(tok))
		got, ok := lx.scanNumber()
		if !ok {
			t.Fatalf("expected scanNumber(%q) to succeed", tok)
		}
		if got != tok {
			t.Fatalf("scanNumber(%q) = %q, want full token consumed", tok, got)
		}
	}
}

func TestMatchLiteral_AtCurrentCursorNotBufferStart(t *testing.T) {
	lx := newLexer([]byte(`xxxtrue`))
	lx.pos = 3
	if !lx.matchLiteral("true") {
		t.Fatal("expected matchLiteral to match at the current cursor")
	}
	if !lx.eof() {
		t.Fatalf("expected cursor to advance past the literal, pos=%d", lx.pos)
	}
}

func TestMatchLiteral_FailsWithoutMatch(t *testing.T) {
	lx := newLexer([]byte(`false`))
	if lx.matchLiteral("true") {
		t.Fatal("expected matchLiteral(\"true\") to fail against \"false\"")
	}
}

func TestSkipValue_UnknownObjectKeyStaysSynchronized(t *testing.T) {
	lx := newLexer([]byte(`{"a":1,"b":[1,2,3],"c":{"d":"e"}} `))
	lx.pos = 0
	if !lx.skipValue() {
		t.Fatal("expected skipValue to consume the whole object")
	}
	lx.skipWS()
	if !lx.eof() {
		t.Fatalf("expected lexer fully consumed after skipValue, pos=%d len=%d", lx.pos, len(lx.data))
	}
}

func TestSkipValue_TrailingCommaTolerated(t *testing.T) {
	for _, input := range []string{`[1,2,3]`, `[1,2,3,]`, `{"a":1}`, `{"a":1,}`} {
		lx := newLexer([]byte(input))
		if !lx.skipValue() {
			t.Fatalf("expected skipValue(%q) to succeed", input)
		}
		if !lx.eof() {
			t.Fatalf("expected skipValue(%q) to consume the whole input", input)
		}
	}
}

func TestSkipValue_TruncatedInputFails(t *testing.T) {
	lx := newLexer([]byte(`{"a":`))
	if lx.skipValue() {
		t.Fatal("expected skipValue to fail on truncated input")
	}
}

func TestPeekIsAndExpect_SkipWhitespaceFirst(t *testing.T) {
	lx := newLexer([]byte("   ]"))
	if !lx.peekIs(']') {
		t.Fatal("expected peekIs to see past leading whitespace")
	}
	if !lx.expect(']') {
		t.Fatal("expected expect to consume past leading whitespace")
	}
	if !lx.eof() {
		t.Fatal("expected cursor at eof after consuming the bracket")
	}
}
