package internal

import (
	"errors"
	"testing"
)

func scanSource(source string) *interpreterState {
	state := newInterpreterState(source, &testPrinter{})
	newLexer(state).scan()
	return state
}

func checkTokens(t *testing.T, source string, expected ...tokenType) {
	t.Helper()
	state := scanSource(source)
	if len(state.tokens) != len(expected) {
		t.Fatalf("%q: expected %d tokens, got %d: %v", source, len(expected), len(state.tokens), state.tokens)
	}
	for i, tk := range state.tokens {
		if tk.token != expected[i] {
			t.Errorf("%q: token %d should be %s instead of %s", source, i, expected[i], tk.token)
		}
	}
}

func TestScanKinds(t *testing.T) {
	checkTokens(t, "", tkEOF)
	checkTokens(t, "(){},.-+;/*", tkLeftParen, tkRightParen, tkLeftBrace, tkRightBrace,
		tkComma, tkDot, tkMinus, tkPlus, tkSemicolon, tkSlash, tkStar, tkEOF)
	checkTokens(t, "! != = == > >= < <=", tkBang, tkBangEqual, tkEqual, tkEqualEqual,
		tkGreater, tkGreaterEqual, tkLess, tkLessEqual, tkEOF)
	checkTokens(t, "and class else false fun for if nil or print return true var while",
		tkAnd, tkClass, tkElse, tkFalse, tkFun, tkFor, tkIf, tkNil, tkOr, tkPrint,
		tkReturn, tkTrue, tkVar, tkWhile, tkEOF)
	checkTokens(t, `var _a1 = "s" + 12.5;`, tkVar, tkIdentifier, tkEqual, tkString, tkPlus,
		tkNumber, tkSemicolon, tkEOF)
	checkTokens(t, "orchid andy", tkIdentifier, tkIdentifier, tkEOF)
}

func TestScanLiterals(t *testing.T) {
	state := scanSource(`"hello" 12 3.25 7.`)
	if state.tokens[0].literal != loxString("hello") || state.tokens[0].lexeme != `"hello"` {
		t.Errorf("bad string token %v", &state.tokens[0])
	}
	if state.tokens[1].literal != loxNumber(12) {
		t.Errorf("bad number token %v", &state.tokens[1])
	}
	if state.tokens[2].literal != loxNumber(3.25) {
		t.Errorf("bad number token %v", &state.tokens[2])
	}
	// a trailing dot is not part of the number
	if state.tokens[3].literal != loxNumber(7) || state.tokens[4].token != tkDot {
		t.Errorf("bad trailing dot tokens %v %v", &state.tokens[3], &state.tokens[4])
	}
}

func TestScanLinesAndComments(t *testing.T) {
	state := scanSource("a\n// comment ( )\nb /* one\ntwo */ c\n\n")
	expected := []struct {
		kind tokenType
		line int
	}{
		{tkIdentifier, 1},
		{tkIdentifier, 3},
		{tkIdentifier, 4},
		{tkEOF, 6},
	}
	if len(state.tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %v", len(expected), state.tokens)
	}
	for i, e := range expected {
		if state.tokens[i].token != e.kind || state.tokens[i].line != e.line {
			t.Errorf("token %d: expected %s on line %d, got %v", i, e.kind, e.line, &state.tokens[i])
		}
	}
	if !state.Valid() {
		t.Errorf("unexpected errors %v", state.errors)
	}

	// unterminated block comment runs to the end
	checkTokens(t, "a /* never closed", tkIdentifier, tkEOF)
}

func TestScanErrors(t *testing.T) {
	state := scanSource("var a = 1 # 2;\nprint @;")
	if len(state.errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", state.errors)
	}
	for _, err := range state.errors {
		if !errors.Is(err, errUnexpectedChar) {
			t.Errorf("expected unexpected character, got %v", err)
		}
	}
	if state.errors[0].Error() != "[line 1] Error: Unexpected character '#'." {
		t.Errorf("bad message %q", state.errors[0].Error())
	}
	if state.errors[1].(*ScanError).Line() != 2 {
		t.Errorf("second error should be on line 2")
	}
	// scanning goes on after the bad characters
	if n := len(state.tokens); n != 9 {
		t.Errorf("expected 9 tokens, got %d: %v", n, state.tokens)
	}

	// multi byte characters are reported whole
	state = scanSource("λ")
	if len(state.errors) != 1 || state.errors[0].Error() != "[line 1] Error: Unexpected character 'λ'." {
		t.Errorf("bad error for multi byte character %v", state.errors)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	state := scanSource("print \"open;\nprint 1;")
	if len(state.errors) != 1 || !errors.Is(state.errors[0], errUnterminatedString) {
		t.Fatalf("expected an unterminated string error, got %v", state.errors)
	}
	if state.errors[0].Error() != "[line 1] Error: Unterminated string." {
		t.Errorf("bad message %q", state.errors[0].Error())
	}
	// the next line is still scanned, on the right line
	checkLine := state.tokens[len(state.tokens)-2]
	if checkLine.token != tkSemicolon || checkLine.line != 2 {
		t.Errorf("unexpected tail token %v", &checkLine)
	}
}

func TestScanNormalizesSource(t *testing.T) {
	// "e" followed by a combining acute accent composes into a single rune
	state := scanSource("print \"e\u0301\";")
	if !state.Valid() {
		t.Fatalf("unexpected errors %v", state.errors)
	}
	if state.tokens[1].literal != loxString("\u00e9") {
		t.Errorf("string should be normalized, got %q", state.tokens[1].literal)
	}
}
