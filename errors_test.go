package suji

import (
	"strings"
	"testing"
)

func Test_WrapErrorWithName_RuntimeError_ShowsKindAndCaret(t *testing.T) {
	src := "total = 0\navg = total / 0\nprintln(avg)\n"
	err := &RuntimeError{Kind: ErrDivideByZero, Line: 2, Col: 13, Msg: "division by zero"}

	out := WrapErrorWithName(err, "script.si", src).Error()
	if !strings.Contains(out, "RUNTIME ERROR (DivideByZero)") {
		t.Fatalf("expected kind in header, got:\n%s", out)
	}
	if !strings.Contains(out, "script.si") {
		t.Fatalf("expected source name in header, got:\n%s", out)
	}
	if !strings.Contains(out, "avg = total / 0") {
		t.Fatalf("expected offending line rendered, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret marker, got:\n%s", out)
	}
}

func Test_WrapErrorWithName_ParseError(t *testing.T) {
	src := "x = (\n"
	err := &ParseError{Line: 1, Col: 6, Msg: "unexpected end of input"}
	out := WrapErrorWithName(err, "<main>", src).Error()
	if !strings.Contains(out, "PARSE ERROR") || !strings.Contains(out, "unexpected end of input") {
		t.Fatalf("unexpected parse error rendering:\n%s", out)
	}
}

func Test_WrapErrorWithName_LexError(t *testing.T) {
	src := "x = `\n"
	err := &LexError{Line: 1, Col: 5, Msg: "unterminated string"}
	out := WrapErrorWithName(err, "<main>", src).Error()
	if !strings.Contains(out, "LEXICAL ERROR") {
		t.Fatalf("unexpected lex error rendering:\n%s", out)
	}
}

func Test_WrapErrorWithName_IncompletePassesThrough(t *testing.T) {
	inner := &ParseError{Line: 1, Col: 1, Msg: "unexpected end of input, expected an expression"}
	err := &errIncomplete{inner}
	out := WrapErrorWithName(err, "<repl>", "x =")
	if out != err {
		t.Fatalf("errIncomplete should pass through unwrapped, got %#v", out)
	}
}

func Test_WrapErrorWithName_UnknownErrorPassesThrough(t *testing.T) {
	plain := errPlain("boom")
	out := WrapErrorWithName(plain, "<main>", "whatever")
	if out != plain {
		t.Fatalf("non-diagnostic errors should pass through unchanged")
	}
}

type errPlain string

func (e errPlain) Error() string { return string(e) }
