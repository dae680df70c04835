package suji

import (
	"testing"
)

func lexTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q) error: %v", src, err)
	}
	var out []TokenType
	for _, tok := range toks {
		if tok.Type == TEOF {
			continue
		}
		out = append(out, tok.Type)
	}
	return out
}

func Test_Lexer_Punctuation(t *testing.T) {
	got := lexTypes(t, `a:b [1, 2] {x: 1} |x| x + 1`)
	want := []TokenType{
		TIDENT, TCOLON, TIDENT,
		TLBRACKET, TNUMBER, TCOMMA, TNUMBER, TRBRACKET,
		TLBRACE, TIDENT, TCOLON, TNUMBER, TRBRACE,
		TPIPE, TIDENT, TPIPE, TIDENT, TPLUS, TNUMBER,
	}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch\n got: %v\nwant: %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func Test_Lexer_Keywords(t *testing.T) {
	got := lexTypes(t, `import std:io as io export break continue return true false nil`)
	want := []TokenType{
		TIMPORT, TIDENT, TCOLON, TIDENT, TAS, TIDENT,
		TEXPORT, TBREAK, TCONTINUE, TRETURN, TTRUE, TFALSE, TNIL,
	}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch\n got: %v\nwant: %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func Test_Lexer_CommentsSkipped(t *testing.T) {
	got := lexTypes(t, "# a comment\n1 + 1 # trailing\n")
	want := []TokenType{TNUMBER, TPLUS, TNUMBER}
	if len(got) != len(want) {
		t.Fatalf("expected comments stripped, got %v", got)
	}
}

func Test_Lexer_StringTemplate(t *testing.T) {
	toks, err := Lex(`"hello ${name}!"`)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	if len(toks) < 1 || toks[0].Type != TSTRING {
		t.Fatalf("expected a single TSTRING token, got %#v", toks)
	}
	lit, ok := toks[0].Literal.(*StringLit)
	if !ok {
		t.Fatalf("expected *StringLit literal, got %T", toks[0].Literal)
	}
	var sawExpr bool
	for _, seg := range lit.Segments {
		if seg.IsExpr {
			sawExpr = true
			if seg.ExprSrc != "name" {
				t.Fatalf("expected interpolated expr source %q, got %q", "name", seg.ExprSrc)
			}
		}
	}
	if !sawExpr {
		t.Fatalf("expected at least one interpolated segment, got %#v", lit.Segments)
	}
}
