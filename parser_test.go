package suji

import "testing"

func parseOne(t *testing.T, src string) S {
	t.Helper()
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q): %v", src, err)
	}
	prog, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

// lastStmt unwraps the top-level "block"/program node to its final statement,
// since suji programs are parsed as a sequence.
func lastStmt(prog S) S {
	if len(prog) == 0 {
		return prog
	}
	last := prog[len(prog)-1]
	if s, ok := last.(S); ok {
		return s
	}
	return prog
}

func tag(n S) string {
	if len(n) == 0 {
		return ""
	}
	s, _ := n[0].(string)
	return s
}

func Test_Parser_Arithmetic_Precedence(t *testing.T) {
	prog := parseOne(t, "1 + 2 * 3")
	n := lastStmt(prog)
	if tag(n) != "binop" {
		t.Fatalf("expected top-level binop, got %#v", n)
	}
	if n[1].(string) != "+" {
		t.Fatalf("expected '+' at the top (lowest precedence), got %#v", n)
	}
	rhs := n[3].(S)
	if tag(rhs) != "binop" || rhs[1].(string) != "*" {
		t.Fatalf("expected '*' nested on the right, got %#v", rhs)
	}
}

func Test_Parser_ListLiteral(t *testing.T) {
	prog := parseOne(t, "[1, 2, 3]")
	n := lastStmt(prog)
	if tag(n) != "list" || len(n) != 4 {
		t.Fatalf("expected a 3-element list node, got %#v", n)
	}
}

func Test_Parser_MapLiteral(t *testing.T) {
	prog := parseOne(t, `{a: 1, b: 2}`)
	n := lastStmt(prog)
	if tag(n) != "maplit" || len(n) != 3 {
		t.Fatalf("expected a 2-pair maplit node, got %#v", n)
	}
	pair := n[1].(S)
	if tag(pair) != "pair" || pair[1].(string) != "a" {
		t.Fatalf("expected first pair keyed 'a', got %#v", pair)
	}
}

func Test_Parser_Lambda_WithParamsAndDefault(t *testing.T) {
	prog := parseOne(t, `|x, y = 1| x + y`)
	n := lastStmt(prog)
	if tag(n) != "lambda" {
		t.Fatalf("expected a lambda node, got %#v", n)
	}
	params := n[1].(S)
	if len(params) != 3 {
		t.Fatalf("expected 2 params, got %#v", params)
	}
	p1 := params[2].(S)
	if tag(p1) != "param" || p1[1].(string) != "y" || p1[2] == nil {
		t.Fatalf("expected param 'y' with a default expr, got %#v", p1)
	}
}

func Test_Parser_MemberAndCall(t *testing.T) {
	prog := parseOne(t, `json:parse("42")`)
	n := lastStmt(prog)
	if tag(n) != "call" {
		t.Fatalf("expected a call node, got %#v", n)
	}
	callee := n[1].(S)
	if tag(callee) != "member" || callee[2].(string) != "parse" {
		t.Fatalf("expected callee to be member 'parse', got %#v", callee)
	}
}

func Test_Parser_Import_WithAlias(t *testing.T) {
	prog := parseOne(t, `import std:json as j`)
	n := lastStmt(prog)
	if tag(n) != "import" || n[1].(string) != "std:json" || n[2].(string) != "j" {
		t.Fatalf("unexpected import node: %#v", n)
	}
}

func Test_Parser_Assign_CreatesAssignNode(t *testing.T) {
	prog := parseOne(t, `x = 5`)
	n := lastStmt(prog)
	if tag(n) != "assign" || n[1].(string) != "=" {
		t.Fatalf("expected a plain assign node, got %#v", n)
	}
}

func Test_Parser_IncompleteInput_IsMarkedIncomplete(t *testing.T) {
	toks, err := Lex(`x = (`)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	_, perr := Parse(toks)
	if perr == nil {
		t.Fatalf("expected a parse error for unterminated input")
	}
	if !IsIncomplete(perr) {
		t.Fatalf("expected an incomplete-input error, got %v", perr)
	}
}
