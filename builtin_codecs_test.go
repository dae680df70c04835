package suji

import (
	"testing"

	"github.com/shopspring/decimal"
)

func Test_Codecs_YAML_ParseObject(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:yaml:parse
		parse("name: Ada\nage: 30\ntags:\n  - a\n  - b\n")
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.Data.(*MapObject)
	name, _ := m.Get("name")
	if name.Data.(string) != "Ada" {
		t.Fatalf("name wrong: %#v", name)
	}
	age, _ := m.Get("age")
	if !age.Data.(decimal.Decimal).Equal(decimal.NewFromInt(30)) {
		t.Fatalf("age wrong: %#v", age)
	}
	tags, _ := m.Get("tags")
	if len(tags.Data.(*List).Items) != 2 {
		t.Fatalf("tags wrong: %#v", tags)
	}
}

func Test_Codecs_YAML_GenerateThenParseRoundTrips(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:yaml:generate
		import std:yaml:parse
		parse(generate({x: 1, y: "two"}))
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.Data.(*MapObject)
	y, _ := m.Get("y")
	if y.Data.(string) != "two" {
		t.Fatalf("round trip lost 'y': %#v", y)
	}
}

func Test_Codecs_TOML_Parse(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:toml:parse
		parse('title = "demo"' + "\ncount = 3\n")
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.Data.(*MapObject)
	title, _ := m.Get("title")
	if title.Data.(string) != "demo" {
		t.Fatalf("title wrong: %#v", title)
	}
}

func Test_Codecs_TOML_GenerateRejectsNonMapTop(t *testing.T) {
	ip := NewRuntime()
	_, err := ip.EvalSource(`
		import std:toml:generate
		generate([1, 2, 3])
	`)
	if err == nil {
		t.Fatalf("expected an error generating TOML from a non-map top level")
	}
}

func Test_Codecs_CSV_ParseAndGenerate(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:csv:parse
		import std:csv:generate
		rows = parse("a,b\nc,d\n");
		[rows::len(), generate(rows)]
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := v.Data.(*List).Items
	n, _ := items[0].Data.(decimal.Decimal).Float64()
	if n != 2 {
		t.Fatalf("expected 2 CSV rows, got %v", n)
	}
	if items[1].Data.(string) != "a,b\nc,d\n" {
		t.Fatalf("CSV generate wrong: %#v", items[1])
	}
}
