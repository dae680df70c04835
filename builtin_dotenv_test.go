package suji

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Dotenv_Load_ParsesKeyValueLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# a comment\nNAME=Ada\nQUOTED=\"hello world\"\n\nEMPTY_LINE_ABOVE=1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:dotenv:load
		load("` + filepath.ToSlash(path) + `")
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.Data.(*MapObject)
	name, _ := m.Get("NAME")
	if name.Data.(string) != "Ada" {
		t.Fatalf("NAME wrong: %#v", name)
	}
	quoted, _ := m.Get("QUOTED")
	if quoted.Data.(string) != "hello world" {
		t.Fatalf("QUOTED should have its surrounding quotes trimmed, got %#v", quoted)
	}
}

func Test_Dotenv_Load_MissingFileReturnsEmptyMap(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:dotenv:load
		load("/definitely/not/a/real/.env")
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.Data.(*MapObject)
	if len(m.Keys) != 0 {
		t.Fatalf("expected an empty map for a missing dotenv file, got %#v", m)
	}
}
