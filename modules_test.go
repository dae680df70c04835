package suji

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func writeTestFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

// chdirForTest switches the process working directory to dir (import
// resolution for "<main>" sources is relative to cwd) and returns a
// closure that restores the original directory.
func chdirForTest(t *testing.T, dir string) func() {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	return func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("restore Chdir: %v", err)
		}
	}
}

func Test_Modules_ImportBuiltins_ReachesCoreBinding(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`import __builtins__:panic`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTFun {
		t.Fatalf("expected __builtins__:panic to resolve to a function, got %#v", v)
	}
}

func Test_Modules_ImportBuiltins_UnknownNameErrors(t *testing.T) {
	ip := NewRuntime()
	_, err := ip.EvalSource(`import __builtins__:does_not_exist`)
	if err == nil || !strings.Contains(err.Error(), "no such builtin") {
		t.Fatalf("expected 'no such builtin' error, got %v", err)
	}
}

func Test_Modules_ImportStd_NamespaceStripsPrefix(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:math
		math:sqrt(4)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTNumber {
		t.Fatalf("expected a number, got %#v", v)
	}
	f, _ := v.Data.(decimal.Decimal).Float64()
	if f != 2 {
		t.Fatalf("sqrt(4) should be 2, got %v", f)
	}
}

func Test_Modules_ImportStd_AliasRenamesBinding(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:path as p
		p:basename("/a/b/c.txt")
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTStr || v.Data.(string) != "c.txt" {
		t.Fatalf("basename wrong: %#v", v)
	}
}

func Test_Modules_ImportMissingFile_IsImportError(t *testing.T) {
	ip := NewRuntime()
	_, err := ip.EvalSource(`import totally:not:a:real:module`)
	if err == nil || !strings.Contains(err.Error(), "ImportError") {
		t.Fatalf("expected an ImportError, got %v", err)
	}
}

func Test_Modules_ImportFile_ExportsBecomeModuleMembers(t *testing.T) {
	dir := t.TempDir()
	if err := writeTestFile(dir+"/greet.si", `export { name: "Ada" }`); err != nil {
		t.Fatalf("setup: %v", err)
	}
	cwd := chdirForTest(t, dir)
	defer cwd()

	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import greet
		greet:name
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTStr || v.Data.(string) != "Ada" {
		t.Fatalf("expected exported name, got %#v", v)
	}
}
