package suji

import (
	"testing"

	"github.com/shopspring/decimal"
)

func Test_Env_Var_ContainsProcessEnvironment(t *testing.T) {
	t.Setenv("SUJI_TEST_VAR", "hi there")

	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:env:var
		var():SUJI_TEST_VAR
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTStr || v.Data.(string) != "hi there" {
		t.Fatalf("expected the env var snapshot to carry SUJI_TEST_VAR, got %#v", v)
	}
}

func Test_Env_Args_ExcludesProgramName(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:env:args
		import std:env:argv
		argv::len() - args::len()
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := v.Data.(decimal.Decimal).Float64()
	if n != 1 {
		t.Fatalf("argv should have exactly one more element (the program name) than args, got diff %v", n)
	}
}
