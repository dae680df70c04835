package suji

import (
	"testing"

	"github.com/shopspring/decimal"
)

func Test_Random_Seed_MakesSequenceDeterministic(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:random:seed
		import std:random:integer
		seed(42)
		a = [integer(1, 100), integer(1, 100), integer(1, 100)]
		seed(42)
		b = [integer(1, 100), integer(1, 100), integer(1, 100)]
		a == b
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTBool || !v.Data.(bool) {
		t.Fatalf("same seed should reproduce the same sequence, got %#v", v)
	}
}

func Test_Random_Integer_StaysInRange(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:random:integer
		xs = [0, 0, 0, 0, 0, 0, 0, 0, 0, 0]::map(|i| integer(5, 10))
		xs::reduce(|acc, x| acc && x >= 5 && x <= 10, true)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTBool || !v.Data.(bool) {
		t.Fatalf("all values should be within [5, 10], got %#v", v)
	}
}

func Test_Random_Pick_ReturnsAnElementOfTheList(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:random:pick
		xs = [1, 2, 3]
		xs::contains(pick(xs))
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTBool || !v.Data.(bool) {
		t.Fatalf("picked value should be a member of the input list")
	}
}

func Test_Random_Shuffle_PreservesLength(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:random:shuffle
		shuffle([1, 2, 3, 4, 5])::len()
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := v.Data.(decimal.Decimal).Float64()
	if n != 5 {
		t.Fatalf("shuffle should preserve length, got %v", n)
	}
}

func Test_Random_Sample_ReturnsKElements(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:random:sample
		sample([1, 2, 3, 4, 5], 3)::len()
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := v.Data.(decimal.Decimal).Float64()
	if n != 3 {
		t.Fatalf("sample(xs, 3) should return 3 elements, got %v", n)
	}
}

func Test_Random_HexString_UsesOnlyHexChars(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:random:hex_string
		hex_string(16)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := v.Data.(string)
	if len(s) != 16 {
		t.Fatalf("expected a 16-char string, got %q", s)
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Fatalf("non-hex character %q in %q", c, s)
		}
	}
}
