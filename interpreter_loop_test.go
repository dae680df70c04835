package suji

import (
	"testing"

	"github.com/shopspring/decimal"
)

func Test_Loop_ThroughMapWithTwoBindings_DestructuresKeyAndValue(t *testing.T) {
	ip := NewRuntime()
	v := evalOK(t, ip, `
		out = []
		loop through {a: 1, b: 2} with k, v {
			out::push([k, v])
		}
		out
	`)
	items := v.Data.(*List).Items
	if len(items) != 2 {
		t.Fatalf("expected 2 pairs, got %#v", items)
	}
	pair0 := items[0].Data.(*List).Items
	if pair0[0].Data.(string) != "a" || !pair0[1].Data.(decimal.Decimal).Equal(decimal.NewFromInt(1)) {
		t.Fatalf("first pair should be (a, 1), got %#v", pair0)
	}
}

func Test_Loop_ThroughListWithTwoBindings_IsTypeError(t *testing.T) {
	ip := NewRuntime()
	_, err := ip.EvalSource(`
		loop through [1, 2, 3] with a, b {
			a
		}
	`)
	if err == nil {
		t.Fatalf("expected a type error looping a list with two bindings")
	}
}

func Test_Loop_ThroughListWithOneBinding_BindsRawItem(t *testing.T) {
	ip := NewRuntime()
	v := evalOK(t, ip, `
		out = []
		loop through [10, 20, 30] with x {
			out::push(x * 2)
		}
		out
	`)
	items := v.Data.(*List).Items
	if len(items) != 3 || items[0].Data.(decimal.Decimal).IntPart() != 20 {
		t.Fatalf("unexpected loop result: %#v", items)
	}
}
