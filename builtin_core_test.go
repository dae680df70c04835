package suji

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func evalOK(t *testing.T, ip *Interpreter, src string) Value {
	t.Helper()
	v, err := ip.EvalSource(src)
	if err != nil {
		t.Fatalf("eval %q: unexpected error: %v", src, err)
	}
	return v
}

func Test_Core_Print_WritesToStdoutByDefault(t *testing.T) {
	ip := NewRuntime()
	var buf strings.Builder
	ip.stdout = &Stream{Name: "stdout", Writer: &buf}

	v := evalOK(t, ip, `
		import std:println
		println("hello", "world")
	`)
	if v.Tag != VTNumber {
		t.Fatalf("std:println should return a byte count, got %#v", v)
	}
	if buf.String() != "hello world\n" {
		t.Fatalf("unexpected stdout: %q", buf.String())
	}
}

func Test_Core_Print_ExplicitStreamOverridesDefault(t *testing.T) {
	ip := NewRuntime()
	var out, diverted strings.Builder
	ip.stdout = &Stream{Name: "stdout", Writer: &out}
	diverted.Reset()
	s := StreamVal(&Stream{Name: "custom", Writer: &diverted})
	ip.Global.Define("custom", s)

	evalOK(t, ip, `
		import std:print
		print("hi", custom)
	`)
	if diverted.String() != "hi" {
		t.Fatalf("expected write to diverted stream, got %q", diverted.String())
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout writes, got %q", out.String())
	}
}

func Test_Core_Panic_IsAHardFault(t *testing.T) {
	ip := NewRuntime()
	_, err := ip.EvalSource(`panic("boom")`)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected a hard error containing 'boom', got %v", err)
	}
}

func Test_Core_Try_CapturesPanicAsFailure(t *testing.T) {
	ip := NewRuntime()
	v := evalOK(t, ip, `
		f = || panic("boom")
		try(f)
	`)
	if v.Tag != VTMap {
		t.Fatalf("try should return a map, got %#v", v)
	}
	m := v.Data.(*MapObject)
	ok, _ := m.Get("ok")
	if ok.Tag != VTBool || ok.Data.(bool) != false {
		t.Fatalf("try.ok should be false, got %#v", ok)
	}
	val, _ := m.Get("value")
	if val.Tag != VTStr || !strings.Contains(val.Data.(string), "boom") {
		t.Fatalf("try.value should describe the failure, got %#v", val)
	}
}

func Test_Core_Try_CapturesSuccess(t *testing.T) {
	ip := NewRuntime()
	v := evalOK(t, ip, `
		f = || 40 + 2
		try(f)
	`)
	m := v.Data.(*MapObject)
	ok, _ := m.Get("ok")
	if ok.Data.(bool) != true {
		t.Fatalf("try.ok should be true on success")
	}
	val, _ := m.Get("value")
	if val.Tag != VTNumber {
		t.Fatalf("try.value should carry the return value, got %#v", val)
	}
}

func Test_Core_Clone_DeepCopiesContainers(t *testing.T) {
	ip := NewRuntime()
	v := evalOK(t, ip, `
		orig = {a: {b: 1}}
		cp = clone(orig)
		orig:a:b = 2
		cp
	`)
	m := v.Data.(*MapObject)
	a, _ := m.Get("a")
	b, _ := a.Data.(*MapObject).Get("b")
	if b.Tag != VTNumber || !b.Data.(decimal.Decimal).Equal(decimal.NewFromInt(1)) {
		t.Fatalf("clone should have kept the original nested value, got %#v", b)
	}
}
