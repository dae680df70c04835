package suji

import "testing"

func Test_Runtime_EveryNamespaceIsReachable(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:math:sqrt
		import std:path:basename
		import std:json:generate
		import std:encoding:hex_encode
		import std:crypto:sha256
		import std:uuid:v4
		import std:time:now
		[
			sqrt(9),
			basename("/x/y.txt"),
			generate({ok: true}),
			hex_encode("a"),
			sha256("a")::len(),
			v4()::len(),
			now() != nil,
		]
	`)
	if err != nil {
		t.Fatalf("unexpected error exercising std namespaces: %v", err)
	}
	if v.Tag != VTList || len(v.Data.(*List).Items) != 7 {
		t.Fatalf("expected a 7-element result list, got %#v", v)
	}
}

func Test_Runtime_BareBuiltinsAreGlobal(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		f = |x| x * 2
		try(f)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTMap {
		t.Fatalf("try should still be reachable without import, got %#v", v)
	}
}

func Test_Runtime_StdImportAliasDoesNotLeakIntoGlobal(t *testing.T) {
	ip := NewRuntime()
	_, err := ip.EvalSource(`import std:math as m`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = ip.EvalSource(`m:sqrt(4)`)
	if err == nil {
		t.Fatalf("expected 'm' from a previous EvalSource call to not persist")
	}
}
