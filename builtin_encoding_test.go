package suji

import "testing"

func Test_Encoding_Base64_RoundTrips(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:encoding:base64_encode
		import std:encoding:base64_decode
		base64_decode(base64_encode("hello world"))
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Data.(string) != "hello world" {
		t.Fatalf("base64 round trip wrong: %#v", v)
	}
}

func Test_Encoding_Hex_RoundTrips(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:encoding:hex_encode
		import std:encoding:hex_decode
		[hex_encode("ab"), hex_decode(hex_encode("ab"))]
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := v.Data.(*List).Items
	if items[0].Data.(string) != "6162" {
		t.Fatalf("hex_encode wrong: %#v", items[0])
	}
	if items[1].Data.(string) != "ab" {
		t.Fatalf("hex round trip wrong: %#v", items[1])
	}
}

func Test_Encoding_Percent_RoundTrips(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:encoding:percent_encode
		import std:encoding:percent_decode
		percent_decode(percent_encode("a b/c"))
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Data.(string) != "a b/c" {
		t.Fatalf("percent round trip wrong: %#v", v)
	}
}

func Test_Encoding_Base64Decode_InvalidInputIsAnError(t *testing.T) {
	ip := NewRuntime()
	_, err := ip.EvalSource(`
		import std:encoding:base64_decode
		base64_decode("not valid base64!!")
	`)
	if err == nil {
		t.Fatalf("expected an error decoding invalid base64")
	}
}
