package suji

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Path_Join_JoinsSegments(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:path:join
		join("a", "b", "c.txt")
	`)
	require.NoError(t, err)
	require.Equal(t, "a/b/c.txt", v.Data.(string))
}

func Test_Path_BasenameDirnameExtname(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:path:basename
		import std:path:dirname
		import std:path:extname
		[basename("/a/b/c.txt"), dirname("/a/b/c.txt"), extname("/a/b/c.txt")]
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := v.Data.(*List).Items
	if items[0].Data.(string) != "c.txt" {
		t.Fatalf("basename wrong: %#v", items[0])
	}
	if items[1].Data.(string) != "/a/b" {
		t.Fatalf("dirname wrong: %#v", items[1])
	}
	if items[2].Data.(string) != ".txt" {
		t.Fatalf("extname wrong: %#v", items[2])
	}
}

func Test_Path_Normalize_CollapsesDotSegments(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:path:normalize
		normalize("/a/b/../c/./d")
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Data.(string) != "/a/c/d" {
		t.Fatalf("normalize wrong: %#v", v)
	}
}

func Test_Path_IsAbs_DistinguishesAbsoluteFromRelative(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:path:is_abs
		[is_abs("/a/b"), is_abs("a/b")]
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := v.Data.(*List).Items
	if !items[0].Data.(bool) || items[1].Data.(bool) {
		t.Fatalf("is_abs wrong: %#v", items)
	}
}
