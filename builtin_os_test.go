package suji

import "testing"

func Test_OS_Name_IsANonEmptyString(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:os:name
		name
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTStr || v.Data.(string) == "" {
		t.Fatalf("expected a non-empty platform name, got %#v", v)
	}
}

func Test_OS_WorkDirAndTmpDir_ReturnStrings(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:os:work_dir
		import std:os:tmp_dir
		[work_dir(), tmp_dir()]
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := v.Data.(*List).Items
	if items[0].Data.(string) == "" || items[1].Data.(string) == "" {
		t.Fatalf("expected non-empty directory strings, got %#v", items)
	}
}

func Test_OS_MkdirThenStat_ReportsDirectory(t *testing.T) {
	dir := "./mkdir_test_target"
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:os:mkdir
		import std:os:stat
		import std:os:rmdir
		mkdir("` + dir + `")
		info = stat("` + dir + `")
		rmdir("` + dir + `")
		info:is_dir
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTBool || !v.Data.(bool) {
		t.Fatalf("expected stat().is_dir to be true, got %#v", v)
	}
}

func Test_OS_Pid_IsANumber(t *testing.T) {
	ip := NewRuntime()
	v, err := ip.EvalSource(`
		import std:os:pid
		pid()
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != VTNumber {
		t.Fatalf("expected pid() to return a number, got %#v", v)
	}
}
