package suji

import "testing"

func Test_Pipeline_ShellStagesChainThroughStdout(t *testing.T) {
	ip := NewRuntime()
	v := evalOK(t, ip, "`echo hello` | `tr a-z A-Z`")
	if v.Tag != VTStr || v.Data.(string) != "HELLO\n" {
		t.Fatalf("unexpected pipeline result: %#v", v)
	}
}

func Test_Pipeline_ClosureSinkStageWinsOverStdout(t *testing.T) {
	ip := NewRuntime()
	v := evalOK(t, ip, `
		import std:io:stdin
		shout = || {
			line = stdin()::read_line()
			line::upper()
		}
		`+"`echo hi`"+` | shout()
	`)
	if v.Tag != VTStr {
		t.Fatalf("expected the closure's return value, got %#v", v)
	}
	if v.Data.(string) != "HI" {
		t.Fatalf("unexpected pipeline result: %q", v.Data.(string))
	}
}

func Test_Pipeline_ClosureThatOnlyPrintsFallsBackToStdout(t *testing.T) {
	ip := NewRuntime()
	v := evalOK(t, ip, `
		import std:io:stdin
		import std:println
		echoer = || {
			line = stdin()::read_line()
			println(line)
			loop { break }
		}
		`+"`echo hi`"+` | echoer()
	`)
	if v.Tag != VTStr {
		t.Fatalf("expected stdout fallback, got %#v", v)
	}
	if v.Data.(string) != "hi\n" {
		t.Fatalf("unexpected pipeline stdout result: %q", v.Data.(string))
	}
}
