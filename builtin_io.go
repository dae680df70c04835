// builtin_io.go — std:io: stdio streams and file open/close.
//
// Grounded on the teacher's builtin_io_net.go file-handle registrations
// (fileH wrapping *os.File with buffered reader/writer), adapted to wrap a
// suji Stream instead of a bespoke handle struct, since streams are a
// first-class value kind here (values.go) rather than an opaque handle.
package suji

import (
	"bufio"
	"os"
)

func newStdioStream(name string) *Stream {
	switch name {
	case "stdin":
		r := bufio.NewReader(os.Stdin)
		return &Stream{Name: "stdin", Reader: r, IsStdio: true}
	case "stdout":
		return &Stream{Name: "stdout", Writer: os.Stdout, IsStdio: true}
	case "stderr":
		return &Stream{Name: "stderr", Writer: os.Stderr, IsStdio: true}
	default:
		return &Stream{Name: name}
	}
}

func registerIOBuiltins(ip *Interpreter) {
	ip.RegisterValue("std:io:stdin", StreamVal(ip.stdin))
	ip.RegisterValue("std:io:stdout", StreamVal(ip.stdout))
	ip.RegisterValue("std:io:stderr", StreamVal(ip.stderr))

	ip.RegisterNative("std:io:open", []ParamSpec{
		{Name: "path"},
		{Name: "create"},
		{Name: "truncate"},
	}, func(ip *Interpreter, ctx CallCtx) Value {
		path, err := wantString(ctx.MustArg("path"), "std:io:open")
		if err != nil {
			panic(err)
		}
		create := wantBoolOr(ctx, "create", false)
		truncate := wantBoolOr(ctx, "truncate", false)

		flag := os.O_RDWR
		if create {
			flag |= os.O_CREATE
		}
		if truncate {
			flag |= os.O_TRUNC
		}
		f, oerr := os.OpenFile(path, flag, 0o644)
		if oerr != nil {
			panic(rtErr(ErrStreamError, 0, 0, "cannot open %q: %v", path, oerr))
		}
		s := &Stream{Name: path, Reader: bufio.NewReader(f), Writer: f, Closer: f}
		return StreamVal(s)
	})

	ip.RegisterNative("std:io:read_file", []ParamSpec{{Name: "path"}}, func(ip *Interpreter, ctx CallCtx) Value {
		path, err := wantString(ctx.MustArg("path"), "std:io:read_file")
		if err != nil {
			panic(err)
		}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			panic(rtErr(ErrStreamError, 0, 0, "cannot read %q: %v", path, rerr))
		}
		return Str(string(data))
	})

	ip.RegisterNative("std:io:write_file", []ParamSpec{{Name: "path"}, {Name: "content"}}, func(ip *Interpreter, ctx CallCtx) Value {
		path, err := wantString(ctx.MustArg("path"), "std:io:write_file")
		if err != nil {
			panic(err)
		}
		content, err := wantString(ctx.MustArg("content"), "std:io:write_file")
		if err != nil {
			panic(err)
		}
		if werr := os.WriteFile(path, []byte(content), 0o644); werr != nil {
			panic(rtErr(ErrStreamError, 0, 0, "cannot write %q: %v", path, werr))
		}
		return Null
	})
}
