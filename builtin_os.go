// builtin_os.go — std:os:name|hostname|uptime_ms|tmp_dir|home_dir|
// work_dir|exit|pid|ppid|uid|gid|stat|rm|mkdir|rmdir.
//
// Grounded on the teacher's builtin_file.go (stat/mkdir/remove/cwd/
// tempDir — same os.Stat/os.MkdirAll/os.Remove/os.Getwd/os.TempDir calls,
// same map shape for stat's result) and builtin_misc.go's
// registerProcessBuiltins (exit via os.Exit), extended with the process/
// host identity queries (hostname, pid, ppid, uid, gid, uptime, platform
// name) the teacher's file builtins never needed.
package suji

import (
	"os"
	"runtime"
	"time"

	"github.com/shopspring/decimal"
)

var processStart = time.Now()

func registerOSBuiltins(ip *Interpreter) {
	ip.RegisterValue("std:os:name", Str(runtime.GOOS))

	ip.RegisterNative("std:os:hostname", nil, func(_ *Interpreter, _ CallCtx) Value {
		h, err := os.Hostname()
		if err != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:os:hostname: %v", err))
		}
		return Str(h)
	})

	ip.RegisterNative("std:os:uptime_ms", nil, func(_ *Interpreter, _ CallCtx) Value {
		return IntNum(time.Since(processStart).Milliseconds())
	})

	ip.RegisterNative("std:os:tmp_dir", nil, func(_ *Interpreter, _ CallCtx) Value {
		return Str(os.TempDir())
	})

	ip.RegisterNative("std:os:home_dir", nil, func(_ *Interpreter, _ CallCtx) Value {
		h, err := os.UserHomeDir()
		if err != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:os:home_dir: %v", err))
		}
		return Str(h)
	})

	ip.RegisterNative("std:os:work_dir", nil, func(_ *Interpreter, _ CallCtx) Value {
		wd, err := os.Getwd()
		if err != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:os:work_dir: %v", err))
		}
		return Str(wd)
	})

	ip.RegisterNative("std:os:exit", []ParamSpec{{Name: "code"}}, func(_ *Interpreter, ctx CallCtx) Value {
		code := 0
		if v, ok := ctx.Arg("code"); ok && v.Tag == VTNumber {
			code = int(v.Data.(decimal.Decimal).IntPart())
		}
		os.Exit(code)
		return Null
	})

	ip.RegisterNative("std:os:pid", nil, func(_ *Interpreter, _ CallCtx) Value {
		return IntNum(int64(os.Getpid()))
	})
	ip.RegisterNative("std:os:ppid", nil, func(_ *Interpreter, _ CallCtx) Value {
		return IntNum(int64(os.Getppid()))
	})
	ip.RegisterNative("std:os:uid", nil, func(_ *Interpreter, _ CallCtx) Value {
		return IntNum(int64(os.Getuid()))
	})
	ip.RegisterNative("std:os:gid", nil, func(_ *Interpreter, _ CallCtx) Value {
		return IntNum(int64(os.Getgid()))
	})

	ip.RegisterNative("std:os:stat", []ParamSpec{{Name: "path"}}, func(_ *Interpreter, ctx CallCtx) Value {
		p, err := wantString(ctx.MustArg("path"), "std:os:stat")
		if err != nil {
			panic(err)
		}
		info, serr := os.Stat(p)
		if serr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:os:stat: %v", serr))
		}
		m := NewMapObject()
		m.Set("is_dir", Bool(info.IsDir()))
		m.Set("size", IntNum(info.Size()))
		m.Set("mod_time_ms", IntNum(info.ModTime().UnixMilli()))
		m.Set("mode", IntNum(int64(info.Mode())))
		return MapVal(m)
	})

	ip.RegisterNative("std:os:mkdir", []ParamSpec{{Name: "path"}}, func(_ *Interpreter, ctx CallCtx) Value {
		p, err := wantString(ctx.MustArg("path"), "std:os:mkdir")
		if err != nil {
			panic(err)
		}
		if merr := os.MkdirAll(p, 0o755); merr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:os:mkdir: %v", merr))
		}
		return Null
	})

	ip.RegisterNative("std:os:rm", []ParamSpec{{Name: "path"}}, func(_ *Interpreter, ctx CallCtx) Value {
		p, err := wantString(ctx.MustArg("path"), "std:os:rm")
		if err != nil {
			panic(err)
		}
		if rerr := os.Remove(p); rerr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:os:rm: %v", rerr))
		}
		return Null
	})

	ip.RegisterNative("std:os:rmdir", []ParamSpec{{Name: "path"}}, func(_ *Interpreter, ctx CallCtx) Value {
		p, err := wantString(ctx.MustArg("path"), "std:os:rmdir")
		if err != nil {
			panic(err)
		}
		if rerr := os.Remove(p); rerr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:os:rmdir: %v", rerr))
		}
		return Null
	})
}
