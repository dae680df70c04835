// builtin_core.go — std:print/std:println (the standard-library surface's
// output primitives), plus the bare, always-visible core builtins
// panic/try/clone. The latter three are defined directly in Core rather
// than under a "std:" prefix, so they're lexically reachable from every
// environment without an import — Core is every Env's ultimate parent —
// and `import __builtins__:panic` (see modules.go) reaches the same
// binding by name even where a local variable has shadowed it.
//
// Grounded on the teacher's builtin_core.go for the panic/try/clone idiom
// (panic-as-hard-fault, try-catches-a-panic-into-a-result-map,
// clone-deep-copies-containers), rewired to the new Value/Env shape and to
// suji's print/println variadic + trailing-stream-argument convention.
package suji

import "strings"

func registerCoreBuiltins(ip *Interpreter) {
	ip.RegisterNative("std:print", nil, func(ip *Interpreter, ctx CallCtx) Value {
		args, stream := splitTrailingStream(ip, ctx.Args())
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = ip.displayString(a)
		}
		n, err := stream.Write([]byte(strings.Join(parts, " ")))
		if err != nil {
			panic(rtErr(ErrStreamError, 0, 0, "std:print: %v", err))
		}
		return IntNum(int64(n))
	})

	ip.RegisterNative("std:println", nil, func(ip *Interpreter, ctx CallCtx) Value {
		args, stream := splitTrailingStream(ip, ctx.Args())
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = ip.displayString(a)
		}
		line := strings.Join(parts, " ") + "\n"
		n, err := stream.Write([]byte(line))
		if err != nil {
			panic(rtErr(ErrStreamError, 0, 0, "std:println: %v", err))
		}
		return IntNum(int64(n))
	})

	ip.RegisterNative("panic", []ParamSpec{{Name: "message"}}, func(_ *Interpreter, ctx CallCtx) Value {
		msg := "error"
		if m, ok := ctx.Arg("message"); ok && m.Tag == VTStr {
			msg = m.Data.(string)
		}
		panic(rtErr(ErrInvalidOperation, 0, 0, "%s", msg))
	})

	ip.RegisterNative("try", []ParamSpec{{Name: "f"}}, func(ip *Interpreter, ctx CallCtx) Value {
		fn := ctx.MustArg("f")
		out := NewMapObject()
		v, err := ip.callValue(fn, nil, ctx.Env())
		if err != nil {
			out.Set("ok", Bool(false))
			out.Set("value", Str(err.Error()))
			return MapVal(out)
		}
		out.Set("ok", Bool(true))
		out.Set("value", v)
		return MapVal(out)
	})

	ip.RegisterNative("clone", []ParamSpec{{Name: "x"}}, func(_ *Interpreter, ctx CallCtx) Value {
		return cloneValue(ctx.MustArg("x"))
	})
}

// splitTrailingStream implements print/println's "optional final stream
// argument, default stdout" convention: if the last argument is a Stream,
// it is the sink and the remaining arguments are the values to display.
func splitTrailingStream(ip *Interpreter, args []Value) ([]Value, *Stream) {
	if n := len(args); n > 0 && args[n-1].Tag == VTStream {
		return args[:n-1], args[n-1].Data.(*Stream)
	}
	return args, ip.stdout
}

// cloneValue deep-copies Lists/Maps/Tuples (reference kinds); everything
// else is returned as-is since suji's other value kinds are either
// immutable or carry identity semantics (functions, streams, modules).
func cloneValue(v Value) Value {
	switch v.Tag {
	case VTList:
		l := v.Data.(*List)
		out := make([]Value, len(l.Items))
		for i, it := range l.Items {
			out[i] = cloneValue(it)
		}
		return ListVal(out)
	case VTMap:
		m := v.Data.(*MapObject)
		out := NewMapObject()
		for _, k := range m.Keys {
			out.Set(k, cloneValue(m.Entries[k]))
		}
		return MapVal(out)
	case VTTuple:
		items := v.Data.([]Value)
		out := make([]Value, len(items))
		for i, it := range items {
			out[i] = cloneValue(it)
		}
		return TupleVal(out)
	default:
		return v
	}
}
