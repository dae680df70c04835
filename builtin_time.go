// builtin_time.go — std:time:now|sleep|parse_iso|format_iso.
//
// Grounded on the teacher's builtin_time.go nowMillis/sleep/
// timeFormatRFC3339/timeParseRFC3339 (same UnixMilli/time.Sleep/
// RFC3339Nano calls), narrowed to the four names the standard-library
// registry specifies — the teacher's nowNanos and dateNow component-map
// helpers are dropped (Open Question, see DESIGN.md): std:time:now's
// return shape is resolved to epoch-milliseconds, the same unit sleep and
// the ISO helpers already use, rather than a component map.
package suji

import "time"

func registerTimeBuiltins(ip *Interpreter) {
	ip.RegisterNative("std:time:now", nil, func(_ *Interpreter, _ CallCtx) Value {
		return IntNum(time.Now().UnixMilli())
	})

	ip.RegisterNative("std:time:sleep", []ParamSpec{{Name: "ms"}}, func(_ *Interpreter, ctx CallCtx) Value {
		d, err := wantNumber(ctx.MustArg("ms"), "std:time:sleep")
		if err != nil {
			panic(err)
		}
		time.Sleep(time.Duration(d.IntPart()) * time.Millisecond)
		return Null
	})

	ip.RegisterNative("std:time:format_iso", []ParamSpec{{Name: "millis"}}, func(_ *Interpreter, ctx CallCtx) Value {
		d, err := wantNumber(ctx.MustArg("millis"), "std:time:format_iso")
		if err != nil {
			panic(err)
		}
		t := time.Unix(0, d.IntPart()*int64(time.Millisecond)).UTC()
		return Str(t.Format(time.RFC3339Nano))
	})

	ip.RegisterNative("std:time:parse_iso", []ParamSpec{{Name: "text"}}, func(_ *Interpreter, ctx CallCtx) Value {
		s, err := wantString(ctx.MustArg("text"), "std:time:parse_iso")
		if err != nil {
			panic(err)
		}
		t, perr := time.Parse(time.RFC3339Nano, s)
		if perr != nil {
			t, perr = time.Parse(time.RFC3339, s)
		}
		if perr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:time:parse_iso: %v", perr))
		}
		return IntNum(t.UnixNano() / int64(time.Millisecond))
	})
}
