// builtin_uuid.go — std:uuid:v4|v5|is_valid.
//
// No repo in the retrieval pack generates or validates UUIDs, so this
// namespace has no in-pack grounding; github.com/google/uuid is named
// directly as the ecosystem's de facto standard for this concern (see
// DESIGN.md).
package suji

import "github.com/google/uuid"

func registerUUIDBuiltins(ip *Interpreter) {
	ip.RegisterNative("std:uuid:v4", nil, func(_ *Interpreter, _ CallCtx) Value {
		return Str(uuid.New().String())
	})

	ip.RegisterNative("std:uuid:v5", []ParamSpec{{Name: "namespace"}, {Name: "name"}}, func(_ *Interpreter, ctx CallCtx) Value {
		ns, err := wantString(ctx.MustArg("namespace"), "std:uuid:v5")
		if err != nil {
			panic(err)
		}
		name, err := wantString(ctx.MustArg("name"), "std:uuid:v5")
		if err != nil {
			panic(err)
		}
		nsUUID, perr := uuid.Parse(ns)
		if perr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:uuid:v5: invalid namespace UUID %q: %v", ns, perr))
		}
		return Str(uuid.NewSHA1(nsUUID, []byte(name)).String())
	})

	ip.RegisterNative("std:uuid:is_valid", []ParamSpec{{Name: "s"}}, func(_ *Interpreter, ctx CallCtx) Value {
		s, err := wantString(ctx.MustArg("s"), "std:uuid:is_valid")
		if err != nil {
			panic(err)
		}
		_, perr := uuid.Parse(s)
		return Bool(perr == nil)
	})
}
