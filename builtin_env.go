// builtin_env.go — std:env:var (a zero-argument function returning a
// snapshot map of the process environment; writing to that map does not
// change the environment), std:env:args (program arguments, program name excluded),
// std:env:argv (the full argv, program name included).
//
// Grounded on the teacher's builtin_file.go osEnv/osSetEnv pair
// (os.LookupEnv/os.Setenv), generalized from a single-name getter to a
// full-environment snapshot taken on each call.
package suji

import "os"

func registerEnvBuiltins(ip *Interpreter) {
	ip.RegisterNative("std:env:var", nil, func(_ *Interpreter, _ CallCtx) Value {
		m := NewMapObject()
		for _, kv := range os.Environ() {
			for i := 0; i < len(kv); i++ {
				if kv[i] == '=' {
					m.Set(kv[:i], Str(kv[i+1:]))
					break
				}
			}
		}
		return MapVal(m)
	})

	ip.RegisterValue("std:env:args", ListVal(stringsToValues(os.Args[1:])))
	ip.RegisterValue("std:env:argv", ListVal(stringsToValues(os.Args)))
}

func stringsToValues(ss []string) []Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = Str(s)
	}
	return out
}
