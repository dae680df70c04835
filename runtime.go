// runtime.go — assembles a fully-initialized Interpreter: every std:
// namespace plus the bare Core builtins, wired onto the engine surface
// NewInterpreter() already sets up (Core/Global/stdio streams/rng).
//
// Grounded on the teacher's runtime.go NewRuntime() (a flat list of
// register*Builtins(ip) calls run once at startup), stripped of the
// teacher's prelude-loading step (LoadPrelude fetched and evaluated a
// filesystem/http(s) "std" source file; here every std: member is a
// native Go registration, so there is no separate prelude source to
// load) and its opaque Handle type (superseded by suji's first-class
// Stream/Regex/Fun/Module value kinds).
package suji

// NewRuntime returns an Interpreter with the full standard library and
// core builtins installed.
func NewRuntime() *Interpreter {
	ip := NewInterpreter()

	registerCoreBuiltins(ip)
	registerIOBuiltins(ip)
	registerRandomBuiltins(ip)
	registerCryptoBuiltins(ip)
	registerJSONBuiltins(ip)
	registerCodecBuiltins(ip)
	registerUUIDBuiltins(ip)
	registerEncodingBuiltins(ip)
	registerTimeBuiltins(ip)
	registerPathBuiltins(ip)
	registerMathBuiltins(ip)
	registerOSBuiltins(ip)
	registerEnvBuiltins(ip)
	registerDotenvBuiltins(ip)

	return ip
}
