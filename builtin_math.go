// builtin_math.go — std:math:PI|E|sin|cos|tan|asin|acos|atan|log|log10|
// exp|sqrt.
//
// Grounded on the teacher's builtin_misc.go registerMathBuiltins (PI/E as
// plain Core values, a shared un1 helper wrapping one-argument math.*
// functions), extended with asin/acos/atan/log10 to reach the standard-
// library registry's full named surface. The teacher's pow is dropped:
// it isn't named by the registry and numberMethod already exposes
// `::pow` (methods.go), so a free std:math:pow would just duplicate it.
package suji

import "math"

func registerMathBuiltins(ip *Interpreter) {
	ip.RegisterValue("std:math:PI", FloatNum(math.Pi))
	ip.RegisterValue("std:math:E", FloatNum(math.E))

	registerMathUnary(ip, "std:math:sin", math.Sin)
	registerMathUnary(ip, "std:math:cos", math.Cos)
	registerMathUnary(ip, "std:math:tan", math.Tan)
	registerMathUnary(ip, "std:math:asin", math.Asin)
	registerMathUnary(ip, "std:math:acos", math.Acos)
	registerMathUnary(ip, "std:math:atan", math.Atan)
	registerMathUnary(ip, "std:math:log", math.Log)
	registerMathUnary(ip, "std:math:log10", math.Log10)
	registerMathUnary(ip, "std:math:exp", math.Exp)
	registerMathUnary(ip, "std:math:sqrt", math.Sqrt)
}

func registerMathUnary(ip *Interpreter, name string, f func(float64) float64) {
	ip.RegisterNative(name, []ParamSpec{{Name: "x"}}, func(_ *Interpreter, ctx CallCtx) Value {
		d, err := wantNumber(ctx.MustArg("x"), name)
		if err != nil {
			panic(err)
		}
		x, _ := d.Float64()
		return FloatNum(f(x))
	})
}
