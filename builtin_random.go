// builtin_random.go — std:random: seed/random/integer/pick/shuffle/sample
// and fixed-alphabet string generators.
//
// Grounded on the teacher's builtin_misc.go registerRandomBuiltins (a
// package-level *rand.Rand guarded by a sync.Mutex, seeded from
// time.Now().UnixNano() at startup, reseedable via an explicit seed
// builtin), generalized from the teacher's seedRand/randInt/randFloat pair
// to the full std:random surface named by the standard-library registry.
package suji

import (
	"math/rand"
	"sync"
	"time"
)

// rngState is the interpreter's shared random source: one *rand.Rand
// guarded by a mutex, since builtins may be called concurrently from
// pipeline-stage goroutines.
type rngState struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newRNGState() *rngState {
	return &rngState{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *rngState) Seed(n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Seed(n)
}

func (s *rngState) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *rngState) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *rngState) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}

const (
	alphaChars        = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numericChars      = "0123456789"
	alphanumericChars = alphaChars + numericChars
	hexChars          = "0123456789abcdef"
)

func randomStringFrom(s *rngState, n int, alphabet string) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[s.Intn(len(alphabet))]
	}
	return string(out)
}

func registerRandomBuiltins(ip *Interpreter) {
	ip.RegisterNative("std:random:seed", []ParamSpec{{Name: "n"}}, func(ip *Interpreter, ctx CallCtx) Value {
		n, err := wantNumber(ctx.MustArg("n"), "std:random:seed")
		if err != nil {
			panic(err)
		}
		ip.rng.Seed(n.IntPart())
		return Null
	})

	ip.RegisterNative("std:random:random", nil, func(ip *Interpreter, _ CallCtx) Value {
		return FloatNum(ip.rng.Float64())
	})

	ip.RegisterNative("std:random:integer", []ParamSpec{{Name: "min"}, {Name: "max"}}, func(ip *Interpreter, ctx CallCtx) Value {
		lo, err := wantNumber(ctx.MustArg("min"), "std:random:integer")
		if err != nil {
			panic(err)
		}
		hi, err := wantNumber(ctx.MustArg("max"), "std:random:integer")
		if err != nil {
			panic(err)
		}
		lo64, hi64 := lo.IntPart(), hi.IntPart()
		if hi64 < lo64 {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:random:integer: max must be >= min"))
		}
		span := hi64 - lo64 + 1
		return IntNum(lo64 + int64(ip.rng.Intn(int(span))))
	})

	ip.RegisterNative("std:random:pick", []ParamSpec{{Name: "xs"}}, func(ip *Interpreter, ctx CallCtx) Value {
		xs := ctx.MustArg("xs")
		if xs.Tag != VTList {
			panic(rtErr(ErrTypeError, 0, 0, "std:random:pick expects a list, got %s", xs.Tag))
		}
		items := xs.Data.(*List).Items
		if len(items) == 0 {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:random:pick: empty list"))
		}
		return items[ip.rng.Intn(len(items))]
	})

	ip.RegisterNative("std:random:shuffle", []ParamSpec{{Name: "xs"}}, func(ip *Interpreter, ctx CallCtx) Value {
		xs := ctx.MustArg("xs")
		if xs.Tag != VTList {
			panic(rtErr(ErrTypeError, 0, 0, "std:random:shuffle expects a list, got %s", xs.Tag))
		}
		src := xs.Data.(*List).Items
		out := make([]Value, len(src))
		copy(out, src)
		ip.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return ListVal(out)
	})

	ip.RegisterNative("std:random:sample", []ParamSpec{{Name: "xs"}, {Name: "k"}}, func(ip *Interpreter, ctx CallCtx) Value {
		xs := ctx.MustArg("xs")
		if xs.Tag != VTList {
			panic(rtErr(ErrTypeError, 0, 0, "std:random:sample expects a list, got %s", xs.Tag))
		}
		kd, err := wantNumber(ctx.MustArg("k"), "std:random:sample")
		if err != nil {
			panic(err)
		}
		k := int(kd.IntPart())
		src := xs.Data.(*List).Items
		if k < 0 || k > len(src) {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:random:sample: k must be between 0 and %d", len(src)))
		}
		pool := make([]Value, len(src))
		copy(pool, src)
		ip.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		return ListVal(pool[:k])
	})

	registerRandomStringBuiltin(ip, "std:random:string", alphanumericChars)
	registerRandomStringBuiltin(ip, "std:random:hex_string", hexChars)
	registerRandomStringBuiltin(ip, "std:random:alpha_string", alphaChars)
	registerRandomStringBuiltin(ip, "std:random:numeric_string", numericChars)
	registerRandomStringBuiltin(ip, "std:random:alphanumeric_string", alphanumericChars)
}

func registerRandomStringBuiltin(ip *Interpreter, name, alphabet string) {
	ip.RegisterNative(name, []ParamSpec{{Name: "n"}}, func(ip *Interpreter, ctx CallCtx) Value {
		n, err := wantNumber(ctx.MustArg("n"), name)
		if err != nil {
			panic(err)
		}
		nn := int(n.IntPart())
		if nn < 0 {
			panic(rtErr(ErrInvalidOperation, 0, 0, "%s: n must be >= 0", name))
		}
		return Str(randomStringFrom(ip.rng, nn, alphabet))
	})
}
