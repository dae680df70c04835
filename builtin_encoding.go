// builtin_encoding.go — std:encoding:base64_encode|base64_decode|
// hex_encode|hex_decode|percent_encode|percent_decode.
//
// Grounded on the teacher's builtin_url_enc.go base64Encode/base64Decode/
// hexEncode/hexDecode pair (same stdlib calls, same "decode errors are
// recoverable data problems" framing), renamed under the std:encoding
// surface; the teacher's urlParse/urlBuild/urlQueryParse/urlQueryString
// URL-object helpers are dropped — no component anywhere needs a parsed
// URL value, only raw percent-encoding (net/url.QueryEscape/QueryUnescape
// for form-style encoding, the same primitive the teacher's query helpers
// were built on).
package suji

import (
	"encoding/base64"
	"encoding/hex"
	"net/url"
)

func registerEncodingBuiltins(ip *Interpreter) {
	ip.RegisterNative("std:encoding:base64_encode", []ParamSpec{{Name: "data"}}, func(_ *Interpreter, ctx CallCtx) Value {
		s, err := wantString(ctx.MustArg("data"), "std:encoding:base64_encode")
		if err != nil {
			panic(err)
		}
		return Str(base64.StdEncoding.EncodeToString([]byte(s)))
	})

	ip.RegisterNative("std:encoding:base64_decode", []ParamSpec{{Name: "text"}}, func(_ *Interpreter, ctx CallCtx) Value {
		s, err := wantString(ctx.MustArg("text"), "std:encoding:base64_decode")
		if err != nil {
			panic(err)
		}
		b, derr := base64.StdEncoding.DecodeString(s)
		if derr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:encoding:base64_decode: %v", derr))
		}
		return Str(string(b))
	})

	ip.RegisterNative("std:encoding:hex_encode", []ParamSpec{{Name: "data"}}, func(_ *Interpreter, ctx CallCtx) Value {
		s, err := wantString(ctx.MustArg("data"), "std:encoding:hex_encode")
		if err != nil {
			panic(err)
		}
		return Str(hex.EncodeToString([]byte(s)))
	})

	ip.RegisterNative("std:encoding:hex_decode", []ParamSpec{{Name: "text"}}, func(_ *Interpreter, ctx CallCtx) Value {
		s, err := wantString(ctx.MustArg("text"), "std:encoding:hex_decode")
		if err != nil {
			panic(err)
		}
		b, derr := hex.DecodeString(s)
		if derr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:encoding:hex_decode: %v", derr))
		}
		return Str(string(b))
	})

	ip.RegisterNative("std:encoding:percent_encode", []ParamSpec{{Name: "data"}}, func(_ *Interpreter, ctx CallCtx) Value {
		s, err := wantString(ctx.MustArg("data"), "std:encoding:percent_encode")
		if err != nil {
			panic(err)
		}
		return Str(url.QueryEscape(s))
	})

	ip.RegisterNative("std:encoding:percent_decode", []ParamSpec{{Name: "text"}}, func(_ *Interpreter, ctx CallCtx) Value {
		s, err := wantString(ctx.MustArg("text"), "std:encoding:percent_decode")
		if err != nil {
			panic(err)
		}
		out, derr := url.QueryUnescape(s)
		if derr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:encoding:percent_decode: %v", derr))
		}
		return Str(out)
	})
}
