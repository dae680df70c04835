// builtin_crypto.go — std:crypto:md5|sha1|sha256|sha512|hmac_sha256.
//
// Grounded on the teacher's builtin_crypto.go: digests and MACs return
// *raw bytes* in a Str (not hex/base64), the same convention the teacher
// documented ("render with hex/base64 in userland") — std:encoding's
// hex_encode/base64_encode (builtin_encoding.go) is exactly that userland
// rendering step.
package suji

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
)

func registerCryptoBuiltins(ip *Interpreter) {
	registerDigestBuiltin(ip, "std:crypto:md5", func(b []byte) []byte {
		sum := md5.Sum(b)
		return sum[:]
	})
	registerDigestBuiltin(ip, "std:crypto:sha1", func(b []byte) []byte {
		sum := sha1.Sum(b)
		return sum[:]
	})
	registerDigestBuiltin(ip, "std:crypto:sha256", func(b []byte) []byte {
		sum := sha256.Sum256(b)
		return sum[:]
	})
	registerDigestBuiltin(ip, "std:crypto:sha512", func(b []byte) []byte {
		sum := sha512.Sum512(b)
		return sum[:]
	})

	ip.RegisterNative("std:crypto:hmac_sha256", []ParamSpec{{Name: "key"}, {Name: "message"}}, func(_ *Interpreter, ctx CallCtx) Value {
		key, err := wantString(ctx.MustArg("key"), "std:crypto:hmac_sha256")
		if err != nil {
			panic(err)
		}
		msg, err := wantString(ctx.MustArg("message"), "std:crypto:hmac_sha256")
		if err != nil {
			panic(err)
		}
		m := hmac.New(sha256.New, []byte(key))
		m.Write([]byte(msg))
		return Str(string(m.Sum(nil)))
	})
}

func registerDigestBuiltin(ip *Interpreter, name string, sum func([]byte) []byte) {
	ip.RegisterNative(name, []ParamSpec{{Name: "message"}}, func(_ *Interpreter, ctx CallCtx) Value {
		msg, err := wantString(ctx.MustArg("message"), name)
		if err != nil {
			panic(err)
		}
		return Str(string(sum([]byte(msg))))
	})
}
