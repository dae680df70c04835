// builtin_dotenv.go — std:dotenv:load: parse a ".env"-style file into a
// map. A missing file is a recoverable boundary (returns {}, not an
// error) — the same case carved out for `import` of a missing .env file.
//
// No dotenv/godotenv library appears anywhere in the retrieval pack (a
// grep of every example's go.mod/go.sum turns up nothing), so this is
// built directly on os/bufio the way the teacher builds every other
// small text-format reader — see DESIGN.md.
package suji

import (
	"bufio"
	"os"
	"strings"
)

func registerDotenvBuiltins(ip *Interpreter) {
	ip.RegisterNative("std:dotenv:load", []ParamSpec{{Name: "path"}}, func(_ *Interpreter, ctx CallCtx) Value {
		path, err := wantString(ctx.MustArg("path"), "std:dotenv:load")
		if err != nil {
			panic(err)
		}
		m := NewMapObject()
		f, oerr := os.Open(path)
		if oerr != nil {
			if os.IsNotExist(oerr) {
				return MapVal(m)
			}
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:dotenv:load: %v", oerr))
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, val, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			val = strings.TrimSpace(val)
			val = strings.TrimPrefix(strings.TrimSuffix(val, `"`), `"`)
			val = strings.TrimPrefix(strings.TrimSuffix(val, "'"), "'")
			m.Set(key, Str(val))
		}
		if serr := sc.Err(); serr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:dotenv:load: %v", serr))
		}
		return MapVal(m)
	})
}
