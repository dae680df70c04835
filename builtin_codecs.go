// builtin_codecs.go — std:yaml:parse|generate, std:toml:parse|generate,
// std:csv:parse|generate.
//
// These three namespaces share the std:json namespace's decode-to-Go-
// value/encode-from-Go-value shape (encoding goes through builtin_json.go's
// valueToGoJSON; decoding YAML and TOML goes through goYAMLToValue below,
// since yaml.v3 and BurntSushi toml hand back plain Go numbers rather than
// json.Number) but each reaches for the ecosystem
// library the pack actually uses for that format: gopkg.in/yaml.v3 is
// wired the same way other_examples' frontmatter/config readers use it
// (yaml.Unmarshal into an `any`, yaml.Marshal back out), and
// github.com/BurntSushi/toml is this module's go.mod's TOML dependency.
// CSV has no ecosystem library anywhere in the pack, so it stays on
// encoding/csv like every repo that touches CSV does.
package suji

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

func registerCodecBuiltins(ip *Interpreter) {
	ip.RegisterNative("std:yaml:parse", []ParamSpec{{Name: "text"}}, func(_ *Interpreter, ctx CallCtx) Value {
		text, err := wantString(ctx.MustArg("text"), "std:yaml:parse")
		if err != nil {
			panic(err)
		}
		var x any
		if uerr := yaml.Unmarshal([]byte(text), &x); uerr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:yaml:parse: %v", uerr))
		}
		return goYAMLToValue(x)
	})

	ip.RegisterNative("std:yaml:generate", []ParamSpec{{Name: "value"}}, func(_ *Interpreter, ctx CallCtx) Value {
		gv, err := valueToGoJSON(ctx.MustArg("value"))
		if err != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:yaml:generate: %v", err))
		}
		b, merr := yaml.Marshal(gv)
		if merr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:yaml:generate: %v", merr))
		}
		return Str(string(b))
	})

	ip.RegisterNative("std:toml:parse", []ParamSpec{{Name: "text"}}, func(_ *Interpreter, ctx CallCtx) Value {
		text, err := wantString(ctx.MustArg("text"), "std:toml:parse")
		if err != nil {
			panic(err)
		}
		var x map[string]any
		if _, derr := toml.Decode(text, &x); derr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:toml:parse: %v", derr))
		}
		return goYAMLToValue(x)
	})

	ip.RegisterNative("std:toml:generate", []ParamSpec{{Name: "value"}}, func(_ *Interpreter, ctx CallCtx) Value {
		v := ctx.MustArg("value")
		if v.Tag != VTMap {
			panic(rtErr(ErrTypeError, 0, 0, "std:toml:generate expects a map at the top level, got %s", v.Tag))
		}
		gv, err := valueToGoJSON(v)
		if err != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:toml:generate: %v", err))
		}
		var buf bytes.Buffer
		if eerr := toml.NewEncoder(&buf).Encode(gv); eerr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:toml:generate: %v", eerr))
		}
		return Str(buf.String())
	})

	ip.RegisterNative("std:csv:parse", []ParamSpec{{Name: "text"}}, func(_ *Interpreter, ctx CallCtx) Value {
		text, err := wantString(ctx.MustArg("text"), "std:csv:parse")
		if err != nil {
			panic(err)
		}
		r := csv.NewReader(strings.NewReader(text))
		records, rerr := r.ReadAll()
		if rerr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:csv:parse: %v", rerr))
		}
		rows := make([]Value, len(records))
		for i, rec := range records {
			cells := make([]Value, len(rec))
			for j, c := range rec {
				cells[j] = Str(c)
			}
			rows[i] = ListVal(cells)
		}
		return ListVal(rows)
	})

	ip.RegisterNative("std:csv:generate", []ParamSpec{{Name: "rows"}}, func(_ *Interpreter, ctx CallCtx) Value {
		rowsVal := ctx.MustArg("rows")
		if rowsVal.Tag != VTList {
			panic(rtErr(ErrTypeError, 0, 0, "std:csv:generate expects a list of rows, got %s", rowsVal.Tag))
		}
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		for _, rowVal := range rowsVal.Data.(*List).Items {
			if rowVal.Tag != VTList {
				panic(rtErr(ErrTypeError, 0, 0, "std:csv:generate expects each row to be a list, got %s", rowVal.Tag))
			}
			cells := rowVal.Data.(*List).Items
			rec := make([]string, len(cells))
			for j, c := range cells {
				s, err := wantString(c, "std:csv:generate")
				if err != nil {
					panic(err)
				}
				rec[j] = s
			}
			if werr := w.Write(rec); werr != nil {
				panic(rtErr(ErrInvalidOperation, 0, 0, "std:csv:generate: %v", werr))
			}
		}
		w.Flush()
		if werr := w.Error(); werr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:csv:generate: %v", werr))
		}
		return Str(buf.String())
	})
}

// goYAMLToValue converts a yaml.v3- or toml-decoded value into a suji Value.
// yaml.v3 decodes mappings as map[string]any when keys are strings (the
// common case for config/document YAML); goJSONToValue's map[string]any
// and []any cases already cover that shape, but yaml.v3 and toml hand back
// plain scalars (not json.Number), so numbers route through IntNum/FloatNum
// here instead of through goJSONToValue's json.Number case.
func goYAMLToValue(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null
	case bool:
		return Bool(v)
	case int:
		return IntNum(int64(v))
	case int64:
		return IntNum(v)
	case float64:
		return FloatNum(v)
	case string:
		return Str(v)
	case []any:
		out := make([]Value, len(v))
		for i, el := range v {
			out[i] = goYAMLToValue(el)
		}
		return ListVal(out)
	case map[string]any:
		m := NewMapObject()
		for k, vv := range v {
			m.Set(k, goYAMLToValue(vv))
		}
		return MapVal(m)
	default:
		return Null
	}
}
