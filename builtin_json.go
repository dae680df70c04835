// builtin_json.go — std:json:parse|generate.
//
// Grounded on the teacher's builtin_json.go jsonParse/jsonStringify pair
// (decode-to-any/json.Unmarshal, encode-via-json.Marshal), stripped of the
// teacher's Type/JSON-Schema conversion machinery (suji has no Type value
// kind to convert to/from) and rewired onto suji's Value shape — where the
// teacher needed json.Number to split Int vs Num, suji's single VTNumber
// decimal.Decimal needs no such split.
package suji

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

func registerJSONBuiltins(ip *Interpreter) {
	ip.RegisterNative("std:json:parse", []ParamSpec{{Name: "text"}}, func(_ *Interpreter, ctx CallCtx) Value {
		text, err := wantString(ctx.MustArg("text"), "std:json:parse")
		if err != nil {
			panic(err)
		}
		dec := json.NewDecoder(strings.NewReader(text))
		dec.UseNumber()
		var x any
		if derr := dec.Decode(&x); derr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:json:parse: %v", derr))
		}
		return goJSONToValue(x)
	})

	ip.RegisterNative("std:json:generate", []ParamSpec{{Name: "value"}}, func(_ *Interpreter, ctx CallCtx) Value {
		gv, err := valueToGoJSON(ctx.MustArg("value"))
		if err != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:json:generate: %v", err))
		}
		b, merr := json.Marshal(gv)
		if merr != nil {
			panic(rtErr(ErrInvalidOperation, 0, 0, "std:json:generate: %v", merr))
		}
		return Str(string(b))
	})
}

// valueToGoJSON converts a suji Value into a Go value the json package can
// marshal. Functions, streams, regexes, and modules have no JSON form.
func valueToGoJSON(v Value) (any, error) {
	switch v.Tag {
	case VTNull:
		return nil, nil
	case VTBool:
		return v.Data.(bool), nil
	case VTNumber:
		d := v.Data.(decimal.Decimal)
		return json.Number(d.String()), nil
	case VTStr:
		return v.Data.(string), nil
	case VTList:
		items := v.Data.(*List).Items
		out := make([]any, len(items))
		for i, it := range items {
			gv, err := valueToGoJSON(it)
			if err != nil {
				return nil, err
			}
			out[i] = gv
		}
		return out, nil
	case VTTuple:
		items := v.Data.([]Value)
		out := make([]any, len(items))
		for i, it := range items {
			gv, err := valueToGoJSON(it)
			if err != nil {
				return nil, err
			}
			out[i] = gv
		}
		return out, nil
	case VTMap:
		m := v.Data.(*MapObject)
		out := make(map[string]any, len(m.Keys))
		for _, k := range m.Keys {
			gv, err := valueToGoJSON(m.Entries[k])
			if err != nil {
				return nil, err
			}
			out[k] = gv
		}
		return out, nil
	default:
		return nil, rtErr(ErrTypeError, 0, 0, "value of kind %s has no JSON representation", v.Tag)
	}
}

// goJSONToValue converts a decoded JSON value (decoder has UseNumber set)
// into a suji Value: objects become insertion-ordered Maps, arrays become
// Lists, numbers become a single VTNumber decimal regardless of whether
// the source text held an integer or a float.
func goJSONToValue(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null
	case bool:
		return Bool(v)
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return Null
		}
		return Num(d)
	case string:
		return Str(v)
	case []any:
		out := make([]Value, len(v))
		for i, el := range v {
			out[i] = goJSONToValue(el)
		}
		return ListVal(out)
	case map[string]any:
		m := NewMapObject()
		for k, vv := range v {
			m.Set(k, goJSONToValue(vv))
		}
		return MapVal(m)
	default:
		return Null
	}
}
