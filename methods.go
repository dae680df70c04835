// methods.go — the uniform (kind, method-name) dispatch table for suji's
// built-in value methods (`value::method(args)`), plus the is_<kind>()
// predicates that replace the teacher's dropped type-introspection system.
//
// Grounded on the teacher's builtin_core.go/builtin_misc.go registration
// style (one function per concern, panic-on-misuse caught at the call
// boundary in interpreter_exec.go's callValue) but reshaped as a flat
// dispatch keyed by (ValueTag, method name) rather than free functions,
// since suji's grammar calls methods as `recv::name(...)` instead of
// `name(recv, ...)`.
package suji

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

func callMethod(ip *Interpreter, recv Value, name string, args []Value) (Value, error) {
	if name == "to_string" {
		return Str(ip.displayString(recv)), nil
	}
	if strings.HasPrefix(name, "is_") {
		return Bool(isKindName(recv.Tag, name[3:])), nil
	}

	switch recv.Tag {
	case VTNumber:
		return numberMethod(recv, name, args)
	case VTStr:
		return stringMethod(ip, recv, name, args)
	case VTList:
		return listMethod(ip, recv, name, args)
	case VTMap:
		return mapMethod(recv, name, args)
	case VTTuple:
		return tupleMethod(recv, name, args)
	case VTRegex:
		return regexMethod(recv, name, args)
	case VTStream:
		return streamMethod(recv, name, args)
	default:
		return Null, rtErr(ErrUndefined, 0, 0, "value of kind %s has no method %q", recv.Tag, name)
	}
}

func isKindName(tag ValueTag, kind string) bool {
	switch kind {
	case "nil":
		return tag == VTNull
	case "bool":
		return tag == VTBool
	case "number":
		return tag == VTNumber
	case "string":
		return tag == VTStr
	case "list":
		return tag == VTList
	case "map":
		return tag == VTMap
	case "tuple":
		return tag == VTTuple
	case "regex":
		return tag == VTRegex
	case "function":
		return tag == VTFun
	case "stream":
		return tag == VTStream
	case "module":
		return tag == VTModule
	default:
		return false
	}
}

func argAt(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return Null
}

func wantNumber(v Value, who string) (decimal.Decimal, error) {
	if v.Tag != VTNumber {
		return decimal.Decimal{}, rtErr(ErrTypeError, 0, 0, "%s expects a number argument, got %s", who, v.Tag)
	}
	return v.Data.(decimal.Decimal), nil
}

func wantString(v Value, who string) (string, error) {
	if v.Tag != VTStr {
		return "", rtErr(ErrTypeError, 0, 0, "%s expects a string argument, got %s", who, v.Tag)
	}
	return v.Data.(string), nil
}

////////////////////////////////////////////////////////////////////////////////
//                                 NUMBER
////////////////////////////////////////////////////////////////////////////////

func numberMethod(recv Value, name string, args []Value) (Value, error) {
	d := recv.Data.(decimal.Decimal)
	switch name {
	case "abs":
		return Num(d.Abs()), nil
	case "round":
		places := int32(0)
		if len(args) > 0 {
			p, err := wantNumber(args[0], "round")
			if err != nil {
				return Null, err
			}
			places = int32(p.IntPart())
		}
		return Num(d.Round(places)), nil
	case "floor":
		return Num(d.Floor()), nil
	case "ceil":
		return Num(d.Ceil()), nil
	case "sign":
		return IntNum(int64(d.Sign())), nil
	case "is_zero":
		return Bool(d.IsZero()), nil
	case "is_negative":
		return Bool(d.IsNegative()), nil
	case "to_int":
		return IntNum(d.IntPart()), nil
	case "to_float":
		f, _ := d.Float64()
		return FloatNum(f), nil
	case "pow":
		exp, err := wantNumber(argAt(args, 0), "pow")
		if err != nil {
			return Null, err
		}
		return Num(d.Pow(exp)), nil
	case "min":
		other, err := wantNumber(argAt(args, 0), "min")
		if err != nil {
			return Null, err
		}
		if d.Cmp(other) <= 0 {
			return recv, nil
		}
		return Num(other), nil
	case "max":
		other, err := wantNumber(argAt(args, 0), "max")
		if err != nil {
			return Null, err
		}
		if d.Cmp(other) >= 0 {
			return recv, nil
		}
		return Num(other), nil
	default:
		return Null, rtErr(ErrUndefined, 0, 0, "number has no method %q", name)
	}
}

////////////////////////////////////////////////////////////////////////////////
//                                 STRING
////////////////////////////////////////////////////////////////////////////////

func stringMethod(ip *Interpreter, recv Value, name string, args []Value) (Value, error) {
	s := recv.Data.(string)
	switch name {
	case "len":
		return IntNum(int64(len([]rune(s)))), nil
	case "upper":
		return Str(strings.ToUpper(s)), nil
	case "lower":
		return Str(strings.ToLower(s)), nil
	case "trim":
		return Str(strings.TrimSpace(s)), nil
	case "trim_start":
		return Str(strings.TrimLeft(s, " \t\r\n")), nil
	case "trim_end":
		return Str(strings.TrimRight(s, " \t\r\n")), nil
	case "contains":
		sub, err := wantString(argAt(args, 0), "contains")
		if err != nil {
			return Null, err
		}
		return Bool(strings.Contains(s, sub)), nil
	case "starts_with":
		sub, err := wantString(argAt(args, 0), "starts_with")
		if err != nil {
			return Null, err
		}
		return Bool(strings.HasPrefix(s, sub)), nil
	case "ends_with":
		sub, err := wantString(argAt(args, 0), "ends_with")
		if err != nil {
			return Null, err
		}
		return Bool(strings.HasSuffix(s, sub)), nil
	case "replace":
		old, err := wantString(argAt(args, 0), "replace")
		if err != nil {
			return Null, err
		}
		new, err := wantString(argAt(args, 1), "replace")
		if err != nil {
			return Null, err
		}
		return Str(strings.ReplaceAll(s, old, new)), nil
	case "split":
		sep, err := wantString(argAt(args, 0), "split")
		if err != nil {
			return Null, err
		}
		parts := strings.Split(s, sep)
		out := make([]Value, len(parts))
		for i, p := range parts {
			out[i] = Str(p)
		}
		return ListVal(out), nil
	case "repeat":
		n, err := wantNumber(argAt(args, 0), "repeat")
		if err != nil {
			return Null, err
		}
		return Str(strings.Repeat(s, int(n.IntPart()))), nil
	case "index_of":
		sub, err := wantString(argAt(args, 0), "index_of")
		if err != nil {
			return Null, err
		}
		return IntNum(int64(strings.Index(s, sub))), nil
	case "to_number":
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return Null, rtErr(ErrInvalidOperation, 0, 0, "%q is not a valid number", s)
		}
		return Num(d), nil
	default:
		return Null, rtErr(ErrUndefined, 0, 0, "string has no method %q", name)
	}
}

////////////////////////////////////////////////////////////////////////////////
//                                  LIST
////////////////////////////////////////////////////////////////////////////////

func listMethod(ip *Interpreter, recv Value, name string, args []Value) (Value, error) {
	l := recv.Data.(*List)
	switch name {
	case "len":
		return IntNum(int64(len(l.Items))), nil
	case "push":
		l.Items = append(l.Items, argAt(args, 0))
		return recv, nil
	case "pop":
		if len(l.Items) == 0 {
			return Null, rtErr(ErrIndexOutOfRange, 0, 0, "pop on an empty list")
		}
		last := l.Items[len(l.Items)-1]
		l.Items = l.Items[:len(l.Items)-1]
		return last, nil
	case "contains":
		for _, it := range l.Items {
			if valuesEqual(it, argAt(args, 0)) {
				return Bool(true), nil
			}
		}
		return Bool(false), nil
	case "index_of":
		for i, it := range l.Items {
			if valuesEqual(it, argAt(args, 0)) {
				return IntNum(int64(i)), nil
			}
		}
		return IntNum(-1), nil
	case "reverse":
		out := make([]Value, len(l.Items))
		for i, it := range l.Items {
			out[len(l.Items)-1-i] = it
		}
		return ListVal(out), nil
	case "join":
		sep, err := wantString(argAt(args, 0), "join")
		if err != nil {
			return Null, err
		}
		parts := make([]string, len(l.Items))
		for i, it := range l.Items {
			parts[i] = ip.displayString(it)
		}
		return Str(strings.Join(parts, sep)), nil
	case "sort":
		out := append([]Value{}, l.Items...)
		var sortErr error
		sort.SliceStable(out, func(i, j int) bool {
			v, err := compareValues("<", out[i], out[j])
			if err != nil {
				sortErr = err
				return false
			}
			return v.Data.(bool)
		})
		if sortErr != nil {
			return Null, sortErr
		}
		return ListVal(out), nil
	case "map":
		fn := argAt(args, 0)
		out := make([]Value, len(l.Items))
		for i, it := range l.Items {
			v, err := ip.callValue(fn, []Value{it}, ip.Global)
			if err != nil {
				return Null, err
			}
			out[i] = v
		}
		return ListVal(out), nil
	case "filter":
		fn := argAt(args, 0)
		var out []Value
		for _, it := range l.Items {
			v, err := ip.callValue(fn, []Value{it}, ip.Global)
			if err != nil {
				return Null, err
			}
			if truthy(v) {
				out = append(out, it)
			}
		}
		return ListVal(out), nil
	case "reduce":
		fn := argAt(args, 0)
		acc := argAt(args, 1)
		for _, it := range l.Items {
			v, err := ip.callValue(fn, []Value{acc, it}, ip.Global)
			if err != nil {
				return Null, err
			}
			acc = v
		}
		return acc, nil
	case "each":
		fn := argAt(args, 0)
		for _, it := range l.Items {
			if _, err := ip.callValue(fn, []Value{it}, ip.Global); err != nil {
				return Null, err
			}
		}
		return Null, nil
	case "slice":
		lo, err := wantNumber(argAt(args, 0), "slice")
		if err != nil {
			return Null, err
		}
		hi, err := wantNumber(argAt(args, 1), "slice")
		if err != nil {
			return Null, err
		}
		a, b := resolveSliceBounds(intPtr(int(lo.IntPart())), intPtr(int(hi.IntPart())), len(l.Items))
		return ListVal(append([]Value{}, l.Items[a:b]...)), nil
	default:
		return Null, rtErr(ErrUndefined, 0, 0, "list has no method %q", name)
	}
}

func intPtr(i int) *int { return &i }

////////////////////////////////////////////////////////////////////////////////
//                                   MAP
////////////////////////////////////////////////////////////////////////////////

func mapMethod(recv Value, name string, args []Value) (Value, error) {
	m := recv.Data.(*MapObject)
	switch name {
	case "len":
		return IntNum(int64(len(m.Keys))), nil
	case "keys":
		out := make([]Value, len(m.Keys))
		for i, k := range m.Keys {
			out[i] = Str(k)
		}
		return ListVal(out), nil
	case "values":
		out := make([]Value, len(m.Keys))
		for i, k := range m.Keys {
			out[i] = m.Entries[k]
		}
		return ListVal(out), nil
	case "has":
		key, err := wantString(argAt(args, 0), "has")
		if err != nil {
			return Null, err
		}
		_, ok := m.Entries[key]
		return Bool(ok), nil
	case "get":
		key, err := wantString(argAt(args, 0), "get")
		if err != nil {
			return Null, err
		}
		if v, ok := m.Entries[key]; ok {
			return v, nil
		}
		return argAt(args, 1), nil
	case "set":
		key, err := wantString(argAt(args, 0), "set")
		if err != nil {
			return Null, err
		}
		m.Set(key, argAt(args, 1))
		return recv, nil
	case "delete":
		key, err := wantString(argAt(args, 0), "delete")
		if err != nil {
			return Null, err
		}
		m.Delete(key)
		return recv, nil
	case "merge":
		other := argAt(args, 0)
		if other.Tag != VTMap {
			return Null, rtErr(ErrTypeError, 0, 0, "merge expects a map argument, got %s", other.Tag)
		}
		om := other.Data.(*MapObject)
		for _, k := range om.Keys {
			m.Set(k, om.Entries[k])
		}
		return recv, nil
	default:
		return Null, rtErr(ErrUndefined, 0, 0, "map has no method %q", name)
	}
}

////////////////////////////////////////////////////////////////////////////////
//                                  TUPLE
////////////////////////////////////////////////////////////////////////////////

func tupleMethod(recv Value, name string, args []Value) (Value, error) {
	items := recv.Data.([]Value)
	switch name {
	case "len":
		return IntNum(int64(len(items))), nil
	default:
		return Null, rtErr(ErrUndefined, 0, 0, "tuple has no method %q", name)
	}
}

////////////////////////////////////////////////////////////////////////////////
//                                  REGEX
////////////////////////////////////////////////////////////////////////////////

func regexMethod(recv Value, name string, args []Value) (Value, error) {
	r := recv.Data.(*Regex)
	re := (*regexp.Regexp)(r.Re)
	switch name {
	case "test":
		s, err := wantString(argAt(args, 0), "test")
		if err != nil {
			return Null, err
		}
		return Bool(re.MatchString(s)), nil
	case "find":
		s, err := wantString(argAt(args, 0), "find")
		if err != nil {
			return Null, err
		}
		m := re.FindString(s)
		if m == "" && !re.MatchString(s) {
			return Null, nil
		}
		return Str(m), nil
	case "find_all":
		s, err := wantString(argAt(args, 0), "find_all")
		if err != nil {
			return Null, err
		}
		matches := re.FindAllString(s, -1)
		out := make([]Value, len(matches))
		for i, m := range matches {
			out[i] = Str(m)
		}
		return ListVal(out), nil
	case "groups":
		s, err := wantString(argAt(args, 0), "groups")
		if err != nil {
			return Null, err
		}
		sub := re.FindStringSubmatch(s)
		if sub == nil {
			return Null, nil
		}
		out := make([]Value, len(sub))
		for i, g := range sub {
			out[i] = Str(g)
		}
		return TupleVal(out), nil
	case "replace":
		s, err := wantString(argAt(args, 0), "replace")
		if err != nil {
			return Null, err
		}
		repl, err := wantString(argAt(args, 1), "replace")
		if err != nil {
			return Null, err
		}
		return Str(re.ReplaceAllString(s, repl)), nil
	case "split":
		s, err := wantString(argAt(args, 0), "split")
		if err != nil {
			return Null, err
		}
		parts := re.Split(s, -1)
		out := make([]Value, len(parts))
		for i, p := range parts {
			out[i] = Str(p)
		}
		return ListVal(out), nil
	default:
		return Null, rtErr(ErrUndefined, 0, 0, "regex has no method %q", name)
	}
}

////////////////////////////////////////////////////////////////////////////////
//                                 STREAM
////////////////////////////////////////////////////////////////////////////////

func streamMethod(recv Value, name string, args []Value) (Value, error) {
	s := recv.Data.(*Stream)
	switch name {
	case "close":
		if err := s.Close(); err != nil {
			return Null, rtErr(ErrStreamError, 0, 0, "%v", err)
		}
		return Null, nil
	case "write":
		data, err := wantString(argAt(args, 0), "write")
		if err != nil {
			return Null, err
		}
		n, werr := s.Write([]byte(data))
		if werr != nil {
			return Null, rtErr(ErrStreamError, 0, 0, "%v", werr)
		}
		return IntNum(int64(n)), nil
	case "read_line":
		line, err := readLine(s)
		if err != nil {
			return Null, rtErr(ErrStreamError, 0, 0, "%v", err)
		}
		return Str(line), nil
	case "read_all":
		data, err := readAll(s)
		if err != nil {
			return Null, rtErr(ErrStreamError, 0, 0, "%v", err)
		}
		return Str(data), nil
	default:
		return Null, rtErr(ErrUndefined, 0, 0, "stream has no method %q", name)
	}
}
