// interpreter_ops.go — arithmetic, comparison, and pattern-matching
// semantics shared by the evaluator.
//
// Grounded on the teacher's interpreter_ops.go for the shape of a binary-op
// dispatch table, adapted to suji's single decimal.Decimal numeric type (no
// int/float split, so every arithmetic rule is one decimal.Decimal case
// instead of an int/float pair) and to its match-expression pattern forms.
package suji

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

////////////////////////////////////////////////////////////////////////////////
//                                ARITHMETIC
////////////////////////////////////////////////////////////////////////////////

func applyBinaryOp(op string, lhs, rhs Value) (Value, error) {
	switch op {
	case "+":
		return addValues(lhs, rhs)
	case "-", "*", "/", "%", "^":
		return arithValues(op, lhs, rhs)
	case "==":
		return Bool(valuesEqual(lhs, rhs)), nil
	case "!=":
		return Bool(!valuesEqual(lhs, rhs)), nil
	case "<", "<=", ">", ">=":
		return compareValues(op, lhs, rhs)
	case "~", "!~":
		return matchOpValues(op, lhs, rhs)
	default:
		return Null, rtErr(ErrInvalidOperation, 0, 0, "unknown binary operator %q", op)
	}
}

func applyCompoundOp(op string, cur, rhs Value) (Value, error) {
	base := strings.TrimSuffix(op, "=")
	return applyBinaryOp(base, cur, rhs)
}

// addValues implements '+': numeric addition, string concatenation, and
// list concatenation, mirroring the overload suji's §6 value methods
// describe for the one "+" operator.
func addValues(lhs, rhs Value) (Value, error) {
	if lhs.Tag == VTNumber && rhs.Tag == VTNumber {
		return Num(lhs.Data.(decimal.Decimal).Add(rhs.Data.(decimal.Decimal))), nil
	}
	if lhs.Tag == VTStr && rhs.Tag == VTStr {
		return Str(lhs.Data.(string) + rhs.Data.(string)), nil
	}
	if lhs.Tag == VTList && rhs.Tag == VTList {
		a := lhs.Data.(*List).Items
		b := rhs.Data.(*List).Items
		out := make([]Value, 0, len(a)+len(b))
		out = append(out, a...)
		out = append(out, b...)
		return ListVal(out), nil
	}
	return Null, rtErr(ErrTypeError, 0, 0, "'+' is not defined between %s and %s", lhs.Tag, rhs.Tag)
}

func arithValues(op string, lhs, rhs Value) (Value, error) {
	if lhs.Tag != VTNumber || rhs.Tag != VTNumber {
		return Null, rtErr(ErrTypeError, 0, 0, "'%s' requires two numbers, got %s and %s", op, lhs.Tag, rhs.Tag)
	}
	a := lhs.Data.(decimal.Decimal)
	b := rhs.Data.(decimal.Decimal)
	switch op {
	case "-":
		return Num(a.Sub(b)), nil
	case "*":
		return Num(a.Mul(b)), nil
	case "/":
		if b.IsZero() {
			return Null, rtErr(ErrDivideByZero, 0, 0, "division by zero")
		}
		return Num(a.DivRound(b, 34)), nil
	case "%":
		if b.IsZero() {
			return Null, rtErr(ErrDivideByZero, 0, 0, "modulo by zero")
		}
		return Num(a.Mod(b)), nil
	case "^":
		return Num(a.Pow(b)), nil
	default:
		return Null, rtErr(ErrInvalidOperation, 0, 0, "unknown arithmetic operator %q", op)
	}
}

func compareValues(op string, lhs, rhs Value) (Value, error) {
	var cmp int
	switch {
	case lhs.Tag == VTNumber && rhs.Tag == VTNumber:
		cmp = lhs.Data.(decimal.Decimal).Cmp(rhs.Data.(decimal.Decimal))
	case lhs.Tag == VTStr && rhs.Tag == VTStr:
		cmp = strings.Compare(lhs.Data.(string), rhs.Data.(string))
	default:
		return Null, rtErr(ErrTypeError, 0, 0, "'%s' is not defined between %s and %s", op, lhs.Tag, rhs.Tag)
	}
	switch op {
	case "<":
		return Bool(cmp < 0), nil
	case "<=":
		return Bool(cmp <= 0), nil
	case ">":
		return Bool(cmp > 0), nil
	case ">=":
		return Bool(cmp >= 0), nil
	default:
		return Null, rtErr(ErrInvalidOperation, 0, 0, "unknown comparison operator %q", op)
	}
}

// matchOpValues implements '~'/'!~': regex search against a string.
func matchOpValues(op string, lhs, rhs Value) (Value, error) {
	if lhs.Tag != VTStr || rhs.Tag != VTRegex {
		return Null, rtErr(ErrTypeError, 0, 0, "'%s' requires a string and a regex, got %s and %s", op, lhs.Tag, rhs.Tag)
	}
	re := (*regexp.Regexp)(rhs.Data.(*Regex).Re)
	found := re.MatchString(lhs.Data.(string))
	if op == "!~" {
		found = !found
	}
	return Bool(found), nil
}

// valuesEqual implements structural equality: numbers by decimal value
// (so 0.1+0.2==0.3 is exact), strings/bools by Go equality, lists/tuples
// element-wise, maps key-set and value equal regardless of insertion
// order, everything else by identity/kind mismatch.
func valuesEqual(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTNumber:
		return a.Data.(decimal.Decimal).Equal(b.Data.(decimal.Decimal))
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTRegex:
		ra, rb := a.Data.(*Regex), b.Data.(*Regex)
		return ra.Source == rb.Source && ra.Flags == rb.Flags
	case VTList:
		la, lb := a.Data.(*List).Items, b.Data.(*List).Items
		return valueSliceEqual(la, lb)
	case VTTuple:
		return valueSliceEqual(a.Data.([]Value), b.Data.([]Value))
	case VTMap:
		ma, mb := a.Data.(*MapObject), b.Data.(*MapObject)
		if len(ma.Keys) != len(mb.Keys) {
			return false
		}
		for k, v := range ma.Entries {
			ov, ok := mb.Entries[k]
			if !ok || !valuesEqual(v, ov) {
				return false
			}
		}
		return true
	case VTFun:
		return a.Data.(*Fun) == b.Data.(*Fun)
	case VTStream:
		return a.Data.(*Stream) == b.Data.(*Stream)
	default:
		return false
	}
}

func valueSliceEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !valuesEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

////////////////////////////////////////////////////////////////////////////////
//                                MATCH / PATTERNS
////////////////////////////////////////////////////////////////////////////////

func (ip *Interpreter) evalMatch(n S, env *Env) (Value, error) {
	var scrutinee Value
	conditionOnly := n[1] == nil
	if !conditionOnly {
		v, err := ip.eval(n[1].(S), env)
		if err != nil {
			return Null, err
		}
		scrutinee = v
	}

	for _, armAny := range n[2:] {
		arm := armAny.(S)
		lhs := arm[1].(S)
		body := arm[2].(S)

		armEnv := NewEnv(env)
		var matched bool
		var err error
		if conditionOnly {
			var cv Value
			cv, err = ip.eval(lhs, armEnv)
			matched = err == nil && truthy(cv)
		} else {
			matched, err = matchPattern(ip, lhs, scrutinee, armEnv)
		}
		if err != nil {
			return Null, err
		}
		if !matched {
			continue
		}
		if body[0].(string) == "block" {
			return ip.execBlock(body, armEnv)
		}
		return ip.eval(body, armEnv)
	}
	return Null, rtErr(ErrPatternMatchFailed, 0, 0, "no match arm matched the given value")
}

// matchPattern tests val against pat, binding pid-captures into env on
// success. Alternation (palt) sub-patterns must not bind names, since a
// binding from a branch that didn't match would be meaningless.
func matchPattern(ip *Interpreter, pat S, val Value, env *Env) (bool, error) {
	tag := pat[0].(string)
	switch tag {
	case "pwild":
		return true, nil
	case "pid":
		env.Define(pat[1].(string), val)
		return true, nil
	case "plit":
		lit, err := ip.eval(pat[1].(S), env)
		if err != nil {
			return false, err
		}
		return valuesEqual(lit, val), nil
	case "pregex":
		if val.Tag != VTStr {
			return false, nil
		}
		r, err := compileRegex(pat[1].(string), pat[2].(string))
		if err != nil {
			return false, rtErr(ErrInvalidOperation, 0, 0, "%v", err)
		}
		re := (*regexp.Regexp)(r.Re)
		return re.MatchString(val.Data.(string)), nil
	case "ptuple":
		if val.Tag != VTTuple {
			return false, nil
		}
		items := val.Data.([]Value)
		subs := pat[1:]
		if len(subs) != len(items) {
			return false, nil
		}
		for i, sub := range subs {
			ok, err := matchPattern(ip, sub.(S), items[i], env)
			if err != nil || !ok {
				return ok, err
			}
		}
		return true, nil
	case "palt":
		if patternBindsNames(pat) {
			return false, rtErr(ErrInvalidOperation, 0, 0, "alternation patterns ('|') may not bind names")
		}
		left, right := pat[1].(S), pat[2].(S)
		ok, err := matchPattern(ip, left, val, env)
		if err != nil || ok {
			return ok, err
		}
		return matchPattern(ip, right, val, env)
	default:
		return false, rtErr(ErrInvalidOperation, 0, 0, "unknown pattern form %q", tag)
	}
}

func patternBindsNames(pat S) bool {
	switch pat[0].(string) {
	case "pid":
		return true
	case "ptuple":
		for _, sub := range pat[1:] {
			if patternBindsNames(sub.(S)) {
				return true
			}
		}
		return false
	case "palt":
		return patternBindsNames(pat[1].(S)) || patternBindsNames(pat[2].(S))
	default:
		return false
	}
}
