// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// Turns a *LexError/*ParseError/*RuntimeError into a readable snippet with a
// caret under the offending column, e.g.:
//
//	RUNTIME ERROR (DivideByZero) in script.sj at 3:13: division by zero
//
//	   2 | total = 0
//	   3 | avg = total / count
//	     |             ^
//	   4 | println(avg)
//
// Grounded on the teacher's errors.go: same WrapErrorWithName entry point
// and prettyErrorStringLabeled caret renderer, adapted for RuntimeError's
// added Kind field.
package suji

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments err with a caret-annotated snippet of src, if
// err is a diagnostic type this package knows how to render. Other errors
// pass through unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with an explicit source name
// (script path, "<repl>", module name) shown in the header.
func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *errIncomplete:
		return err
	case *LexError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *RuntimeError:
		header := fmt.Sprintf("RUNTIME ERROR (%s)", e.Kind)
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, header, srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// prettyErrorStringLabeled builds a Python-style snippet: header, then up to
// one line of context before and after the offending line, with a caret
// under the 1-based column.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := max(col-1, 0)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
