// values.go — public value model and engine entry points for suji.
//
// This file is the narrow public surface of the interpreter, in the same
// spirit as the teacher's interpreter_api.go: only exported types and thin
// methods live here, the tree-walking evaluator and its helpers stay in
// interpreter_exec.go / interpreter_ops.go.
//
// suji has one numeric type (arbitrary-precision decimal, no NaN/Inf), so
// the VTInt/VTNum split from the teacher is gone; it has lists, ordered
// maps, tuples, regexes and streams instead of the teacher's structural
// type system and module-as-map encoding.
package suji

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

////////////////////////////////////////////////////////////////////////////////
//                              VALUE MODEL
////////////////////////////////////////////////////////////////////////////////

// ValueTag enumerates every runtime kind a Value may hold.
type ValueTag int

const (
	VTNull ValueTag = iota
	VTBool
	VTNumber
	VTStr
	VTList
	VTMap
	VTTuple
	VTRegex
	VTFun
	VTStream
	VTModule
)

func (t ValueTag) String() string {
	switch t {
	case VTNull:
		return "Nil"
	case VTBool:
		return "Bool"
	case VTNumber:
		return "Number"
	case VTStr:
		return "String"
	case VTList:
		return "List"
	case VTMap:
		return "Map"
	case VTTuple:
		return "Tuple"
	case VTRegex:
		return "Regex"
	case VTFun:
		return "Function"
	case VTStream:
		return "Stream"
	case VTModule:
		return "Module"
	default:
		return "Unknown"
	}
}

// Value is the universal runtime carrier. Tag selects which concrete Go type
// Data holds:
//
//	VTNull    nil
//	VTBool    bool
//	VTNumber  decimal.Decimal
//	VTStr     string
//	VTList    *List   (reference semantics)
//	VTMap     *MapObject (reference semantics, insertion-ordered)
//	VTTuple   []Value (value semantics, fixed arity)
//	VTRegex   *Regex
//	VTFun     *Fun
//	VTStream  *Stream (reference semantics)
//	VTModule  *Module
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Null is the singleton nil value.
var Null = Value{Tag: VTNull}

func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }
func Num(d decimal.Decimal) Value { return Value{Tag: VTNumber, Data: d} }

// IntNum builds a Number value from an int64, for builtins that deal in counts.
func IntNum(n int64) Value { return Value{Tag: VTNumber, Data: decimal.NewFromInt(n)} }

// FloatNum builds a Number value from a float64 (used by math builtins whose
// domain is inherently binary-floating, e.g. trig functions).
func FloatNum(f float64) Value { return Value{Tag: VTNumber, Data: decimal.NewFromFloat(f)} }

// List is the runtime backing of VTList: an ordered, growable, shared
// reference. Two names bound to the same List observe each other's mutations.
type List struct {
	Items []Value
}

func ListVal(items []Value) Value { return Value{Tag: VTList, Data: &List{Items: items}} }

// MapObject is an insertion-ordered map, shared by reference.
type MapObject struct {
	Entries map[string]Value
	Keys    []string
}

func NewMapObject() *MapObject {
	return &MapObject{Entries: map[string]Value{}}
}

// Set inserts or updates key, appending it to Keys the first time it is seen.
func (m *MapObject) Set(key string, v Value) {
	if _, ok := m.Entries[key]; !ok {
		m.Keys = append(m.Keys, key)
	}
	m.Entries[key] = v
}

// Get looks up key, reporting whether it was present.
func (m *MapObject) Get(key string) (Value, bool) {
	v, ok := m.Entries[key]
	return v, ok
}

// Delete removes key, preserving the relative order of the rest.
func (m *MapObject) Delete(key string) {
	if _, ok := m.Entries[key]; !ok {
		return
	}
	delete(m.Entries, key)
	for i, k := range m.Keys {
		if k == key {
			m.Keys = append(m.Keys[:i], m.Keys[i+1:]...)
			break
		}
	}
}

func MapVal(m *MapObject) Value { return Value{Tag: VTMap, Data: m} }

// TupleVal builds an immutable fixed-arity tuple.
func TupleVal(items []Value) Value { return Value{Tag: VTTuple, Data: items} }

// Regex carries a compiled pattern alongside its original source text (the
// source is kept for to_string()/display and re-compilation after clone).
type Regex struct {
	Source string
	Flags  string
	Re     *regexCompiled
}

func RegexVal(r *Regex) Value { return Value{Tag: VTRegex, Data: r} }

// Stream is a handle to a readable/writable byte source: stdin, stdout,
// stderr, an open file, or a pipe endpoint. Streams are explicitly closed.
type Stream struct {
	Name     string
	Reader   streamReader
	Writer   streamWriter
	Closer   streamCloser
	IsStdio  bool
}

func StreamVal(s *Stream) Value { return Value{Tag: VTStream, Data: s} }

type streamReader interface {
	Read(p []byte) (int, error)
}
type streamWriter interface {
	Write(p []byte) (int, error)
}
type streamCloser interface {
	Close() error
}

// Read/Write/Close let *Stream satisfy io.Reader/io.Writer/io.Closer
// directly, so it can be handed to os/exec.Cmd.Stdin/Stdout/Stderr or to
// any stdlib code that wants a plain byte stream.
func (s *Stream) Read(p []byte) (int, error) {
	if s.Reader == nil {
		return 0, fmt.Errorf("stream %q is not readable", s.Name)
	}
	return s.Reader.Read(p)
}

func (s *Stream) Write(p []byte) (int, error) {
	if s.Writer == nil {
		return 0, fmt.Errorf("stream %q is not writable", s.Name)
	}
	return s.Writer.Write(p)
}

func (s *Stream) Close() error {
	if s.Closer == nil {
		return nil
	}
	return s.Closer.Close()
}

////////////////////////////////////////////////////////////////////////////////
//                           FUNCTIONS & ENVIRONMENTS
////////////////////////////////////////////////////////////////////////////////

// ParamSpec documents one parameter: its name and an optional default-value
// expression (evaluated at call time, when the argument is omitted, in the
// new call frame: a child of the closure's defining environment that already
// holds the earlier parameters).
type ParamSpec struct {
	Name    string
	Default S // nil if no default
}

// Fun represents a function/closure (VTFun). User closures carry a Body AST
// and the Env active at the point of definition; natives carry NativeName
// and Native instead and leave Body/Env unused.
type Fun struct {
	Params []ParamSpec
	Body   S
	Env    *Env

	NativeName string
	Native     NativeImpl

	Doc string
}

func FunVal(f *Fun) Value { return Value{Tag: VTFun, Data: f} }

// Env is a lexical scope frame: a mutable mapping from name to cell, linked
// to its parent frame. A closure retains a shared reference to the chain
// active at its point of construction, so mutations to a captured name are
// observed by every closure that captured it — this is what makes
// make_counter-style counters work.
type Env struct {
	parent *Env
	table  map[string]*Value
}

func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]*Value)}
}

// Define binds name to v in the current frame, shadowing any outer binding.
func (e *Env) Define(name string, v Value) {
	cell := v
	e.table[name] = &cell
}

// Set mutates the cell of the nearest visible binding of name. Returns false
// if no such binding exists in any visible frame (callers then Define it in
// the innermost frame, per the assignment-introduces-in-current-frame rule).
func (e *Env) Set(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.table[name]; ok {
			*cell = v
			return true
		}
	}
	return false
}

// Get retrieves the nearest visible binding for name.
func (e *Env) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.table[name]; ok {
			return *cell, true
		}
	}
	return Value{}, false
}

// Cell returns the shared binding cell for name, if visible. Used by
// closures and by loop constructs that must share a binding across frames.
func (e *Env) Cell(name string) (*Value, bool) {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.table[name]; ok {
			return cell, true
		}
	}
	return nil, false
}

// CallCtx is passed to native implementations.
type CallCtx interface {
	Arg(name string) (Value, bool)
	MustArg(name string) Value
	Args() []Value
	Env() *Env
}

// NativeImpl is the implementation signature for registered builtins.
type NativeImpl func(ip *Interpreter, ctx CallCtx) Value

// wantBoolOr reads an optional boolean argument by name, returning fallback
// when the caller omitted it. Native ParamSpec defaults aren't evaluated by
// CallCtx (there's no Env to evaluate an AST default against at this layer),
// so optional-argument builtins fall back explicitly like this instead.
func wantBoolOr(ctx CallCtx, name string, fallback bool) bool {
	v, ok := ctx.Arg(name)
	if !ok || v.Tag == VTNull {
		return fallback
	}
	if v.Tag != VTBool {
		panic(rtErr(ErrTypeError, 0, 0, "%s expects a boolean argument, got %s", name, v.Tag))
	}
	return v.Data.(bool)
}

////////////////////////////////////////////////////////////////////////////////
//                               DIAGNOSTICS
////////////////////////////////////////////////////////////////////////////////

// RuntimeErrorKind enumerates the §4.D runtime error kinds.
type RuntimeErrorKind string

const (
	ErrTypeError          RuntimeErrorKind = "TypeError"
	ErrDivideByZero       RuntimeErrorKind = "DivideByZero"
	ErrIndexOutOfRange    RuntimeErrorKind = "IndexOutOfRange"
	ErrKeyNotFound        RuntimeErrorKind = "KeyNotFound"
	ErrUndefined          RuntimeErrorKind = "Undefined"
	ErrArityMismatch      RuntimeErrorKind = "ArityMismatch"
	ErrInvalidOperation   RuntimeErrorKind = "InvalidOperation"
	ErrStreamError        RuntimeErrorKind = "StreamError"
	ErrImportError        RuntimeErrorKind = "ImportError"
	ErrPatternMatchFailed RuntimeErrorKind = "PatternMatchFailed"
	ErrBadBreakLabel      RuntimeErrorKind = "BadBreakLabel"
)

// RuntimeError is a runtime failure with a source location (1-based).
type RuntimeError struct {
	Kind RuntimeErrorKind
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR (%s) at %d:%d: %s", e.Kind, e.Line, e.Col, e.Msg)
}

////////////////////////////////////////////////////////////////////////////////
//                               INTERPRETER
////////////////////////////////////////////////////////////////////////////////

// Interpreter is the entry point for evaluating suji programs.
type Interpreter struct {
	Global *Env // program-global environment (persistent across EvalPersistent*)
	Core   *Env // builtins; parent of Global

	modules   map[string]*moduleRec
	native    map[string]NativeImpl
	stdNames  []string // every name Core holds under a "std:..." path, in registration order
	loadStack []string

	currentSrc *SourceRef

	// Stream bindings observed by std:io:stdin/stdout/stderr and redirected
	// by the process-pipeline runtime for the duration of a closure stage.
	stdin  *Stream
	stdout *Stream
	stderr *Stream

	rng *rngState
}

// NewInterpreter constructs an engine with an empty Core (NewRuntime is what
// registers the builtins) and an empty Global environment (child of Core).
func NewInterpreter() *Interpreter {
	ip := &Interpreter{}
	ip.Core = NewEnv(nil)
	ip.Global = NewEnv(ip.Core)
	ip.modules = map[string]*moduleRec{}
	ip.native = map[string]NativeImpl{}
	ip.stdin = newStdioStream("stdin")
	ip.stdout = newStdioStream("stdout")
	ip.stderr = newStdioStream("stderr")
	ip.rng = newRNGState()
	return ip
}

// EvalSource parses and evaluates src in a fresh child of Global; bindings
// land in that ephemeral child, Global is unchanged.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	return ip.evalSourceIn(src, "<main>", NewEnv(ip.Global))
}

// EvalFile reads and evaluates the script at path in a fresh child of
// Global, naming the source by its own path so that its `import`
// statements resolve relative to the script's own directory rather than
// the process's working directory.
func (ip *Interpreter) EvalFile(path string) (Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Null, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return ip.evalSourceIn(string(src), abs, NewEnv(ip.Global))
}

// EvalPersistentSource parses and evaluates src directly in Global
// (REPL-style): bindings persist across calls.
func (ip *Interpreter) EvalPersistentSource(src string) (Value, error) {
	return ip.evalSourceIn(src, "<repl>", ip.Global)
}

func (ip *Interpreter) evalSourceIn(src, name string, env *Env) (Value, error) {
	toks, lerr := Lex(src)
	if lerr != nil {
		return Null, WrapErrorWithName(lerr, name, src)
	}
	prog, perr := Parse(toks)
	if perr != nil {
		return Null, WrapErrorWithName(perr, name, src)
	}
	sr := &SourceRef{Name: name, Src: src}
	prevSrc := ip.currentSrc
	ip.currentSrc = sr
	defer func() { ip.currentSrc = prevSrc }()
	v, rerr := ip.evalProgram(prog, env)
	if rerr != nil {
		return Null, WrapErrorWithName(rerr, name, src)
	}
	return v, nil
}

// RegisterNative installs a native function into Core under name.
func (ip *Interpreter) RegisterNative(name string, params []ParamSpec, impl NativeImpl) {
	ip.native[name] = impl
	ip.Core.Define(name, FunVal(&Fun{
		Params:     params,
		Env:        ip.Core,
		NativeName: name,
		Native:     impl,
	}))
	if strings.HasPrefix(name, "std:") {
		ip.stdNames = append(ip.stdNames, name)
	}
}

// RegisterValue installs a plain (non-function) value into Core under
// name, for std:-namespaced constants like std:io:stdin.
func (ip *Interpreter) RegisterValue(name string, v Value) {
	ip.Core.Define(name, v)
	if strings.HasPrefix(name, "std:") {
		ip.stdNames = append(ip.stdNames, name)
	}
}

// Apply calls a function Value with the given arguments, from outside any
// running program.
func (ip *Interpreter) Apply(fn Value, args []Value) (Value, error) {
	return ip.callValue(fn, args, ip.Global)
}

// SourceRef pins diagnostics produced while evaluating a given source unit
// (main script, REPL line, or imported module) back to its name and text.
type SourceRef struct {
	Name string
	Src  string
}
