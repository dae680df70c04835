// modules.go — suji's module system: `import a:b:c [as name]` and
// `export {...}` / `export name, name2`.
//
// Grounded on the teacher's modules.go for the overall shape (a VTModule
// value wrapping a name + an ordered export surface + the env the module
// ran in, an in-memory `ip.modules` cache keyed by canonical identity, and
// `ip.loadStack` cycle detection producing an "A -> B -> A" chain), adapted
// to suji's colon-segmented import paths (`a:b:c`, spec §8) in place of the
// teacher's URL/filesystem dual resolver — suji has no network import.
//
// Resolution order for `import a:b:c`:
//  1. "a" == "__builtins__" -> injects the named Core binding directly (the
//     raw value, not a Module wrapper) — an escape hatch to reach a builtin
//     like `panic`/`try`/`clone` by name even if a local binding has shadowed
//     it lexically.
//  2. "a" == "std"      -> delegate to the registered standard-library tree
//     (builtin_*.go's RegisterNative calls already populate ip.Core; std
//     member access is handled structurally, not via the file-based loader).
//  3. otherwise          -> a:b:c resolves to a file path, one path segment
//     per colon segment, relative to the importing file's directory (the
//     entry script's directory under EvalFile, or the current working
//     directory for EvalSource and the REPL), trying "c.si"
//     then "c/init.si".
package suji

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Module is the runtime value backing VTModule: a named, ordered export
// surface plus the environment the module body ran in (so a module's
// closures keep working after import completes).
type Module struct {
	Name    string
	Exports *MapObject
	Env     *Env
}

// moduleRec is the cache entry for one resolved import path: either a
// finished module, or (while loadStack still contains its canonical path)
// evidence of an in-progress load used for cycle detection.
type moduleRec struct {
	canonical string
	value     Value // VTModule, once loaded
	loading   bool
}

func (ip *Interpreter) execImport(n S, env *Env) (Value, error) {
	path := n[1].(string)
	alias := n[2].(string)

	modVal, err := ip.importPath(path, env)
	if err != nil {
		return Null, err
	}
	name := alias
	if name == "" {
		segs := strings.Split(path, ":")
		name = segs[len(segs)-1]
	}
	env.Define(name, modVal)
	return modVal, nil
}

func (ip *Interpreter) importPath(path string, importerEnv *Env) (Value, error) {
	segs := strings.Split(path, ":")
	if segs[0] == "__builtins__" {
		return ip.importBuiltin(path, segs[1:])
	}
	if segs[0] == "std" {
		return ip.importStd(path)
	}

	dir := "."
	if ip.currentSrc != nil && ip.currentSrc.Name != "<main>" && ip.currentSrc.Name != "<repl>" {
		dir = filepath.Dir(ip.currentSrc.Name)
	}
	rel := filepath.Join(segs...)
	candidate := filepath.Join(dir, rel+".si")
	if _, err := os.Stat(candidate); err != nil {
		candidate = filepath.Join(dir, rel, "init.si")
	}
	canonical, err := filepath.Abs(candidate)
	if err != nil {
		return Null, rtErr(ErrImportError, 0, 0, "cannot resolve import %q: %v", path, err)
	}

	if rec, ok := ip.modules[canonical]; ok {
		if rec.loading {
			chain := strings.Join(append(append([]string{}, ip.loadStack...), canonical), " -> ")
			return Null, rtErr(ErrImportError, 0, 0, "import cycle detected: %s", chain)
		}
		return rec.value, nil
	}

	src, err := os.ReadFile(canonical)
	if err != nil {
		return Null, rtErr(ErrImportError, 0, 0, "cannot read module %q: %v", path, err)
	}

	rec := &moduleRec{canonical: canonical, loading: true}
	ip.modules[canonical] = rec
	ip.loadStack = append(ip.loadStack, canonical)
	defer func() { ip.loadStack = ip.loadStack[:len(ip.loadStack)-1] }()

	modVal, err := ip.evalModuleSource(canonical, string(src))
	if err != nil {
		delete(ip.modules, canonical)
		return Null, err
	}
	rec.loading = false
	rec.value = modVal
	return modVal, nil
}

func (ip *Interpreter) evalModuleSource(canonicalName, src string) (Value, error) {
	toks, lerr := Lex(src)
	if lerr != nil {
		return Null, WrapErrorWithName(lerr, canonicalName, src)
	}
	prog, perr := Parse(toks)
	if perr != nil {
		return Null, WrapErrorWithName(perr, canonicalName, src)
	}

	modEnv := NewEnv(ip.Core)
	exports := NewMapObject()
	modEnv.Define("__exports__", MapVal(exports))

	prevSrc := ip.currentSrc
	ip.currentSrc = &SourceRef{Name: canonicalName, Src: src}
	defer func() { ip.currentSrc = prevSrc }()

	if _, err := ip.evalProgram(prog, modEnv); err != nil {
		return Null, WrapErrorWithName(err, canonicalName, src)
	}

	return Value{Tag: VTModule, Data: &Module{Name: canonicalName, Exports: exports, Env: modEnv}}, nil
}

// importBuiltin resolves a "__builtins__:name" import path by looking the
// name up directly in Core and returning its value unwrapped — no Module
// indirection, since the import names exactly one binding, not a namespace.
func (ip *Interpreter) importBuiltin(path string, rest []string) (Value, error) {
	if len(rest) == 0 {
		return Null, rtErr(ErrImportError, 0, 0, "__builtins__ import requires a name: %q", path)
	}
	name := strings.Join(rest, ":")
	v, ok := ip.Core.Get(name)
	if !ok {
		return Null, rtErr(ErrImportError, 0, 0, "no such builtin %q", name)
	}
	return v, nil
}

// importStd resolves a "std[:...]" import path against the registered
// native namespace (see runtime.go's RegisterNative calls): the module's
// exports mirror every Core binding whose name begins with the requested
// prefix, with the prefix stripped.
func (ip *Interpreter) importStd(path string) (Value, error) {
	// A leaf name (e.g. "std:print") is itself a registered binding, not a
	// namespace prefix: hand back that value directly, same as importing a
	// single __builtins__ name, rather than building an always-empty module.
	if path != "std" {
		if v, ok := ip.Core.Get(path); ok {
			return v, nil
		}
	}

	prefix := path + ":"
	if path == "std" {
		prefix = "std:"
	}
	exports := NewMapObject()
	var names []string
	for _, name := range ip.stdNames {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, full := range names {
		short := strings.TrimPrefix(full, prefix)
		v, _ := ip.Core.Get(full)
		exports.Set(short, v)
	}
	return Value{Tag: VTModule, Data: &Module{Name: path, Exports: exports}}, nil
}

func (ip *Interpreter) execExport(n S, env *Env) (Value, error) {
	mapNode := n[1].(S)
	cell, ok := env.Cell("__exports__")
	if !ok {
		return Null, rtErr(ErrInvalidOperation, 0, 0, "'export' used outside of a module")
	}
	exports := cell.Data.(*MapObject)
	for _, pAny := range mapNode[1:] {
		p := pAny.(S)
		v, err := ip.eval(p[2].(S), env)
		if err != nil {
			return Null, err
		}
		exports.Set(p[1].(string), v)
	}
	return Null, nil
}

func (ip *Interpreter) execExportNames(n S, env *Env) (Value, error) {
	cell, ok := env.Cell("__exports__")
	if !ok {
		return Null, rtErr(ErrInvalidOperation, 0, 0, "'export' used outside of a module")
	}
	exports := cell.Data.(*MapObject)
	for _, nameAny := range n[1:] {
		name := nameAny.(string)
		v, ok := env.Get(name)
		if !ok {
			return Null, rtErr(ErrUndefined, 0, 0, "cannot export undefined name %q", name)
		}
		exports.Set(name, v)
	}
	return Null, nil
}
