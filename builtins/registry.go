/*
File   : cloudy/builtins/registry.go
Package: builtins
*/

// Package builtins implements Cloudy's standard library: the fixed set
// of Go-backed functions every program can call without an import.
// Each is registered by name with its expected argument names; the
// interp package binds call arguments into a fresh Context exactly as
// it would for a user-defined Function, then looks up and invokes the
// matching Spec here — keeping this package free of any dependency on
// interp itself.
package builtins

import (
	"bufio"
	"os"

	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/value"
)

// Spec is one registered builtin: its name, the parameter names its
// call context will be populated with, and the Go implementation.
type Spec struct {
	Name     string
	ArgNames []string
	Fn       func(ctx *value.Context) (value.Value, *cerr.Error)
}

// Registry maps a builtin's name to its Spec, built from specs by
// init() below — mirroring the teacher's own global-slice-plus-init
// registration idiom.
var Registry = map[string]*Spec{}

var specs []*Spec

func register(s *Spec) {
	specs = append(specs, s)
}

func init() {
	for _, s := range specs {
		Registry[s.Name] = s
	}
}

// Names returns every registered builtin name, in registration order —
// used to seed the interpreter's global symbol table with a
// BuiltinFunction for each.
func Names() []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}

// Stdin/Stdout are package-level so tests can redirect them without
// threading an io.Writer through every call.
var (
	Stdin  = bufio.NewReader(os.Stdin)
	Stdout = os.Stdout
)

// RunCallback executes a Cloudy source file and returns its result,
// wired in by the top-level package at startup so the `run` builtin
// can recurse into the lex/parse/interpret pipeline without this
// package importing it (which would cycle back through interp).
var RunCallback func(filename string) (value.Value, *cerr.Error)

func arg(ctx *value.Context, name string) value.Value {
	v, _ := ctx.SymbolTable.Get(name)
	return v
}

func typeMismatch(v value.Value, want string) *cerr.Error {
	start, end := v.Pos()
	return cerr.New(cerr.TypeMismatch, start, end, "Expected "+want)
}
