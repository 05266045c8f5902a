/*
File    : golisp/builtins/builtins.go
Package : builtins

Package builtins implements the table of primitive procedures. Each file
in this package declares its own slice of entries and an init() that
appends it to the package-wide registry; Register seeds a fresh global
frame from that registry. None of these primitives need to call back into
a user-defined Closure, so the callback signature is the plain
value.PrimitiveFn the value package already declares.
*/
package builtins

import (
	"github.com/ridgebeck/golisp/environment"
	"github.com/ridgebeck/golisp/value"
)

// primitive is one row of the table: a name and the function it resolves
// to.
type primitive struct {
	name string
	fn   value.PrimitiveFn
}

// registry accumulates every []primitive slice that this package's files
// pass to register from their init() functions.
var registry []primitive

func register(entries []primitive) {
	registry = append(registry, entries...)
}

// Register seeds env with every builtin primitive procedure, wrapping
// each in a value.Primitive binding.
func Register(env *environment.Environment) {
	for _, e := range registry {
		env.Define(e.name, value.Primitive{Name: e.name, Fn: e.fn})
	}
}
