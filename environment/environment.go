/*
File    : golisp/environment/environment.go
Package : environment

Package environment implements the lexically scoped frame chain: a map of
bindings plus a parent pointer, walked outward on lookup. A closure's
captured environment is a live reference to the defining frame, not a
snapshot: set! inside a closure must be observed by every other holder of
that frame.
*/
package environment

import (
	"fmt"

	"github.com/ridgebeck/golisp/value"
)

// Environment is a single lexical frame: a set of bindings plus a link to
// the enclosing frame. The root frame (the global environment seeded with
// primitives) has a nil Parent.
type Environment struct {
	bindings map[string]value.Value
	Parent   *Environment
}

// New creates a frame whose enclosing scope is parent. Pass nil to create
// the root (global) frame.
func New(parent *Environment) *Environment {
	return &Environment{
		bindings: make(map[string]value.Value),
		Parent:   parent,
	}
}

// Lookup walks current -> parent -> ... and returns the first binding for
// name. Absence is reported as an error so callers can surface an
// "unbound variable" diagnostic.
func (e *Environment) Lookup(name string) (value.Value, error) {
	for f := e; f != nil; f = f.Parent {
		if v, ok := f.bindings[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unbound variable: %s", name)
}

// Has reports whether name is bound in this frame or any parent, without
// the cost of constructing an error.
func (e *Environment) Has(name string) bool {
	for f := e; f != nil; f = f.Parent {
		if _, ok := f.bindings[name]; ok {
			return true
		}
	}
	return false
}

// HasLocal reports whether name is bound directly in this frame (not a
// parent).
func (e *Environment) HasLocal(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

// Define creates or overwrites a binding in this frame only. This backs
// the `define` special form and initial parameter binding for lambda
// application.
func (e *Environment) Define(name string, v value.Value) {
	e.bindings[name] = v
}

// Set finds name via lexical lookup and mutates its binding in place,
// which is the frame where it was originally defined, not necessarily
// the current one. This backs `set!`. It returns an error if name is
// unbound anywhere in the chain.
func (e *Environment) Set(name string, v value.Value) error {
	for f := e; f != nil; f = f.Parent {
		if _, ok := f.bindings[name]; ok {
			f.bindings[name] = v
			return nil
		}
	}
	return fmt.Errorf("unbound variable: %s", name)
}
