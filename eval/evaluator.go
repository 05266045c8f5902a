/*
File    : golisp/eval/evaluator.go
Package : eval

Package eval implements the tree-walking evaluator: dispatch on a parsed
expression tree, resolving symbols through lexical environments and
applying closures/primitives. Evaluator bundles the global frame and the
io.Writer display output goes to, and a constructor that seeds a fresh
global frame with a builtin table.
*/
package eval

import (
	"io"
	"os"

	"github.com/ridgebeck/golisp/environment"
	"github.com/ridgebeck/golisp/value"
)

// Evaluator holds the mutable state shared across a single interpreter
// session: the global frame (which define and set! mutate) and the
// destination for display output.
type Evaluator struct {
	Global *environment.Environment
	Writer io.Writer
}

// New creates an Evaluator with a fresh global frame seeded by seed
// (normally builtins.Register), writing display output to os.Stdout.
func New(seed func(*environment.Environment)) *Evaluator {
	global := environment.New(nil)
	if seed != nil {
		seed(global)
	}
	return &Evaluator{Global: global, Writer: os.Stdout}
}

// SetWriter redirects display output, mainly for tests that capture it.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// EvalTopLevel evaluates one top-level form against the global frame.
func (e *Evaluator) EvalTopLevel(form value.Value) (value.Value, error) {
	return e.Eval(form, e.Global)
}
