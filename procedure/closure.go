/*
File    : golisp/procedure/closure.go
Package : procedure

Package procedure defines Closure, the user-defined-procedure Value
variant: a name, parameter list, body and captured scope bundled together.
Params is itself a value.Value and Body a slice of them (an S-expression
list and a symbol share one representation with code here), so a closure's own
definition can be inspected and manipulated the same way any other datum
can.

Closure lives in its own package, separate from value, purely to break an
import cycle: environment needs value (bindings hold Values), and Closure
needs environment (to capture *environment.Environment), so Closure
cannot live inside value without value importing environment importing
value.
*/
package procedure

import (
	"fmt"

	"github.com/ridgebeck/golisp/environment"
	"github.com/ridgebeck/golisp/value"
)

// Closure is a user-defined procedure created by `lambda` (or the
// `(define (f p...) ...)` shorthand for it).
//
// Params is either a value.Symbol (variadic: the whole argument list binds
// to that one name) or a proper value.Pair list of distinct value.Symbol
// names (fixed arity). Body is a non-empty slice of expressions evaluated
// in order when the closure is applied; the last one's value is returned.
// Env is the frame active where the lambda was evaluated, held live, not
// copied, so set! inside the closure is visible to anyone else holding
// that frame.
type Closure struct {
	Name   string // empty for an anonymous lambda; set when `define` binds it
	Params value.Value
	Body   []value.Value
	Env    *environment.Environment
}

func (*Closure) Kind() value.Kind { return value.ClosureKind }

// String renders a closure opaquely, without its captured state.
func (*Closure) String() string { return "#<procedure>" }

// EqualTo implements value.EqualOps: two closures are equal? iff they share
// the same parameter list, body and captured environment identity.
func (c *Closure) EqualTo(other value.Value) bool {
	o, ok := other.(*Closure)
	if !ok {
		return false
	}
	if o.Env != c.Env {
		return false
	}
	if !value.Equal(c.Params, o.Params) {
		return false
	}
	if len(c.Body) != len(o.Body) {
		return false
	}
	for i := range c.Body {
		if !value.Equal(c.Body[i], o.Body[i]) {
			return false
		}
	}
	return true
}

// BindArgs binds args into a fresh frame whose parent is the closure's
// captured environment:
//   - a single-symbol Params binds the whole evaluated argument list
//     (variadic);
//   - otherwise Params and args are walked in lock-step and must exhaust
//     together, or the call is an arity error.
func (c *Closure) BindArgs(args []value.Value) (*environment.Environment, error) {
	frame := environment.New(c.Env)
	if sym, ok := c.Params.(value.Symbol); ok {
		frame.Define(sym.Name, value.List(args...))
		return frame, nil
	}
	cur := c.Params
	i := 0
	for {
		switch p := cur.(type) {
		case value.Pair:
			sym, ok := p.Car.(value.Symbol)
			if !ok {
				return nil, fmt.Errorf("invalid parameter list: expected symbol, got %s", p.Car.String())
			}
			if i >= len(args) {
				return nil, fmt.Errorf("wrong number of arguments to %s", c.displayName())
			}
			frame.Define(sym.Name, args[i])
			i++
			cur = p.Cdr
		case nil:
			return nil, fmt.Errorf("invalid parameter list")
		default:
			if !value.IsNull(cur) {
				return nil, fmt.Errorf("invalid parameter list: improper list")
			}
			if i != len(args) {
				return nil, fmt.Errorf("wrong number of arguments to %s", c.displayName())
			}
			return frame, nil
		}
	}
}

func (c *Closure) displayName() string {
	if c.Name != "" {
		return c.Name
	}
	return "#<procedure>"
}
