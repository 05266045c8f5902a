/*
File    : golisp/eval/eval_sequencing.go
Package : eval

`and`, `or`, `not`, `begin`, and `display`. `and`/`or` short-circuit left
to right: the early return below means a remaining operand is never
evaluated once the outcome is decided.
*/
package eval

import (
	"fmt"

	"github.com/ridgebeck/golisp/environment"
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/value"
)

func evalAnd(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) == 0 {
		return value.Bool{Val: true}, nil
	}
	var result value.Value = value.Bool{Val: true}
	for _, a := range args {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		b, err := asBool(v, "and")
		if err != nil {
			return nil, err
		}
		if !b {
			return value.Bool{Val: false}, nil
		}
		result = v
	}
	return result, nil
}

func evalOr(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) == 0 {
		return value.Bool{Val: false}, nil
	}
	for _, a := range args {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		b, err := asBool(v, "or")
		if err != nil {
			return nil, err
		}
		if b {
			return value.Bool{Val: true}, nil
		}
	}
	return value.Bool{Val: false}, nil
}

func evalNot(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, ilerr.Evalf("not: expected exactly 1 operand, got %d", len(args))
	}
	v, err := e.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	b, err := asBool(v, "not")
	if err != nil {
		return nil, err
	}
	return value.Bool{Val: !b}, nil
}

func evalBegin(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	return e.evalBody(args, env)
}

// evalDisplay prints the evaluated value to the evaluator's writer. A
// Pair prints the same way here as the top-level echo does, via
// Value.String().
func evalDisplay(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, ilerr.Evalf("display: expected exactly 1 operand, got %d", len(args))
	}
	v, err := e.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(e.Writer, v.String())
	return value.TheVoid, nil
}
