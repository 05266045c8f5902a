/*
File    : golisp/eval/eval_conditionals.go
Package : eval

`if`, `when`, `unless` and `cond`. Every condition here must evaluate to
a value.Bool: there is no truthiness coercion from other value kinds.
*/
package eval

import (
	"github.com/ridgebeck/golisp/environment"
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/value"
)

func evalIf(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, ilerr.Evalf("if: expected 2 or 3 operands, got %d", len(args))
	}
	cond, err := e.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	b, err := asBool(cond, "if")
	if err != nil {
		return nil, err
	}
	if b {
		return e.Eval(args[1], env)
	}
	if len(args) == 3 {
		return e.Eval(args[2], env)
	}
	return value.TheVoid, nil
}

func evalWhen(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) < 1 {
		return nil, ilerr.Evalf("when: expected a condition")
	}
	cond, err := e.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	b, err := asBool(cond, "when")
	if err != nil {
		return nil, err
	}
	if !b {
		return value.TheVoid, nil
	}
	return e.evalBody(args[1:], env)
}

func evalUnless(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) < 1 {
		return nil, ilerr.Evalf("unless: expected a condition")
	}
	cond, err := e.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	b, err := asBool(cond, "unless")
	if err != nil {
		return nil, err
	}
	if b {
		return value.TheVoid, nil
	}
	return e.evalBody(args[1:], env)
}

func evalCond(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	for i, clause := range args {
		parts, err := value.ToSlice(clause)
		if err != nil || len(parts) == 0 {
			return nil, ilerr.Evalf("cond: malformed clause")
		}
		test, body := parts[0], parts[1:]

		if sym, ok := test.(value.Symbol); ok && sym.Name == "else" {
			if i != len(args)-1 {
				return nil, ilerr.Evalf("cond: else clause must be last")
			}
			return e.evalBody(body, env)
		}

		cv, err := e.Eval(test, env)
		if err != nil {
			return nil, err
		}
		b, err := asBool(cv, "cond")
		if err != nil {
			return nil, err
		}
		if b {
			// A clause with an empty body (just a test) returns Void here
			// rather than the test value itself.
			return e.evalBody(body, env)
		}
	}
	return value.TheVoid, nil
}
