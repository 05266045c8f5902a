/*
File    : golisp/eval/eval_functions.go
Package : eval

`quote`, `lambda`, `define`, and `set!`. The `(define (f p...) B...)`
shorthand is expanded into the equivalent `(define f (lambda (p...)
B...))` form rather than being given its own Closure-construction path.
*/
package eval

import (
	"github.com/ridgebeck/golisp/environment"
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/procedure"
	"github.com/ridgebeck/golisp/value"
)

func evalQuote(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, ilerr.Evalf("quote: expected exactly 1 operand, got %d", len(args))
	}
	return args[0], nil
}

func validParams(params value.Value) bool {
	if _, ok := params.(value.Symbol); ok {
		return true
	}
	seen := make(map[string]bool)
	cur := params
	for {
		switch p := cur.(type) {
		case value.Pair:
			sym, ok := p.Car.(value.Symbol)
			if !ok || seen[sym.Name] {
				return false
			}
			seen[sym.Name] = true
			cur = p.Cdr
		default:
			return value.IsNull(cur)
		}
	}
}

func evalLambda(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) < 2 {
		return nil, ilerr.Evalf("lambda: expected a parameter list and a non-empty body")
	}
	params := args[0]
	if !validParams(params) {
		return nil, ilerr.Evalf("lambda: malformed or duplicate parameter list")
	}
	return &procedure.Closure{
		Params: params,
		Body:   args[1:],
		Env:    env,
	}, nil
}

func evalDefine(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) < 1 {
		return nil, ilerr.Evalf("define: expected a name and a value")
	}

	// Shorthand: (define (f p...) B...) == (define f (lambda (p...) B...))
	if head, ok := args[0].(value.Pair); ok {
		nameSym, ok := head.Car.(value.Symbol)
		if !ok {
			return nil, ilerr.Evalf("define: function name must be a symbol")
		}
		if len(args) < 2 {
			return nil, ilerr.Evalf("define: function body must not be empty")
		}
		closure, err := evalLambda(e, append([]value.Value{head.Cdr}, args[1:]...), env)
		if err != nil {
			return nil, err
		}
		closure.(*procedure.Closure).Name = nameSym.Name
		env.Define(nameSym.Name, closure)
		return value.TheVoid, nil
	}

	sym, ok := args[0].(value.Symbol)
	if !ok {
		return nil, ilerr.Evalf("define: expected a symbol, got %s", args[0].String())
	}
	if len(args) != 2 {
		return nil, ilerr.Evalf("define: expected exactly one value expression")
	}
	v, err := e.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if closure, ok := v.(*procedure.Closure); ok && closure.Name == "" {
		closure.Name = sym.Name
	}
	env.Define(sym.Name, v)
	return value.TheVoid, nil
}

func evalSet(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, ilerr.Evalf("set!: expected exactly 2 operands, got %d", len(args))
	}
	sym, ok := args[0].(value.Symbol)
	if !ok {
		return nil, ilerr.Evalf("set!: expected a symbol, got %s", args[0].String())
	}
	v, err := e.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(sym.Name, v); err != nil {
		return nil, ilerr.Evalf("set!: %s", err)
	}
	return value.TheVoid, nil
}
