/*
File    : golisp/eval/eval_core.go
Package : eval

Implements the atom/compound dispatch and the apply protocol. Trying an
environment lookup of the head symbol before falling back to special-form
dispatch is the one piece of control flow every other file in this
package depends on: it is what lets user code shadow `if`, `let`, and
friends by defining them as ordinary values.
*/
package eval

import (
	"github.com/ridgebeck/golisp/environment"
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/procedure"
	"github.com/ridgebeck/golisp/value"
)

// specialForm is one entry in the dispatch table: it receives the raw,
// unevaluated operand list and the environment the form is being
// evaluated in.
type specialForm func(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error)

var specialForms map[string]specialForm

func init() {
	specialForms = map[string]specialForm{
		"quote":   evalQuote,
		"if":      evalIf,
		"when":    evalWhen,
		"unless":  evalUnless,
		"cond":    evalCond,
		"and":     evalAnd,
		"or":      evalOr,
		"not":     evalNot,
		"begin":   evalBegin,
		"let":     evalLet,
		"let*":    evalLetStar,
		"letrec":  evalLetrec,
		"letrec*": evalLetrecStar,
		"lambda":  evalLambda,
		"define":  evalDefine,
		"set!":    evalSet,
		"display": evalDisplay,
	}
}

// Eval computes the value of expr in env.
func (e *Evaluator) Eval(expr value.Value, env *environment.Environment) (value.Value, error) {
	switch v := expr.(type) {
	case value.Int, value.Float, value.Str, value.Bool, value.Void,
		*procedure.Closure, value.Primitive:
		return expr, nil

	case value.Symbol:
		bound, err := env.Lookup(v.Name)
		if err != nil {
			return nil, ilerr.Evalf("unbound variable: %s", v.Name)
		}
		if _, ok := bound.(value.Unspecified); ok {
			return nil, ilerr.Evalf("unbound variable within letrec: %s", v.Name)
		}
		return bound, nil

	case value.Pair:
		return e.evalPair(v, env)

	default:
		// value.Null and value.Unspecified (an unexported nullType and the
		// Unspecified struct) fall through here; both are self-evaluating
		// when they reach Eval directly rather than via a symbol lookup.
		return expr, nil
	}
}

func (e *Evaluator) evalPair(p value.Pair, env *environment.Environment) (value.Value, error) {
	if sym, ok := p.Car.(value.Symbol); ok && !env.Has(sym.Name) {
		if form, ok := specialForms[sym.Name]; ok {
			args, err := value.ToSlice(p.Cdr)
			if err != nil {
				return nil, ilerr.Evalf("%s: improper argument list", sym.Name)
			}
			return form(e, args, env)
		}
	}

	head, err := e.Eval(p.Car, env)
	if err != nil {
		return nil, err
	}
	rawArgs, err := value.ToSlice(p.Cdr)
	if err != nil {
		return nil, ilerr.Evalf("improper argument list in call")
	}
	args := make([]value.Value, len(rawArgs))
	for i, a := range rawArgs {
		av, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = av
	}
	return e.Apply(head, args)
}

// Apply invokes a callable value: a primitive or a user-defined closure.
func (e *Evaluator) Apply(callee value.Value, args []value.Value) (value.Value, error) {
	switch fn := callee.(type) {
	case value.Primitive:
		return fn.Fn(args)
	case *procedure.Closure:
		frame, err := fn.BindArgs(args)
		if err != nil {
			return nil, ilerr.Evalf("%s", err)
		}
		return e.evalBody(fn.Body, frame)
	default:
		return nil, ilerr.Evalf("cannot apply non-procedure: %s", callee.String())
	}
}

// evalBody evaluates an implicit sequence, returning the last result, or
// Void when the sequence is empty. Used by lambda application and every sequencing special form
// (begin, let-family bodies, when/unless/cond clause bodies).
func (e *Evaluator) evalBody(body []value.Value, env *environment.Environment) (value.Value, error) {
	if len(body) == 0 {
		return value.TheVoid, nil
	}
	var result value.Value = value.TheVoid
	for _, form := range body {
		v, err := e.Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func asBool(v value.Value, context string) (bool, error) {
	b, ok := v.(value.Bool)
	if !ok {
		return false, ilerr.Evalf("%s: expected a boolean, got %s", context, v.String())
	}
	return b.Val, nil
}
