/*
File    : golisp/eval/eval_bindings.go
Package : eval

`let`, `let*`, `letrec`, `letrec*`. The two-phase letrec protocol (bind
every name to value.TheUnspecified, evaluate every right-hand side, then
assign) relies on eval_core.go's Eval to catch a reference to a
still-Unspecified slot the moment it looks up a Symbol; there is nothing
letrec-specific about that check.
*/
package eval

import (
	"github.com/ridgebeck/golisp/environment"
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/value"
)

type bindingClause struct {
	name string
	expr value.Value
}

func parseBindingClauses(form string, bindings value.Value) ([]bindingClause, error) {
	raw, err := value.ToSlice(bindings)
	if err != nil {
		return nil, ilerr.Evalf("%s: malformed binding list", form)
	}
	clauses := make([]bindingClause, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, b := range raw {
		parts, err := value.ToSlice(b)
		if err != nil || len(parts) != 2 {
			return nil, ilerr.Evalf("%s: each binding must be (name expr)", form)
		}
		sym, ok := parts[0].(value.Symbol)
		if !ok {
			return nil, ilerr.Evalf("%s: binding name must be a symbol, got %s", form, parts[0].String())
		}
		if seen[sym.Name] {
			return nil, ilerr.Evalf("%s: duplicate bound variable: %s", form, sym.Name)
		}
		seen[sym.Name] = true
		clauses = append(clauses, bindingClause{name: sym.Name, expr: parts[1]})
	}
	return clauses, nil
}

func splitLetForm(form string, args []value.Value) (value.Value, []value.Value, error) {
	if len(args) < 1 {
		return nil, nil, ilerr.Evalf("%s: expected a binding list", form)
	}
	return args[0], args[1:], nil
}

func evalLet(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	bindings, body, err := splitLetForm("let", args)
	if err != nil {
		return nil, err
	}
	clauses, err := parseBindingClauses("let", bindings)
	if err != nil {
		return nil, err
	}
	values := make([]value.Value, len(clauses))
	for i, c := range clauses {
		v, err := e.Eval(c.expr, env)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	frame := environment.New(env)
	for i, c := range clauses {
		frame.Define(c.name, values[i])
	}
	return e.evalBody(body, frame)
}

func evalLetStar(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	bindings, body, err := splitLetForm("let*", args)
	if err != nil {
		return nil, err
	}
	clauses, err := parseBindingClauses("let*", bindings)
	if err != nil {
		return nil, err
	}
	frame := env
	for _, c := range clauses {
		v, err := e.Eval(c.expr, frame)
		if err != nil {
			return nil, err
		}
		frame = environment.New(frame)
		frame.Define(c.name, v)
	}
	if frame == env {
		frame = environment.New(env)
	}
	return e.evalBody(body, frame)
}

func evalLetrec(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	bindings, body, err := splitLetForm("letrec", args)
	if err != nil {
		return nil, err
	}
	clauses, err := parseBindingClauses("letrec", bindings)
	if err != nil {
		return nil, err
	}
	frame := environment.New(env)
	for _, c := range clauses {
		frame.Define(c.name, value.TheUnspecified)
	}
	values := make([]value.Value, len(clauses))
	for i, c := range clauses {
		v, err := e.Eval(c.expr, frame)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	for i, c := range clauses {
		frame.Define(c.name, values[i])
	}
	return e.evalBody(body, frame)
}

func evalLetrecStar(e *Evaluator, args []value.Value, env *environment.Environment) (value.Value, error) {
	bindings, body, err := splitLetForm("letrec*", args)
	if err != nil {
		return nil, err
	}
	clauses, err := parseBindingClauses("letrec*", bindings)
	if err != nil {
		return nil, err
	}
	frame := environment.New(env)
	for _, c := range clauses {
		frame.Define(c.name, value.TheUnspecified)
	}
	for _, c := range clauses {
		v, err := e.Eval(c.expr, frame)
		if err != nil {
			return nil, err
		}
		frame.Define(c.name, v)
	}
	return e.evalBody(body, frame)
}
