/*
File    : golisp/builtins/arithmetic.go
Package : builtins

`+ - * / modulo`, implementing a small numeric tower: a result stays Int
only when every operand is an Int (and, for `/`, the division is exact);
any Float operand, or an inexact `/`, widens the result to Float.
*/
package builtins

import (
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/value"
)

func init() {
	register([]primitive{
		{"+", addFn},
		{"-", subFn},
		{"*", mulFn},
		{"/", divFn},
		{"modulo", moduloFn},
	})
}

// numeric reads an operand as (float64, isInt). Non-numeric operands are
// a type error.
func numeric(v value.Value, who string) (float64, bool, error) {
	switch n := v.(type) {
	case value.Int:
		return float64(n.Val), true, nil
	case value.Float:
		return n.Val, false, nil
	default:
		return 0, false, ilerr.Evalf("%s: expected a number, got %s", who, v.String())
	}
}

func addFn(args []value.Value) (value.Value, error) {
	sumI := int64(0)
	sumF := float64(0)
	allInt := true
	for _, a := range args {
		f, isInt, err := numeric(a, "+")
		if err != nil {
			return nil, err
		}
		sumF += f
		if isInt {
			sumI += a.(value.Int).Val
		} else {
			allInt = false
		}
	}
	if allInt {
		return value.Int{Val: sumI}, nil
	}
	return value.Float{Val: sumF}, nil
}

func mulFn(args []value.Value) (value.Value, error) {
	prodI := int64(1)
	prodF := float64(1)
	allInt := true
	for _, a := range args {
		f, isInt, err := numeric(a, "*")
		if err != nil {
			return nil, err
		}
		prodF *= f
		if isInt {
			prodI *= a.(value.Int).Val
		} else {
			allInt = false
		}
	}
	if allInt {
		return value.Int{Val: prodI}, nil
	}
	return value.Float{Val: prodF}, nil
}

func subFn(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, ilerr.Evalf("-: expected at least 1 operand")
	}
	first, isInt, err := numeric(args[0], "-")
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if isInt {
			return value.Int{Val: -args[0].(value.Int).Val}, nil
		}
		return value.Float{Val: -first}, nil
	}
	resultF := first
	resultI := int64(0)
	allInt := isInt
	if isInt {
		resultI = args[0].(value.Int).Val
	}
	for _, a := range args[1:] {
		f, isInt, err := numeric(a, "-")
		if err != nil {
			return nil, err
		}
		resultF -= f
		if isInt {
			resultI -= a.(value.Int).Val
		} else {
			allInt = false
		}
	}
	if allInt {
		return value.Int{Val: resultI}, nil
	}
	return value.Float{Val: resultF}, nil
}

func divFn(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, ilerr.Evalf("/: expected exactly 2 operands, got %d", len(args))
	}
	a, aIsInt, err := numeric(args[0], "/")
	if err != nil {
		return nil, err
	}
	b, bIsInt, err := numeric(args[1], "/")
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, ilerr.Evalf("/: division by zero")
	}
	if aIsInt && bIsInt {
		ai, bi := args[0].(value.Int).Val, args[1].(value.Int).Val
		if ai%bi == 0 {
			return value.Int{Val: ai / bi}, nil
		}
	}
	return value.Float{Val: a / b}, nil
}

func moduloFn(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, ilerr.Evalf("modulo: expected exactly 2 operands, got %d", len(args))
	}
	a, ok1 := args[0].(value.Int)
	b, ok2 := args[1].(value.Int)
	if !ok1 || !ok2 {
		return nil, ilerr.Evalf("modulo: expected two integers")
	}
	if b.Val == 0 {
		return nil, ilerr.Evalf("modulo: division by zero")
	}
	m := a.Val % b.Val
	if m != 0 && (m < 0) != (b.Val < 0) {
		m += b.Val
	}
	return value.Int{Val: m}, nil
}
