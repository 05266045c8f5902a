/*
File    : golisp/builtins/list.go
Package : builtins

`cons car cdr null? list append`, plus the `cadr`/`caddr`/`length`
accessors built out of them.
*/
package builtins

import (
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/value"
)

func init() {
	register([]primitive{
		{"cons", consFn},
		{"car", carFn},
		{"cdr", cdrFn},
		{"null?", nullFn},
		{"list", listFn},
		{"append", appendFn},
		{"cadr", cadrFn},
		{"caddr", caddrFn},
		{"length", lengthFn},
	})
}

func consFn(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, ilerr.Evalf("cons: expected exactly 2 operands, got %d", len(args))
	}
	return value.Pair{Car: args[0], Cdr: args[1]}, nil
}

func carFn(args []value.Value) (value.Value, error) {
	p, err := onePair(args, "car")
	if err != nil {
		return nil, err
	}
	return p.Car, nil
}

func cdrFn(args []value.Value) (value.Value, error) {
	p, err := onePair(args, "cdr")
	if err != nil {
		return nil, err
	}
	return p.Cdr, nil
}

func onePair(args []value.Value, who string) (value.Pair, error) {
	if len(args) != 1 {
		return value.Pair{}, ilerr.Evalf("%s: expected exactly 1 operand, got %d", who, len(args))
	}
	p, ok := args[0].(value.Pair)
	if !ok {
		return value.Pair{}, ilerr.Evalf("%s: expected a pair, got %s", who, args[0].String())
	}
	return p, nil
}

func nullFn(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, ilerr.Evalf("null?: expected exactly 1 operand, got %d", len(args))
	}
	return value.Bool{Val: value.IsNull(args[0])}, nil
}

func listFn(args []value.Value) (value.Value, error) {
	return value.List(args...), nil
}

// appendFn concatenates proper lists; only the last argument may be
// improper (or any type), and it becomes the literal tail of the result.
func appendFn(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Null, nil
	}
	var elems []value.Value
	for _, a := range args[:len(args)-1] {
		slice, err := value.ToSlice(a)
		if err != nil {
			return nil, ilerr.Evalf("append: every argument but the last must be a proper list")
		}
		elems = append(elems, slice...)
	}
	result := args[len(args)-1]
	for i := len(elems) - 1; i >= 0; i-- {
		result = value.Pair{Car: elems[i], Cdr: result}
	}
	return result, nil
}

// cadrFn is car(cdr(x)).
func cadrFn(args []value.Value) (value.Value, error) {
	rest, err := cdrFn(args)
	if err != nil {
		return nil, err
	}
	return carFn([]value.Value{rest})
}

// caddrFn is car(cdr(cdr(x))).
func caddrFn(args []value.Value) (value.Value, error) {
	rest, err := cdrFn(args)
	if err != nil {
		return nil, err
	}
	return cadrFn([]value.Value{rest})
}

// lengthFn returns a proper list's length; an improper tail is a type
// error.
func lengthFn(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, ilerr.Evalf("length: expected exactly 1 operand, got %d", len(args))
	}
	slice, err := value.ToSlice(args[0])
	if err != nil {
		return nil, ilerr.Evalf("length: expected a proper list, got %s", args[0].String())
	}
	return value.Int{Val: int64(len(slice))}, nil
}
