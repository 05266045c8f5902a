/*
File    : golisp/builtins/predicates.go
Package : builtins

`pair?`, `procedure?`, `symbol?`, `integer?`, `boolean?`: type predicates
rounding out `null?`.
*/
package builtins

import "github.com/ridgebeck/golisp/value"

func init() {
	register([]primitive{
		{"pair?", typePredicate(value.PairKind)},
		{"symbol?", typePredicate(value.SymbolKind)},
		{"integer?", typePredicate(value.IntKind)},
		{"boolean?", typePredicate(value.BoolKind)},
		{"procedure?", procedureFn},
	})
}

func typePredicate(kind value.Kind) value.PrimitiveFn {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return value.Bool{Val: false}, nil
		}
		return value.Bool{Val: args[0].Kind() == kind}, nil
	}
}

// procedureFn matches both value.Primitive and procedure.Closure (the
// latter reports value.ClosureKind), without builtins importing procedure.
func procedureFn(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Bool{Val: false}, nil
	}
	k := args[0].Kind()
	return value.Bool{Val: k == value.PrimitiveKind || k == value.ClosureKind}, nil
}
