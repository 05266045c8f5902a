/*
File    : golisp/builtins/equality.go
Package : builtins

`equal?`: structural recursive equality, with closure equality delegated
to value.EqualOps (procedure.Closure.EqualTo) and primitive equality
comparing function identity, both implemented in value.Equal already, so
this is a thin wrapper.
*/
package builtins

import (
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/value"
)

func init() {
	register([]primitive{
		{"equal?", equalFn},
	})
}

func equalFn(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, ilerr.Evalf("equal?: expected exactly 2 operands, got %d", len(args))
	}
	return value.Bool{Val: value.Equal(args[0], args[1])}, nil
}
