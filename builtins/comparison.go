/*
File    : golisp/builtins/comparison.go
Package : builtins

`= < > <= >=`: variadic, true pairwise across every consecutive pair left
to right, with 0 or 1 arguments trivially true. Integer/float
cross-comparison widens the integer to float64 first, rather than
comparing a float64 against a raw int64 bit pattern.
*/
package builtins

import "github.com/ridgebeck/golisp/value"

func init() {
	register([]primitive{
		{"=", comparisonFn("=", func(a, b float64) bool { return a == b })},
		{"<", comparisonFn("<", func(a, b float64) bool { return a < b })},
		{">", comparisonFn(">", func(a, b float64) bool { return a > b })},
		{"<=", comparisonFn("<=", func(a, b float64) bool { return a <= b })},
		{">=", comparisonFn(">=", func(a, b float64) bool { return a >= b })},
	})
}

func comparisonFn(who string, pred func(a, b float64) bool) value.PrimitiveFn {
	return func(args []value.Value) (value.Value, error) {
		if len(args) <= 1 {
			for _, a := range args {
				if _, _, err := numeric(a, who); err != nil {
					return nil, err
				}
			}
			return value.Bool{Val: true}, nil
		}
		prev, _, err := numeric(args[0], who)
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			cur, _, err := numeric(a, who)
			if err != nil {
				return nil, err
			}
			if !pred(prev, cur) {
				return value.Bool{Val: false}, nil
			}
			prev = cur
		}
		return value.Bool{Val: true}, nil
	}
}
