/*
File    : golisp/eval/eval_test.go
Package : eval

End-to-end scenarios driven through the real lexer+parser pipeline rather
than hand-built Value trees, exercising the evaluator the way a user's
source text actually reaches it.
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgebeck/golisp/builtins"
	"github.com/ridgebeck/golisp/parser"
	"github.com/ridgebeck/golisp/value"
)

func run(t *testing.T, src string) []value.Value {
	t.Helper()
	forms, err := parser.ParseSource(src)
	require.NoError(t, err)

	e := New(builtins.Register)
	var out []value.Value
	for _, f := range forms {
		v, err := e.EvalTopLevel(f)
		require.NoError(t, err, src)
		out = append(out, v)
	}
	return out
}

func TestArithmeticAddition(t *testing.T) {
	out := run(t, "(+ 1 2 3)")
	require.Len(t, out, 1)
	assert.Equal(t, "6", out[0].String())
}

func TestRecursiveFactorial(t *testing.T) {
	out := run(t, "(define (fact n) (if (= n 0) 1 (* n (fact (- n 1))))) (fact 5)")
	require.Len(t, out, 2)
	assert.Equal(t, "120", out[1].String())
}

func TestLetBinding(t *testing.T) {
	out := run(t, "(let ((x 1) (y 2)) (+ x y))")
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].String())
}

func TestLetStarSequentialBinding(t *testing.T) {
	out := run(t, "(let* ((x 1) (y (+ x 1))) (* x y))")
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].String())
}

func TestLetrecMutualRecursion(t *testing.T) {
	out := run(t, `(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
	                          (odd? (lambda (n) (if (= n 0) #f (even? (- n 1))))))
	                (even? 10))`)
	require.Len(t, out, 1)
	assert.Equal(t, "#t", out[0].String())
}

func TestVariadicLambda(t *testing.T) {
	out := run(t, "((lambda xs (car xs)) 7 8 9)")
	require.Len(t, out, 1)
	assert.Equal(t, "7", out[0].String())
}

func TestClosureCapturesLiveFrame(t *testing.T) {
	out := run(t, "(define c (let ((k 0)) (lambda () (set! k (+ k 1)) k))) (c) (c) (c)")
	require.Len(t, out, 4)
	assert.Equal(t, "1", out[1].String())
	assert.Equal(t, "2", out[2].String())
	assert.Equal(t, "3", out[3].String())
}

func TestEqualOverQuoteAndCons(t *testing.T) {
	out := run(t, "(equal? '(1 2 (3 . 4)) (cons 1 (cons 2 (cons (cons 3 4) '()))))")
	require.Len(t, out, 1)
	assert.Equal(t, "#t", out[0].String())
}

func TestQuoteReturnsStructurallyEqualValue(t *testing.T) {
	out := run(t, "(equal? '(a b c) (list 'a 'b 'c))")
	require.Len(t, out, 1)
	assert.Equal(t, "#t", out[0].String())
}

func TestShadowingIfAsOrdinaryBinding(t *testing.T) {
	out := run(t, "(define if 42) if")
	require.Len(t, out, 2)
	assert.Equal(t, "42", out[1].String())
}

func TestAndShortCircuits(t *testing.T) {
	out := run(t, "(define calls 0) (define (bump) (set! calls (+ calls 1)) #t) (and #f (bump)) calls")
	require.Len(t, out, 4)
	assert.Equal(t, "0", out[3].String())
}

func TestSetObservedAcrossSharedFrame(t *testing.T) {
	out := run(t, `(define box (lambda ()
	                  (let ((v 0))
	                    (cons (lambda () v) (lambda (n) (set! v n))))))
	                (define pair (box))
	                ((cdr pair) 99)
	                ((car pair))`)
	require.Len(t, out, 4)
	assert.Equal(t, "99", out[3].String())
}

func TestUnboundVariableIsFatal(t *testing.T) {
	forms, err := parser.ParseSource("undefined-name")
	require.NoError(t, err)
	e := New(builtins.Register)
	_, err = e.EvalTopLevel(forms[0])
	require.Error(t, err)
}

func TestLetrecForwardReferenceIsFatal(t *testing.T) {
	forms, err := parser.ParseSource("(letrec ((x y) (y 1)) x)")
	require.NoError(t, err)
	e := New(builtins.Register)
	_, err = e.EvalTopLevel(forms[0])
	require.Error(t, err)
}

func TestDuplicateLetBindingIsFatal(t *testing.T) {
	forms, err := parser.ParseSource("(let ((x 1) (x 2)) x)")
	require.NoError(t, err)
	e := New(builtins.Register)
	_, err = e.EvalTopLevel(forms[0])
	require.Error(t, err)
}

func TestCondElseMustBeLast(t *testing.T) {
	forms, err := parser.ParseSource("(cond (else 1) (#t 2))")
	require.NoError(t, err)
	e := New(builtins.Register)
	_, err = e.EvalTopLevel(forms[0])
	require.Error(t, err)
}

func TestDisplayWritesToConfiguredWriter(t *testing.T) {
	forms, err := parser.ParseSource(`(display "hello")`)
	require.NoError(t, err)
	e := New(builtins.Register)
	var buf bytes.Buffer
	e.SetWriter(&buf)
	_, err = e.EvalTopLevel(forms[0])
	require.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}

func TestApplyingNonProcedureIsFatal(t *testing.T) {
	forms, err := parser.ParseSource("(1 2 3)")
	require.NoError(t, err)
	e := New(builtins.Register)
	_, err = e.EvalTopLevel(forms[0])
	require.Error(t, err)
}
