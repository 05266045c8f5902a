/*
File    : golisp/builtins/builtins_test.go
Package : builtins
*/
package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgebeck/golisp/value"
)

func TestAddMixesIntAndFloat(t *testing.T) {
	v, err := addFn([]value.Value{value.Int{Val: 1}, value.Int{Val: 2}})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: 3}, v)

	v, err = addFn([]value.Value{value.Int{Val: 1}, value.Float{Val: 2.5}})
	require.NoError(t, err)
	assert.Equal(t, value.Float{Val: 3.5}, v)
}

func TestSubNegation(t *testing.T) {
	v, err := subFn([]value.Value{value.Int{Val: 5}})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: -5}, v)
}

func TestDivExactStaysInt(t *testing.T) {
	v, err := divFn([]value.Value{value.Int{Val: 6}, value.Int{Val: 3}})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: 2}, v)

	v, err = divFn([]value.Value{value.Int{Val: 7}, value.Int{Val: 2}})
	require.NoError(t, err)
	assert.Equal(t, value.Float{Val: 3.5}, v)
}

func TestDivByZero(t *testing.T) {
	_, err := divFn([]value.Value{value.Int{Val: 1}, value.Int{Val: 0}})
	require.Error(t, err)
}

func TestModulo(t *testing.T) {
	v, err := moduloFn([]value.Value{value.Int{Val: 7}, value.Int{Val: 3}})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: 1}, v)

	v, err = moduloFn([]value.Value{value.Int{Val: -7}, value.Int{Val: 3}})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: 2}, v)
}

func TestComparisonCrossType(t *testing.T) {
	v, err := comparisonFn("<", func(a, b float64) bool { return a < b })([]value.Value{
		value.Int{Val: 1}, value.Float{Val: 1.5}, value.Int{Val: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: true}, v)
}

func TestComparisonEmptyAndSingle(t *testing.T) {
	v, err := comparisonFn("=", func(a, b float64) bool { return a == b })(nil)
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: true}, v)

	v, err = comparisonFn("=", func(a, b float64) bool { return a == b })([]value.Value{value.Int{Val: 5}})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: true}, v)
}

func TestConsCarCdr(t *testing.T) {
	p, err := consFn([]value.Value{value.Int{Val: 1}, value.Int{Val: 2}})
	require.NoError(t, err)

	car, err := carFn([]value.Value{p})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: 1}, car)

	cdr, err := cdrFn([]value.Value{p})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: 2}, cdr)
}

func TestCarOfNonPairErrors(t *testing.T) {
	_, err := carFn([]value.Value{value.Int{Val: 1}})
	require.Error(t, err)
}

func TestNullPredicate(t *testing.T) {
	v, err := nullFn([]value.Value{value.Null})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: true}, v)

	v, err = nullFn([]value.Value{value.Int{Val: 0}})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: false}, v)
}

func TestAppendWithImproperTail(t *testing.T) {
	list := value.List(value.Int{Val: 1}, value.Int{Val: 2})
	v, err := appendFn([]value.Value{list, value.Int{Val: 3}})
	require.NoError(t, err)
	assert.Equal(t, "(1 2 . 3)", v.String())
}

func TestCadrCaddr(t *testing.T) {
	list := value.List(value.Int{Val: 1}, value.Int{Val: 2}, value.Int{Val: 3})
	v, err := cadrFn([]value.Value{list})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: 2}, v)

	v, err = caddrFn([]value.Value{list})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Val: 3}, v)
}

func TestLengthRejectsImproperList(t *testing.T) {
	improper := value.Pair{Car: value.Int{Val: 1}, Cdr: value.Int{Val: 2}}
	_, err := lengthFn([]value.Value{improper})
	require.Error(t, err)
}

func TestEqualStructural(t *testing.T) {
	a := value.List(value.Int{Val: 1}, value.Int{Val: 2})
	b := value.List(value.Int{Val: 1}, value.Int{Val: 2})
	v, err := equalFn([]value.Value{a, b})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: true}, v)
}

func TestTypePredicates(t *testing.T) {
	v, err := typePredicate(value.IntKind)([]value.Value{value.Int{Val: 1}})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: true}, v)

	v, err = typePredicate(value.IntKind)([]value.Value{value.Bool{Val: true}})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: false}, v)
}
