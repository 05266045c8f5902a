package value_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ridgebeck/golisp/value"
)

// valueComparer lets cmp.Diff walk two Value trees built through different
// construction paths (List vs nested Pair literals) and report exactly
// where they diverge, using value.Equal as the leaf comparison.
var valueComparer = cmp.Comparer(func(a, b value.Value) bool {
	return value.Equal(a, b)
})

func TestListBuildsSameTreeAsNestedPairs(t *testing.T) {
	built := value.List(value.Int{Val: 1}, value.Int{Val: 2}, value.Int{Val: 3})
	handRolled := value.Pair{
		Car: value.Int{Val: 1},
		Cdr: value.Pair{
			Car: value.Int{Val: 2},
			Cdr: value.Pair{
				Car: value.Int{Val: 3},
				Cdr: value.Null,
			},
		},
	}
	if diff := cmp.Diff(handRolled, built, valueComparer); diff != "" {
		t.Errorf("list construction mismatch (-hand +List):\n%s", diff)
	}
}

func TestToSliceRoundTripsThroughList(t *testing.T) {
	elems := []value.Value{value.Symbol{Name: "a"}, value.Str{Val: "b"}, value.Bool{Val: true}}
	out, err := value.ToSlice(value.List(elems...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(elems, out, valueComparer); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEqualDistinguishesDifferingTails(t *testing.T) {
	proper := value.List(value.Int{Val: 1}, value.Int{Val: 2})
	dotted := value.Pair{Car: value.Int{Val: 1}, Cdr: value.Pair{Car: value.Int{Val: 2}, Cdr: value.Int{Val: 3}}}
	if value.Equal(proper, dotted) {
		t.Errorf("expected proper list and dotted list with same head to compare unequal")
	}
}
