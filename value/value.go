/*
File    : golisp/value/value.go
Package : value

Package value defines Value, the one universal tagged node type shared by
the lexer, parser and evaluator. Every datum the interpreter ever touches,
numbers, strings, symbols, pairs, closures, primitives, implements this
same interface, which is what lets a parsed expression be evaluated without
any separate "AST node" representation: code is data.
*/
package value

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
)

// Kind tags which concrete variant a Value holds.
type Kind string

const (
	IntKind         Kind = "int"
	FloatKind       Kind = "float"
	StrKind         Kind = "string"
	BoolKind        Kind = "bool"
	SymbolKind      Kind = "symbol"
	NullKind        Kind = "null"
	PairKind        Kind = "pair"
	PrimitiveKind   Kind = "primitive"
	VoidKind        Kind = "void"
	UnspecifiedKind Kind = "unspecified"
	// ClosureKind is reserved for procedure.Closure, which lives outside
	// this package (see procedure/closure.go) to avoid an import cycle
	// with environment.
	ClosureKind Kind = "closure"
)

// Value is implemented by every datum the interpreter can produce: atoms,
// pairs, primitives and (in package procedure) closures.
//
// String returns the exact text the top-level printer and the `display`
// primitive use to render the value.
type Value interface {
	Kind() Kind
	String() string
}

// EqualOps lets a Value outside this package (namely procedure.Closure)
// participate in structural equal? comparisons without value importing it.
type EqualOps interface {
	EqualTo(other Value) bool
}

// Int is a signed machine integer.
type Int struct{ Val int64 }

func (Int) Kind() Kind { return IntKind }
func (i Int) String() string { return strconv.FormatInt(i.Val, 10) }

// Float is an IEEE-754 double, printed the way %f does (trailing zeros).
type Float struct{ Val float64 }

func (Float) Kind() Kind { return FloatKind }
func (f Float) String() string { return fmt.Sprintf("%f", f.Val) }

// Str holds immutable string-literal content. It prints verbatim, with no
// surrounding quotes.
type Str struct{ Val string }

func (Str) Kind() Kind { return StrKind }
func (s Str) String() string { return s.Val }

// Bool is one of #t / #f.
type Bool struct{ Val bool }

func (Bool) Kind() Kind { return BoolKind }
func (b Bool) String() string {
	if b.Val {
		return "#t"
	}
	return "#f"
}

// Symbol is an identifier, compared by its name.
type Symbol struct{ Name string }

func (Symbol) Kind() Kind { return SymbolKind }
func (s Symbol) String() string { return s.Name }

// nullType is the empty list. It is a distinct type (rather than a nil
// pointer) so that Pair.Cdr can always hold a concrete Value: a Pair slot
// is never absent, only Null.
type nullType struct{}

func (nullType) Kind() Kind { return NullKind }
func (nullType) String() string { return "()" }

// Null is the single empty-list value; every proper list terminates in it.
var Null Value = nullType{}

// IsNull reports whether v is the empty list.
func IsNull(v Value) bool {
	_, ok := v.(nullType)
	return ok
}

// Pair is a cons cell. Cdr need not be Null: dotted/improper lists are
// permitted.
type Pair struct {
	Car Value
	Cdr Value
}

func (Pair) Kind() Kind { return PairKind }

func (p Pair) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	buf.WriteString(p.Car.String())
	cur := p.Cdr
	for {
		switch c := cur.(type) {
		case nullType:
			buf.WriteByte(')')
			return buf.String()
		case Pair:
			buf.WriteByte(' ')
			buf.WriteString(c.Car.String())
			cur = c.Cdr
		default:
			buf.WriteString(" . ")
			buf.WriteString(cur.String())
			buf.WriteByte(')')
			return buf.String()
		}
	}
}

// PrimitiveFn is the signature every built-in procedure implements: it
// receives the already-evaluated argument list and returns a result or an
// error (arity, type mismatch, etc).
type PrimitiveFn func(args []Value) (Value, error)

// Primitive wraps a built-in procedure. Two Primitives are equal? iff they
// wrap the same underlying function.
type Primitive struct {
	Name string
	Fn   PrimitiveFn
}

func (Primitive) Kind() Kind { return PrimitiveKind }
func (p Primitive) String() string { return "#<procedure>" }

// Void is the distinguished no-value result produced by side-effecting
// forms (define, set!, display, a non-matching if). The top-level printer
// suppresses it.
type Void struct{}

func (Void) Kind() Kind { return VoidKind }
func (Void) String() string { return "" }

// TheVoid is the single Void value.
var TheVoid Value = Void{}

// Unspecified flags a letrec binding slot that has not yet been assigned.
// Observing it through a variable reference is the letrec-forward-reference
// error.
type Unspecified struct{}

func (Unspecified) Kind() Kind { return UnspecifiedKind }
func (Unspecified) String() string { return "#<unspecified>" }

// TheUnspecified is the single Unspecified sentinel.
var TheUnspecified Value = Unspecified{}

// List builds a proper list (terminated in Null) from the given elements.
func List(elems ...Value) Value {
	var result Value = Null
	for i := len(elems) - 1; i >= 0; i-- {
		result = Pair{Car: elems[i], Cdr: result}
	}
	return result
}

// ToSlice walks a proper list and returns its elements. It returns an error
// if the list is improper (its final Cdr is not Null).
func ToSlice(v Value) ([]Value, error) {
	var out []Value
	cur := v
	for {
		switch c := cur.(type) {
		case nullType:
			return out, nil
		case Pair:
			out = append(out, c.Car)
			cur = c.Cdr
		default:
			return nil, fmt.Errorf("improper list: expected () terminator, got %s", cur.String())
		}
	}
}

// Equal implements the structural recursive equal? comparison. Closures
// (and any other Value defined outside this package) delegate to EqualOps
// so this package never needs to import procedure.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Int:
		return av.Val == b.(Int).Val
	case Float:
		return av.Val == b.(Float).Val
	case Str:
		return av.Val == b.(Str).Val
	case Bool:
		return av.Val == b.(Bool).Val
	case Symbol:
		return av.Name == b.(Symbol).Name
	case nullType:
		return true
	case Pair:
		bv := b.(Pair)
		return Equal(av.Car, bv.Car) && Equal(av.Cdr, bv.Cdr)
	case Void:
		return true
	case Unspecified:
		return true
	case Primitive:
		bv := b.(Primitive)
		return reflect.ValueOf(av.Fn).Pointer() == reflect.ValueOf(bv.Fn).Pointer()
	}
	if eo, ok := a.(EqualOps); ok {
		return eo.EqualTo(b)
	}
	return false
}
