/*
File    : golisp/parser/parser.go
Package : parser

Package parser folds a flat token list into a list of top-level
expression trees in two passes: bracket folding, then quote/dot sugar
rewriting. There is no separate typed AST here: a parsed expression is
just a value.Value (almost always a value.Pair chain) that the evaluator
walks directly, since code and data share one representation.
*/
package parser

import (
	"strconv"

	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/lexer"
	"github.com/ridgebeck/golisp/value"
)

// quoteMarker and dotMarker stand in for the lexer's Quote and Dot tokens
// while pass 1 folds brackets; pass 2 (rewrite) consumes every marker it
// finds, so none of them ever reach the returned expression trees.
type quoteMarker struct{}

func (quoteMarker) Kind() value.Kind { return "quote-marker" }
func (quoteMarker) String() string   { return "'" }

type dotMarker struct{}

func (dotMarker) Kind() value.Kind { return "dot-marker" }
func (dotMarker) String() string   { return "." }

// frame is one in-progress list on the bracket-folding stack: the elements
// seen so far, and (for everything but the base frame) which opener kind
// started it, so a closer can be checked against it.
type frame struct {
	elems  []value.Value
	opener lexer.TokenType
	line   int
}

// ParseSource tokenizes and parses src in one call, returning the ordered
// top-level expression trees.
func ParseSource(src string) ([]value.Value, error) {
	toks, err := lexer.New(src).ConsumeTokens()
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// Parse folds tokens into top-level expression trees.
func Parse(tokens []lexer.Token) ([]value.Value, error) {
	stack := []*frame{{}}

	for _, tok := range tokens {
		top := stack[len(stack)-1]
		switch tok.Type {
		case lexer.LEFT_PAREN, lexer.LEFT_BRACKET:
			stack = append(stack, &frame{opener: tok.Type, line: tok.Line})

		case lexer.RIGHT_PAREN, lexer.RIGHT_BRACKET:
			if len(stack) == 1 {
				return nil, ilerr.Parsef("unmatched %q at line %d", tok.Literal, tok.Line)
			}
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !bracketsMatch(closed.opener, tok.Type) {
				return nil, ilerr.Parsef("mismatched brackets: opened with %q at line %d, closed with %q at line %d",
					closed.opener, closed.line, tok.Literal, tok.Line)
			}
			parent := stack[len(stack)-1]
			parent.elems = append(parent.elems, value.List(closed.elems...))

		case lexer.QUOTE_TYPE:
			top.elems = append(top.elems, quoteMarker{})

		case lexer.DOT_TYPE:
			top.elems = append(top.elems, dotMarker{})

		case lexer.INT_LIT:
			n, err := strconv.ParseInt(tok.Literal, 10, 64)
			if err != nil {
				return nil, ilerr.Parsef("invalid integer literal %q at line %d", tok.Literal, tok.Line)
			}
			top.elems = append(top.elems, value.Int{Val: n})

		case lexer.FLOAT_LIT:
			f, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				return nil, ilerr.Parsef("invalid float literal %q at line %d", tok.Literal, tok.Line)
			}
			top.elems = append(top.elems, value.Float{Val: f})

		case lexer.STRING_LIT:
			top.elems = append(top.elems, value.Str{Val: tok.Literal})

		case lexer.BOOL_LIT:
			top.elems = append(top.elems, value.Bool{Val: tok.Literal == "#t"})

		case lexer.SYMBOL_LIT:
			top.elems = append(top.elems, value.Symbol{Name: tok.Literal})

		default:
			return nil, ilerr.Parsef("unexpected token %v", tok)
		}
	}

	if len(stack) != 1 {
		unclosed := stack[len(stack)-1]
		return nil, ilerr.Parsef("unexpected end of input: %q opened at line %d was never closed", unclosed.opener, unclosed.line)
	}

	forms, tail, err := rewriteSeq(stack[0].elems)
	if err != nil {
		return nil, err
	}
	if !value.IsNull(tail) {
		return nil, ilerr.Parsef("misplaced '.' outside of a list")
	}
	return forms, nil
}

func bracketsMatch(opener, closer lexer.TokenType) bool {
	switch opener {
	case lexer.LEFT_PAREN:
		return closer == lexer.RIGHT_PAREN
	case lexer.LEFT_BRACKET:
		return closer == lexer.RIGHT_BRACKET
	default:
		return false
	}
}

// rewriteTree applies pass 2 (quote/dot sugar rewriting) to a single
// expression tree produced by pass 1.
func rewriteTree(v value.Value) (value.Value, error) {
	p, ok := v.(value.Pair)
	if !ok {
		return v, nil
	}
	elems, err := value.ToSlice(p)
	if err != nil {
		// Pass 1 only ever builds proper chains via value.List, so this
		// cannot happen in practice.
		return nil, ilerr.Parsef("internal parser error: %v", err)
	}
	rewritten, tail, err := rewriteSeq(elems)
	if err != nil {
		return nil, err
	}
	return buildChain(rewritten, tail), nil
}

// rewriteSeq rewrites one sequence of sibling elements: it resolves
// (Quote, E, rest...) into ((quote E), rest...) and a trailing
// (Dot, X) into an improper tail, recursing into every nested list along
// the way. The returned tail is value.Null unless the sequence ended in a
// dotted pair.
//
// A quote marker's operand is grouped with groupExpr rather than taken as
// the single following element, so a run of quote markers (as in ''x)
// nests correctly: each quote wraps the fully rewritten expression that
// follows it, however many more quote markers that expression starts with.
func rewriteSeq(elems []value.Value) ([]value.Value, value.Value, error) {
	var out []value.Value
	tail := value.Null

	for i := 0; i < len(elems); {
		switch elems[i].(type) {
		case dotMarker:
			if i+1 >= len(elems) {
				return nil, nil, ilerr.Parsef("dot not followed by an expression")
			}
			if len(out) == 0 {
				return nil, nil, ilerr.Parsef("misplaced '.': no preceding list element")
			}
			inner, next, err := groupExpr(elems, i+1)
			if err != nil {
				return nil, nil, err
			}
			if next != len(elems) {
				return nil, nil, ilerr.Parsef("misplaced '.': must be followed by exactly one closing expression")
			}
			tail = inner
			i = next

		default:
			inner, next, err := groupExpr(elems, i)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, inner)
			i = next
		}
	}
	return out, tail, nil
}

// groupExpr consumes exactly one expression starting at elems[i] and
// returns it alongside the index just past what it consumed. A quote
// marker recurses into the remainder so its operand is itself a fully
// grouped expression, which is what lets a quote marker's own operand be
// another quote marker.
func groupExpr(elems []value.Value, i int) (value.Value, int, error) {
	if i >= len(elems) {
		return nil, i, ilerr.Parsef("empty quotation")
	}
	switch elems[i].(type) {
	case quoteMarker:
		inner, next, err := groupExpr(elems, i+1)
		if err != nil {
			return nil, next, err
		}
		return value.List(value.Symbol{Name: "quote"}, inner), next, nil
	case dotMarker:
		return nil, i, ilerr.Parsef("misplaced '.' inside a quoted expression")
	default:
		v, err := rewriteTree(elems[i])
		if err != nil {
			return nil, i, err
		}
		return v, i + 1, nil
	}
}

func buildChain(elems []value.Value, tail value.Value) value.Value {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = value.Pair{Car: elems[i], Cdr: result}
	}
	return result
}
