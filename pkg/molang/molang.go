// Package molang builds the boolean conditions that gate block permutations.
//
// An Expression is a query string plus child expressions combined with And
// or Or. Combination never modifies the receiver: it returns a copy of the
// receiver with the other operand appended to its children, so chaining
// grows the child list of the leftmost expression.
//
//	cond := molang.New("q.block_state('woah:lit')").
//		And(molang.New("q.block_state('woah:level') > 2"))
//	cond.Serialize() // "(q.block_state('woah:lit')) && ((q.block_state('woah:level') > 2))"
package molang

import "strings"

// Concat is the combinator most recently applied to an expression.
type Concat int

const (
	ConcatNone Concat = iota
	ConcatAnd
	ConcatOr
)

// Operator returns the rendered operator for the combinator.
func (c Concat) Operator() string {
	switch c {
	case ConcatAnd:
		return "&&"
	case ConcatOr:
		return "||"
	default:
		return ""
	}
}

// Expression is an immutable condition tree.
type Expression struct {
	query  string
	next   []Expression
	concat Concat
}

// New creates a leaf expression.
func New(query string) Expression {
	return Expression{query: query}
}

// Query returns the expression's own query text.
func (e Expression) Query() string { return e.query }

// Concat returns the combinator applied last.
func (e Expression) Concat() Concat { return e.concat }

// Children returns a copy of the combined operands.
func (e Expression) Children() []Expression {
	out := make([]Expression, len(e.next))
	copy(out, e.next)
	return out
}

// And combines e with other using &&.
func (e Expression) And(other Expression) Expression {
	return e.combine(ConcatAnd, other)
}

// Or combines e with other using ||.
func (e Expression) Or(other Expression) Expression {
	return e.combine(ConcatOr, other)
}

func (e Expression) combine(concat Concat, other Expression) Expression {
	next := make([]Expression, len(e.next), len(e.next)+1)
	copy(next, e.next)
	return Expression{
		query:  e.query,
		next:   append(next, other),
		concat: concat,
	}
}

// Serialize renders the condition. A leaf renders as its raw query; a
// combined expression renders as "(query) op (" followed by each child
// wrapped in parentheses and joined by a space, then ")".
func (e Expression) Serialize() string {
	if e.concat == ConcatNone || len(e.next) == 0 {
		return e.query
	}

	children := make([]string, len(e.next))
	for i, child := range e.next {
		children[i] = "(" + child.Serialize() + ")"
	}

	return "(" + e.query + ") " + e.concat.Operator() + " (" + strings.Join(children, " ") + ")"
}

func (e Expression) String() string {
	return e.Serialize()
}
