package query

import (
	"errors"
	"fmt"
	"strings"
)

// Operator is a canonical combining operator symbol.
type Operator string

const (
	And Operator = "+"
	Or  Operator = "|"
	Not Operator = "-"

	// Default is implied between two clauses when no operator is written.
	Default = And
)

// IsOperator reports whether s is one of the canonical operator symbols.
func IsOperator(s string) bool {
	switch Operator(s) {
	case And, Or, Not:
		return true
	}
	return false
}

func (o Operator) String() string { return string(o) }

// Word returns the legacy spelling of the operator.
func (o Operator) Word() string {
	switch o {
	case Or:
		return "or"
	case Not:
		return "not"
	default:
		return "and"
	}
}

// Result is the parser output: [op1, clause1, op2, clause2, ..., opN, clauseN].
type Result []string

// Pair is one operator together with the clause it introduces.
type Pair struct {
	Operator Operator `json:"operator"`
	Clause   string   `json:"clause"`
}

// Pairs groups the result into operator/clause pairs.
func (r Result) Pairs() []Pair {
	pairs := make([]Pair, 0, len(r)/2)
	for i := 0; i+1 < len(r); i += 2 {
		pairs = append(pairs, Pair{Operator: Operator(r[i]), Clause: r[i+1]})
	}
	return pairs
}

// Operators returns the operators of the result in order.
func (r Result) Operators() []Operator {
	ops := make([]Operator, 0, len(r)/2)
	for i := 0; i < len(r); i += 2 {
		ops = append(ops, Operator(r[i]))
	}
	return ops
}

// Clauses returns the clauses of the result in order.
func (r Result) Clauses() []string {
	clauses := make([]string, 0, len(r)/2)
	for i := 1; i < len(r); i += 2 {
		clauses = append(clauses, r[i])
	}
	return clauses
}

func (r Result) String() string {
	parts := make([]string, len(r))
	for i, tok := range r {
		parts[i] = fmt.Sprintf("%q", tok)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

var (
	// ErrMismatchedParentheses reports an unbalanced "(" or ")".
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	// ErrNestedParentheses reports a "(" found inside an open group.
	ErrNestedParentheses = errors.New("nested parentheses are not supported")
)

// ParseError represents a syntax error with position information.
type ParseError struct {
	Kind     error  `json:"-"`
	Message  string `json:"message"`
	Position int    `json:"position"`
}

func newParseError(kind error, pos int) *ParseError {
	return &ParseError{
		Kind:     kind,
		Message:  fmt.Sprintf("%s at position %d", kind, pos),
		Position: pos,
	}
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
