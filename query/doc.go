/*
Package query segments canonical search expressions that may contain one
level of parenthesized sub-expressions.

# Overview

The canonical syntax combines clauses with three operator symbols:

  - "+" AND (the default operator, implied when nothing is written)
  - "|" OR
  - "-" NOT

Parentheses group a run of text into a single opaque clause. The parser is
deliberately flat: it does not build an expression tree, knows nothing about
operator precedence and rejects nested parentheses.

# Result

Parse returns a sequence that alternates operators and clauses:

	Parse("ellis AND (muon OR kaon)")
	// => ["+", "ellis", "+", "muon | kaon"]

The sequence always has even length and starts with an operator. Operators
inside a group are not extracted; the group text becomes one clause. Text
outside groups is only split where a group starts or ends.

When the input holds no parenthesis at all, the whole query is returned as
a single clause behind the default operator, untouched.

# Operator words

Before scanning, the words "and", "or" and "not" (any case, whole words)
found outside quoted spans are rewritten to "+", "|" and "-". CleanOperators
exposes that step on its own.

# Scanning

The scanner is a table driven state machine. Every byte is classified
(quote, left paren, right paren, operator, space, other) and the pair
(mode, class) selects an action from actionTable. The three modes are
outside a group, inside a group and inside a quoted span. A backslash
before a quote or parenthesis removes its syntactic meaning; the backslash
itself is kept in the clause text.

Scan state lives in a value created per call, so Parse is safe for
concurrent use.

# Errors

Malformed input yields a *ParseError whose Kind is one of:

  - ErrMismatchedParentheses: a ")" without an open group, or a group that
    is still open at the end of input
  - ErrNestedParentheses: a "(" inside an open group
*/
package query
