package query

import (
	"regexp"
	"strings"

	"github.com/gnolang/searchq/internal/span"
)

// operator words and their canonical symbols, applied in this order
var operatorWords = []struct {
	re  *regexp.Regexp
	sym string
}{
	{regexp.MustCompile(`(?i)\bnot\b`), string(Not)},
	{regexp.MustCompile(`(?i)\band\b`), string(And)},
	{regexp.MustCompile(`(?i)\bor\b`), string(Or)},
}

// Parse segments q into [op1, clause1, ..., opN, clauseN].
//
// Input without parentheses is returned as a single clause behind the
// default operator. Otherwise operator words are rewritten to symbols and
// the query is scanned; each parenthesized group becomes one clause.
func Parse(q string) (Result, error) {
	if !hasParentheses(q) {
		return Result{string(Default), q}, nil
	}

	return newBuffer(CleanOperators(q)).run()
}

// MustParse is like Parse but panics on malformed input.
func MustParse(q string) Result {
	r, err := Parse(q)
	if err != nil {
		panic(err)
	}
	return r
}

// CleanOperators replaces the words "not", "and" and "or" found outside
// quoted spans with "-", "+" and "|".
func CleanOperators(q string) string {
	return span.MapUnquoted(q, func(s string) string {
		for _, w := range operatorWords {
			s = w.re.ReplaceAllLiteralString(s, w.sym)
		}
		return s
	})
}

func hasParentheses(q string) bool {
	return strings.ContainsAny(q, "()")
}
