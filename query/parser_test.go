package query

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{
			name:  "no parentheses is a single clause",
			input: "ellis and muon",
			want:  Result{"+", "ellis and muon"},
		},
		{
			name:  "empty query",
			input: "",
			want:  Result{"+", ""},
		},
		{
			name:  "group after operator word",
			input: "ellis AND (muon OR kaon)",
			want:  Result{"+", "ellis", "+", "muon | kaon"},
		},
		{
			name:  "group first",
			input: "(muon) ellis",
			want:  Result{"+", "muon", "+", "ellis"},
		},
		{
			name:  "operator after group",
			input: "(a) | b",
			want:  Result{"+", "a", "|", "b"},
		},
		{
			name:  "operators around group",
			input: "a | (b) - c",
			want:  Result{"+", "a", "|", "b", "-", "c"},
		},
		{
			name:  "implied operator before group",
			input: "a (b)",
			want:  Result{"+", "a", "+", "b"},
		},
		{
			name:  "operator word before group",
			input: "a OR (b)",
			want:  Result{"+", "a", "|", "b"},
		},
		{
			name:  "not before group",
			input: "ellis not (muon)",
			want:  Result{"+", "ellis", "-", "muon"},
		},
		{
			name:  "adjacent groups",
			input: "(a) (b)",
			want:  Result{"+", "a", "+", "b"},
		},
		{
			name:  "adjacent groups with operator",
			input: "(a) or (b)",
			want:  Result{"+", "a", "|", "b"},
		},
		{
			name:  "leading operator",
			input: "-a (b)",
			want:  Result{"-", "a", "+", "b"},
		},
		{
			name:  "trailing clause after group",
			input: "a (b) not c",
			want:  Result{"+", "a", "+", "b", "-", "c"},
		},
		{
			name:  "operators away from groups stay in clause",
			input: "a + b (c)",
			want:  Result{"+", "a + b", "+", "c"},
		},
		{
			name:  "trailing operator is dropped",
			input: "(a) b |",
			want:  Result{"+", "a", "+", "b"},
		},
		{
			name:  "trailing operator after group",
			input: "(a) |",
			want:  Result{"+", "a"},
		},
		{
			name:  "empty group",
			input: "a () b",
			want:  Result{"+", "a", "+", "b"},
		},
		{
			name:  "parenthesis inside quotes",
			input: `title:"x (y" and (z)`,
			want:  Result{"+", `title:"x (y"`, "+", "z"},
		},
		{
			name:  "operator words inside quotes are kept",
			input: `"a and b" (c)`,
			want:  Result{"+", `"a and b"`, "+", "c"},
		},
		{
			name:  "quote inside group",
			input: `(title:"x)" or y) z`,
			want:  Result{"+", `title:"x)" | y`, "+", "z"},
		},
		{
			name:  "escaped parentheses",
			input: `a \(b\) (c)`,
			want:  Result{"+", `a \(b\)`, "+", "c"},
		},
		{
			name:  "only escaped parentheses",
			input: `a \(b\)`,
			want:  Result{"+", `a \(b\)`},
		},
		{
			name:  "unicode text",
			input: "müller (ß)",
			want:  Result{"+", "müller", "+", "ß"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantPos int
	}{
		{
			name:    "unclosed group",
			input:   "a (b",
			wantErr: ErrMismatchedParentheses,
			wantPos: 2,
		},
		{
			name:    "close without open",
			input:   "a) b",
			wantErr: ErrMismatchedParentheses,
			wantPos: 1,
		},
		{
			name:    "nested group",
			input:   "a (b (c) d",
			wantErr: ErrNestedParentheses,
			wantPos: 5,
		},
		{
			name:    "unterminated quote inside group",
			input:   `(a "b)`,
			wantErr: ErrMismatchedParentheses,
			wantPos: 0,
		},
		{
			name:    "second close",
			input:   "(a))",
			wantErr: ErrMismatchedParentheses,
			wantPos: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantPos, perr.Position)
			assert.NotEmpty(t, perr.Error())
		})
	}
}

func TestParse_NoParenthesesIsIdentity(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"ellis",
		"a and b or not c",
		`find title:"AND this"`,
		"  spaced  ",
		"+a -b |c",
	}
	for _, in := range inputs {
		got, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, Result{string(Default), in}, got)
	}
}

func TestParse_ResultShape(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"ellis AND (muon OR kaon)",
		"(a) | (b) - (c)",
		"x (y) z (w)",
		`"q (" (r)`,
		"| - (b)",
		"(a) | - (b)",
		"a | b (c) d",
	}
	for _, in := range inputs {
		got, err := Parse(in)
		require.NoError(t, err, in)
		require.NotEmpty(t, got, in)
		assert.Equal(t, 0, len(got)%2, "odd result for %q: %v", in, got)
		for i, tok := range got {
			if i%2 == 0 {
				assert.True(t, IsOperator(tok), "expected operator at %d in %v", i, got)
			} else {
				assert.NotEmpty(t, tok)
			}
		}
	}
}

func TestParse_Concurrent(t *testing.T) {
	t.Parallel()
	want := Result{"+", "ellis", "+", "muon | kaon"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Parse("ellis AND (muon OR kaon)")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestCleanOperators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"a and b", "a + b"},
		{"a OR b Not c", "a | b - c"},
		{"android orbit notation", "android orbit notation"},
		{`"a and b" and c`, `"a and b" + c`},
		{`title:'not or' or x`, `title:'not or' | x`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanOperators(tt.input), tt.input)
	}
}

func TestResultAccessors(t *testing.T) {
	t.Parallel()
	r := MustParse("a | (b) - c")

	assert.Equal(t, []Operator{And, Or, Not}, r.Operators())
	assert.Equal(t, []string{"a", "b", "c"}, r.Clauses())
	assert.Equal(t, []Pair{
		{Operator: And, Clause: "a"},
		{Operator: Or, Clause: "b"},
		{Operator: Not, Clause: "c"},
	}, r.Pairs())
	assert.Equal(t, `["+", "a", "|", "b", "-", "c"]`, r.String())
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParse("(a") })
}

func BenchmarkParse(b *testing.B) {
	inputs := []string{
		"ellis AND (muon OR kaon)",
		`title:"quark (gluon)" or (author:ellis and author:witten) not t higgs`,
	}
	for i := 0; i < b.N; i++ {
		for _, in := range inputs {
			_, _ = Parse(in)
		}
	}
}
