package span

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoted(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "no quotes",
			input: "ellis and muon",
			want:  nil,
		},
		{
			name:  "double quotes",
			input: `title:"and this" or x`,
			want:  []Span{{Start: 6, End: 16}},
		},
		{
			name:  "quote at start",
			input: `"a" b`,
			want:  []Span{{Start: 0, End: 3}},
		},
		{
			name:  "single inside double",
			input: `"it's" x`,
			want:  []Span{{Start: 0, End: 6}},
		},
		{
			name:  "two spans",
			input: `'a' and "b"`,
			want:  []Span{{Start: 0, End: 3}, {Start: 8, End: 11}},
		},
		{
			name:  "escaped opening quote",
			input: `\"a" b`,
			want:  nil,
		},
		{
			name:  "escaped closing quote",
			input: `"a\" b" c`,
			want:  []Span{{Start: 0, End: 7}},
		},
		{
			name:  "unterminated",
			input: `a "b c`,
			want:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Quoted(tt.input))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()
	spans := Quoted(`a "bc" d`)
	assert.False(t, Contains(spans, 0))
	assert.True(t, Contains(spans, 2))
	assert.True(t, Contains(spans, 5))
	assert.False(t, Contains(spans, 6))
}

func TestMapUnquoted(t *testing.T) {
	t.Parallel()
	got := MapUnquoted(`a "b" c 'd' e`, strings.ToUpper)
	assert.Equal(t, `A "b" C 'd' E`, got)

	got = MapUnquoted("plain", strings.ToUpper)
	assert.Equal(t, "PLAIN", got)
}
