package legacy

import (
	"strings"

	"github.com/gnolang/searchq/internal/span"
)

const (
	titleField   = "title:"
	keywordField = "keyword:"
)

// expandedFields are the fields whose multi-word values are split into one
// clause per word.
var expandedFields = [...]string{titleField, keywordField}

// expandFields rewrites "OP title: w1 w2" into "OP title:w1 J title:w2"
// where J is "and" after find and OP otherwise. The value runs up to the
// next combining word or the end of the query; quoted phrases stay whole.
func expandFields(q string) string {
	quoted := span.Quoted(q)

	var b strings.Builder
	last := 0
	for i := 0; i < len(q); i++ {
		if wordBefore(q, i) || span.Contains(quoted, i) {
			continue
		}
		op, field, from, ok := fieldAfterCombiner(q, i)
		if !ok {
			continue
		}
		end, ok := valueEnd(q, from, quoted)
		if !ok {
			continue
		}
		words := splitValue(q[from:end])
		if len(words) == 0 {
			continue
		}

		joiner := op
		if strings.EqualFold(op, "find") {
			joiner = "and"
		}
		b.WriteString(q[last:i])
		for k, w := range words {
			if k > 0 {
				b.WriteString(" " + joiner + " ")
			} else {
				b.WriteString(op + " ")
			}
			b.WriteString(field + w)
		}
		last = end
		i = end - 1
	}
	if last == 0 {
		return q
	}
	b.WriteString(q[last:])
	return b.String()
}

// valueEnd finds the end of a field value like untilCombiner, except that a
// closing quote also ends a word and nothing inside quotes ends the value.
func valueEnd(q string, from int, quoted []span.Span) (int, bool) {
	for end := from; end <= len(q); end++ {
		if span.Contains(quoted, end) {
			continue
		}
		if (boundary(q, end) || closesQuote(quoted, end)) && combinerAhead(q[end:]) {
			return end, true
		}
		if end < len(q) && q[end] == '\n' {
			break
		}
	}
	return 0, false
}

func closesQuote(quoted []span.Span, pos int) bool {
	for _, sp := range quoted {
		if sp.End == pos {
			return true
		}
	}
	return false
}

// splitValue splits v on whitespace outside quoted spans.
func splitValue(v string) []string {
	quoted := span.Quoted(v)

	var words []string
	start := -1
	for i := 0; i <= len(v); i++ {
		if i == len(v) || (isSpace(v[i]) && !span.Contains(quoted, i)) {
			if start >= 0 {
				words = append(words, v[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return words
}

// fieldAfterCombiner matches "OP<spaces>FIELD" at i, where OP is a combining
// word. It returns the operator as written, the field prefix in lowercase
// and the offset of the field value.
func fieldAfterCombiner(q string, i int) (op, field string, from int, ok bool) {
	for _, c := range combiners {
		if !hasPrefixFold(q[i:], c) {
			continue
		}
		j := i + len(c)
		if j >= len(q) || !isSpace(q[j]) {
			return "", "", 0, false
		}
		k := j
		for k < len(q) && isSpace(q[k]) {
			k++
		}
		for _, f := range expandedFields {
			if hasPrefixFold(q[k:], f) {
				return q[i:j], f, k + len(f), true
			}
		}
		return "", "", 0, false
	}
	return "", "", 0, false
}
