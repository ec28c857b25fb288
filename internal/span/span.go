package span

// Span is a half-open byte range [Start, End) of a query string.
type Span struct {
	Start int
	End   int
}

// escape is the marker that disables the syntactic meaning of the next byte.
const escape = '\\'

// IsQuote reports whether c opens or closes a quoted span.
func IsQuote(c byte) bool {
	return c == '"' || c == '\''
}

// Escaped reports whether the byte at i is preceded by the escape marker.
func Escaped(s string, i int) bool {
	return i > 0 && s[i-1] == escape
}

// Quoted returns the quoted spans of s, quotes included, in order.
//
// A quote opens a span unless it is escaped; the span ends at the next
// unescaped occurrence of the same quote character. An unterminated quote
// does not produce a span, so the remaining text is treated as unquoted.
func Quoted(s string) []Span {
	var spans []Span
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !IsQuote(c) || Escaped(s, i) {
			continue
		}
		end := closing(s, i+1, c)
		if end < 0 {
			break
		}
		spans = append(spans, Span{Start: i, End: end + 1})
		i = end
	}
	return spans
}

func closing(s string, from int, quote byte) int {
	for j := from; j < len(s); j++ {
		if s[j] == quote && !Escaped(s, j) {
			return j
		}
	}
	return -1
}

// Contains reports whether pos falls inside one of the spans.
func Contains(spans []Span, pos int) bool {
	for _, sp := range spans {
		if pos >= sp.Start && pos < sp.End {
			return true
		}
	}
	return false
}

// MapUnquoted applies fn to every run of s that lies outside a quoted span
// and returns the reassembled string. Quoted spans are copied verbatim.
func MapUnquoted(s string, fn func(string) string) string {
	spans := Quoted(s)
	if len(spans) == 0 {
		return fn(s)
	}

	var (
		out  = make([]byte, 0, len(s))
		last int
	)
	for _, sp := range spans {
		out = append(out, fn(s[last:sp.Start])...)
		out = append(out, s[sp.Start:sp.End]...)
		last = sp.End
	}
	out = append(out, fn(s[last:])...)
	return string(out)
}
