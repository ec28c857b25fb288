package legacy

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gnolang/searchq/internal/span"
)

const (
	authorField      = "author:"
	exactAuthorField = "exactauthor:"
)

// AuthorName is an author reference recognized in a legacy query.
type AuthorName struct {
	Surname string
	Given   string // full given name or initials
	Middle  string // middle initial, optional
}

// authorMatcher recognizes one shape of author name at the start of s,
// which begins with "author:". It returns the name and the number of bytes
// consumed.
type authorMatcher func(s string) (AuthorName, int, bool)

const word = `([\pL\pN_]+)`

var (
	surnameGivenRe       = regexp.MustCompile(`^(?i:author:)\s*` + word + `,\s*` + word)
	givenSurnameRe       = regexp.MustCompile(`^(?i:author:)\s*` + word + `\s+` + word)
	surnameGivenMiddleRe = regexp.MustCompile(`^(?i:author:)\s*` + word + `,\s*` + word + `\.?\s+` + word + `\.?`)
	initialsSurnameRe    = regexp.MustCompile(`^(?i:author:)\s*` + word + `\.?\s+` + word + `\.?\s+` + word + `\.?`)
	surnameRe            = regexp.MustCompile(`^(?i:author:)\s*` + word)
)

// authorMatchers are tried in order at every "author:" occurrence.
var authorMatchers = []authorMatcher{
	matchSurnameGiven,
	matchGivenSurname,
	matchSurnameInitials,
	matchSurnameGivenMiddle,
	matchInitialsSurname,
	matchSurname,
}

// "author: ellis, john" followed by a combiner or the end.
func matchSurnameGiven(s string) (AuthorName, int, bool) {
	m := surnameGivenRe.FindStringSubmatchIndex(s)
	if m == nil || utf8.RuneCountInString(s[m[4]:m[5]]) < 3 || !combinerAhead(s[m[1]:]) {
		return AuthorName{}, 0, false
	}
	return AuthorName{Surname: s[m[2]:m[3]], Given: s[m[4]:m[5]]}, m[1], true
}

// "author: john ellis" followed by a combiner or the end.
func matchGivenSurname(s string) (AuthorName, int, bool) {
	m := givenSurnameRe.FindStringSubmatchIndex(s)
	if m == nil || isCombiner(s[m[4]:m[5]]) || !combinerAhead(s[m[1]:]) {
		return AuthorName{}, 0, false
	}
	return AuthorName{Surname: s[m[4]:m[5]], Given: s[m[2]:m[3]]}, m[1], true
}

// "author: ellis, j" or "author: ellis, jr." followed by a combiner or the end.
func matchSurnameInitials(s string) (AuthorName, int, bool) {
	m := surnameGivenRe.FindStringSubmatchIndex(s)
	if m == nil || utf8.RuneCountInString(s[m[4]:m[5]]) > 2 {
		return AuthorName{}, 0, false
	}
	end := m[1]
	if end < len(s) && s[end] == '.' {
		end++
	}
	if !combinerAhead(s[end:]) {
		return AuthorName{}, 0, false
	}
	return AuthorName{Surname: s[m[2]:m[3]], Given: s[m[4]:m[5]]}, end, true
}

// "author: ellis, john r."
func matchSurnameGivenMiddle(s string) (AuthorName, int, bool) {
	m := surnameGivenMiddleRe.FindStringSubmatchIndex(s)
	if m == nil || isCombiner(s[m[6]:m[7]]) {
		return AuthorName{}, 0, false
	}
	return AuthorName{
		Surname: s[m[2]:m[3]],
		Given:   s[m[4]:m[5]],
		Middle:  s[m[6]:m[7]],
	}, m[1], true
}

// "author: j. r. ellis"
func matchInitialsSurname(s string) (AuthorName, int, bool) {
	m := initialsSurnameRe.FindStringSubmatchIndex(s)
	if m == nil || isCombiner(s[m[4]:m[5]]) || isCombiner(s[m[6]:m[7]]) {
		return AuthorName{}, 0, false
	}
	return AuthorName{
		Surname: s[m[6]:m[7]],
		Given:   s[m[2]:m[3]],
		Middle:  s[m[4]:m[5]],
	}, m[1], true
}

// "author: ellis" followed by a combiner or the end.
func matchSurname(s string) (AuthorName, int, bool) {
	m := surnameRe.FindStringSubmatchIndex(s)
	if m == nil || !combinerAhead(s[m[1]:]) {
		return AuthorName{}, 0, false
	}
	return AuthorName{Surname: s[m[2]:m[3]]}, m[1], true
}

// Format renders the name as a disjunction of author clauses. sep follows
// abbreviated initials. A name without surname renders as "".
func (a AuthorName) Format(sep string) string {
	if a.Surname == "" {
		return ""
	}

	phrase := func(name string) string {
		return authorField + `"` + a.Surname + ", " + name + `"`
	}
	given := []rune(a.Given)

	switch {
	case a.Middle != "":
		out := []string{phrase(a.Given + "* " + a.Middle + "*")}
		if len(given) > 1 {
			out = append(out,
				phrase(string(given[:1])+sep+a.Middle+sep),
				phrase(string(given[:2])+sep+a.Middle+sep),
			)
		}
		return strings.Join(out, " or ")
	case len(given) == 0:
		return authorField + a.Surname + " or " + phrase("*")
	case len(given) == 1:
		return phrase(a.Given + "*")
	default:
		one, two := string(given[:1]), string(given[:2])
		return strings.Join([]string{
			phrase(a.Given),
			phrase(one + sep + "*"),
			phrase(one),
			phrase(two + sep + "*"),
			phrase(two),
			phrase(a.Given + " *"),
		}, " or ")
	}
}

func (n *Normalizer) initialSeparator() string {
	if n.extended {
		return "."
	}
	return " "
}

// expandAuthors rewrites every recognized "author:" reference outside
// quoted spans into its expanded form.
func (n *Normalizer) expandAuthors(q string) string {
	quoted := span.Quoted(q)
	sep := n.initialSeparator()

	var b strings.Builder
	last := 0
	for i := 0; i < len(q); i++ {
		if !fieldAt(q, i, authorField) || span.Contains(quoted, i) {
			continue
		}
		for _, match := range authorMatchers {
			name, size, ok := match(q[i:])
			if !ok {
				continue
			}
			b.WriteString(q[last:i])
			b.WriteString(name.Format(sep))
			last = i + size
			i = last - 1
			break
		}
	}
	if last == 0 {
		return q
	}
	b.WriteString(q[last:])
	return b.String()
}

// rewriteExactAuthors turns "exactauthor:NAME" into a quoted author phrase.
// NAME runs up to the next combining word or the end of the query.
func rewriteExactAuthors(q string) string {
	quoted := span.Quoted(q)

	var b strings.Builder
	last := 0
	for i := 0; i < len(q); i++ {
		if !fieldAt(q, i, exactAuthorField) || span.Contains(quoted, i) {
			continue
		}
		from := i + len(exactAuthorField)
		end, ok := untilCombiner(q, from)
		if !ok {
			continue
		}
		b.WriteString(q[last:i])
		b.WriteString(authorField + `"` + strings.TrimSpace(q[from:end]) + `"`)
		last = end
		i = end - 1
	}
	if last == 0 {
		return q
	}
	b.WriteString(q[last:])
	return b.String()
}
