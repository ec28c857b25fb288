package legacy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// combiners are the words that may introduce a keyword in a legacy query.
var combiners = [...]string{"find", "and", "or", "not"}

func isCombiner(word string) bool {
	for _, c := range combiners {
		if strings.EqualFold(word, c) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isSpace(c byte) bool {
	return c < utf8.RuneSelf && unicode.IsSpace(rune(c))
}

// wordBefore reports whether the rune ending right before i is a word rune.
func wordBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

// wordAt reports whether the rune starting at i is a word rune.
func wordAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}

func boundary(s string, i int) bool {
	return wordBefore(s, i) != wordAt(s, i)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// combinerAhead reports whether rest is empty or starts with a combining
// word surrounded by single spaces (" and ", " or ", " not ").
func combinerAhead(rest string) bool {
	if rest == "" {
		return true
	}
	for _, w := range [...]string{" and ", " or ", " not "} {
		if hasPrefixFold(rest, w) {
			return true
		}
	}
	return false
}

// untilCombiner returns the shortest end >= from such that end is a word
// boundary followed by a combining word or the end of s. Newlines are not
// crossed.
func untilCombiner(s string, from int) (int, bool) {
	for end := from; end <= len(s); end++ {
		if boundary(s, end) && combinerAhead(s[end:]) {
			return end, true
		}
		if end < len(s) && s[end] == '\n' {
			break
		}
	}
	return 0, false
}

// fieldAt reports whether s[i:] starts with field (case-insensitive) and
// no word rune precedes it.
func fieldAt(s string, i int, field string) bool {
	return hasPrefixFold(s[i:], field) && !wordBefore(s, i)
}
