// Package legacy rewrites queries written in the keyword-rich "find" dialect
// into canonical search syntax.
//
// A legacy query starts with the word "find". It is rewritten in fixed
// stages: date shorthand, keyword aliases, author names, exact authors,
// truncation symbols, multi-word title and keyword values, and finally the
// removal of the leading "find". Any other query is returned unchanged.
package legacy
