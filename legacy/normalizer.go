package legacy

import (
	"strings"

	"golang.org/x/text/cases"
)

// marker is the leading word that identifies a legacy query.
const marker = "find"

// Options configures a Normalizer.
type Options struct {
	// ExtendedAuthorFormat separates abbreviated initials with "." instead
	// of a space when expanding author names.
	ExtendedAuthorFormat bool

	// Keywords adds to or overrides the built-in keyword table. Keys are
	// matched after Unicode case folding; an empty value removes the
	// keyword from the query.
	Keywords map[string]string
}

// Normalizer rewrites legacy queries into canonical syntax. It is safe for
// concurrent use.
type Normalizer struct {
	extended bool
	keywords map[string]string
}

// New creates a Normalizer from opts.
func New(opts Options) *Normalizer {
	fold := cases.Fold()
	keywords := Keywords()
	for k, v := range opts.Keywords {
		keywords[fold.String(k)] = v
	}
	return &Normalizer{
		extended: opts.ExtendedAuthorFormat,
		keywords: keywords,
	}
}

// stage is one rewrite step of the normalizer.
type stage struct {
	Name  string
	apply func(n *Normalizer, q string) string
}

var stages = []stage{
	{Name: "dates", apply: func(_ *Normalizer, q string) string { return rewriteDates(q) }},
	{Name: "keywords", apply: (*Normalizer).replaceKeywords},
	{Name: "authors", apply: (*Normalizer).expandAuthors},
	{Name: "exact-authors", apply: func(_ *Normalizer, q string) string { return rewriteExactAuthors(q) }},
	{Name: "truncation", apply: func(_ *Normalizer, q string) string { return strings.ReplaceAll(q, "#", "*") }},
	{Name: "fields", apply: func(_ *Normalizer, q string) string { return expandFields(q) }},
	{Name: "marker", apply: func(_ *Normalizer, q string) string { return stripMarker(q) }},
}

// Step records the query as it left one stage.
type Step struct {
	Stage string `json:"stage"`
	Query string `json:"query"`
}

// IsLegacy reports whether q is written in the legacy dialect, that is,
// starts with "find" followed by whitespace.
func IsLegacy(q string) bool {
	return len(q) > len(marker) && hasPrefixFold(q, marker) && isSpace(q[len(marker)])
}

// Normalize returns q rewritten into canonical syntax. Queries that are
// not legacy are returned unchanged.
func (n *Normalizer) Normalize(q string) string {
	if !IsLegacy(q) {
		return q
	}
	for _, s := range stages {
		q = s.apply(n, q)
	}
	return q
}

// Trace is like Normalize but also returns the intermediate query after
// every stage. The trace is empty for queries that are not legacy.
func (n *Normalizer) Trace(q string) (string, []Step) {
	if !IsLegacy(q) {
		return q, nil
	}
	steps := make([]Step, 0, len(stages))
	for _, s := range stages {
		q = s.apply(n, q)
		steps = append(steps, Step{Stage: s.Name, Query: q})
	}
	return q, steps
}

var std = New(Options{})

// Normalize rewrites q using the built-in keyword table and the space
// separated author format.
func Normalize(q string) string {
	return std.Normalize(q)
}

func stripMarker(q string) string {
	if !hasPrefixFold(q, marker) {
		return q
	}
	return strings.TrimLeft(q[len(marker):], " \t\n\r\f\v")
}
