package legacy

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/gnolang/searchq/internal/span"
)

// replaceKeywords substitutes the keyword that follows a combining word
// with its canonical field prefix. Quoted spans are left alone.
func (n *Normalizer) replaceKeywords(q string) string {
	fold := cases.Fold()
	return span.MapUnquoted(q, func(s string) string {
		return n.replaceKeywordsIn(s, fold)
	})
}

func (n *Normalizer) replaceKeywordsIn(s string, fold cases.Caser) string {
	var (
		b         strings.Builder
		afterComb bool
	)
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); {
		if isSpace(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}

		j := i
		for j < len(s) && !isSpace(s[j]) {
			j++
		}
		word := s[i:j]

		// a keyword must be followed by the text it qualifies
		if afterComb && j < len(s) {
			if prefix, ok := n.keywords[fold.String(word)]; ok {
				afterComb = false
				// the prefix is glued to the value that follows it
				for j < len(s) && isSpace(s[j]) {
					j++
				}
				b.WriteString(prefix)
				i = j
				continue
			}
		}

		afterComb = isCombiner(word)
		b.WriteString(word)
		i = j
	}
	return b.String()
}
