package query

import "unicode"

type (
	Modes   int8 // scanner mode
	Classes int8 // character classes of the canonical syntax
	actions int8 // what the scanner does for a (mode, class) pair
)

// Modes are mutually exclusive. A quoted span remembers the mode it was
// opened from so that closing it resumes that mode.
const (
	MO Modes = iota // outside any group
	MP              // inside a parenthesized group
	MQ              // inside a quoted span
)

// Character class definitions
const (
	C_QUOTE  Classes = iota // unescaped ' or " (in MQ: only the opening quote)
	C_LPAREN                // unescaped (
	C_RPAREN                // unescaped )
	C_OPER                  // operator symbols: + | -
	C_SPACE                 // whitespace
	C_OTHER                 // anything else, escaped delimiters included
)

const (
	aSkip       actions = iota // nothing to record
	aText                      // clause text outside a group
	aOperator                  // operator outside a group
	aOpenQuote                 // enter MQ
	aCloseQuote                // leave MQ
	aOpenGroup                 // flush clause before the group, enter MP
	aCloseGroup                // flush group clause, back to MO
	aNested                    // error: ( inside a group
	aMismatched                // error: ) outside a group
)

// actionTable drives the scanner.
//  1. Operators and text inside a group are inert: the group is one clause.
//  2. Inside quotes only the matching closing quote is significant.
var actionTable = [3][6]actions{
	//        QUOTE        LPAREN      RPAREN       OPER       SPACE  OTHER
	/* MO */ {aOpenQuote, aOpenGroup, aMismatched, aOperator, aSkip, aText},
	/* MP */ {aOpenQuote, aNested, aCloseGroup, aSkip, aSkip, aSkip},
	/* MQ */ {aCloseQuote, aSkip, aSkip, aSkip, aSkip, aSkip},
}

func (m Modes) String() string {
	switch m {
	case MO:
		return "OUTSIDE"
	case MP:
		return "PAREN"
	case MQ:
		return "QUOTE"
	default:
		return "UNKNOWN"
	}
}

func (c Classes) String() string {
	switch c {
	case C_QUOTE:
		return "QUOTE"
	case C_LPAREN:
		return "LPAREN"
	case C_RPAREN:
		return "RPAREN"
	case C_OPER:
		return "OPER"
	case C_SPACE:
		return "SPACE"
	case C_OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// getCharacterClass classifies c given the byte before it. In MQ every byte
// except the unescaped closing quote is plain text.
func getCharacterClass(c, prev byte, mode Modes, quote byte) Classes {
	escaped := prev == '\\'

	if mode == MQ {
		if c == quote && !escaped {
			return C_QUOTE
		}
		return C_OTHER
	}

	switch c {
	case '"', '\'':
		if !escaped {
			return C_QUOTE
		}
		return C_OTHER
	case '(':
		if !escaped {
			return C_LPAREN
		}
		return C_OTHER
	case ')':
		if !escaped {
			return C_RPAREN
		}
		return C_OTHER
	case '+', '|', '-':
		return C_OPER
	}

	if isWhitespace(c) {
		return C_SPACE
	}
	return C_OTHER
}

// isWhitespace checks if the given byte is a space, tab, newline, etc.
// Bytes of multi-byte UTF-8 sequences are never whitespace here.
func isWhitespace(c byte) bool {
	return c < 0x80 && unicode.IsSpace(rune(c))
}
