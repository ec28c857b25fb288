package legacy

import (
	"regexp"
	"strconv"
)

// Year bounds used for open-ended date ranges.
const (
	MinYear = 0
	MaxYear = 9999
)

// Direction of a date bound.
type Direction int

const (
	Before Direction = iota
	After
)

func (d Direction) String() string {
	if d == After {
		return "after"
	}
	return "before"
}

// DateBound is a one-sided year limit such as "date before 1990".
type DateBound struct {
	Direction Direction
	Year      int
}

// Clause renders the bound as an inclusive year range.
func (b DateBound) Clause() string {
	lo, hi := MinYear, b.Year
	if b.Direction == After {
		lo, hi = b.Year, MaxYear
	}
	return "year:" + strconv.Itoa(lo) + "->" + strconv.Itoa(hi)
}

var (
	dateBefore = regexp.MustCompile(`(?i)\b(?:date|d)\b\s*(?:before|<)\s*(\d{4})\b`)
	dateAfter  = regexp.MustCompile(`(?i)\b(?:date|d)\b\s*(?:after|>)\s*(\d{4})\b`)
)

// rewriteDates replaces every date shorthand with its year range.
func rewriteDates(q string) string {
	q = replaceBound(q, dateBefore, Before)
	return replaceBound(q, dateAfter, After)
}

func replaceBound(q string, re *regexp.Regexp, dir Direction) string {
	return re.ReplaceAllStringFunc(q, func(m string) string {
		sub := re.FindStringSubmatch(m)
		year, err := strconv.Atoi(sub[1])
		if err != nil {
			return m
		}
		return DateBound{Direction: dir, Year: year}.Clause()
	})
}
