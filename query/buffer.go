package query

import "strings"

// pending is an operator seen while scanning. pos is -1 when the operator
// was implied rather than written.
type pending struct {
	op  Operator
	pos int
}

func (p pending) set() bool { return p.op != "" }

// buffer holds the scan state of a single Parse call.
type buffer struct {
	data  string // cleaned query
	index int    // current position in data

	mode  Modes
	outer Modes // mode to resume when the current quoted span closes
	quote byte  // quote character that opened the current span

	start     int // start of the clause being accumulated
	groupPos  int // position of the "(" of the open group
	groupOp   Operator
	preceding pending
	following pending

	result Result
}

// newBuffer creates a buffer in MO for the given input.
func newBuffer(input string) *buffer {
	return &buffer{
		data:     input,
		mode:     MO,
		outer:    MO,
		groupPos: -1,
		result:   make(Result, 0, 8),
	}
}

// run scans the whole input and flushes the last clause.
func (b *buffer) run() (Result, error) {
	var prev byte
	for b.index = 0; b.index < len(b.data); b.index++ {
		c := b.data[b.index]
		if err := b.step(c, prev, b.index); err != nil {
			return nil, err
		}
		prev = c
	}
	if err := b.finish(); err != nil {
		return nil, err
	}
	return b.result, nil
}

// step advances the state machine by one byte.
func (b *buffer) step(c, prev byte, pos int) error {
	class := getCharacterClass(c, prev, b.mode, b.quote)

	switch actionTable[b.mode][class] {
	case aText:
		b.assignDefaultOperators()
	case aOperator:
		b.handleOperator(Operator(c), pos)
	case aOpenQuote:
		if b.mode == MO {
			b.assignDefaultOperators()
		}
		b.outer, b.mode, b.quote = b.mode, MQ, c
	case aCloseQuote:
		b.mode, b.quote = b.outer, 0
	case aOpenGroup:
		b.openGroup(pos)
	case aCloseGroup:
		b.closeGroup(pos)
	case aNested:
		return newParseError(ErrNestedParentheses, pos)
	case aMismatched:
		return newParseError(ErrMismatchedParentheses, pos)
	}
	return nil
}

// handleOperator records an operator written outside a group. The first one
// after a clause boundary introduces the next clause; later ones become the
// following operator, each overwriting the previous.
func (b *buffer) handleOperator(op Operator, pos int) {
	if !b.preceding.set() {
		b.preceding = pending{op: op, pos: pos}
		b.start = pos + 1
		b.following = pending{pos: -1}
		return
	}
	b.following = pending{op: op, pos: pos}
}

// assignDefaultOperators is called on clause text. Text with no operator in
// front of it gets the default one; text after the clause started resets the
// following operator to the default until another operator shows up.
func (b *buffer) assignDefaultOperators() {
	if !b.preceding.set() {
		b.preceding = pending{op: Default, pos: -1}
		return
	}
	b.following = pending{op: Default, pos: -1}
}

// openGroup emits the clause in front of the group and decides which
// operator will introduce the group.
func (b *buffer) openGroup(pos int) {
	clause := b.clause(pos)
	if clause != "" {
		b.emit(b.operatorOr(b.preceding, Default), clause)
		b.groupOp = b.operatorOr(b.following, Default)
	} else {
		b.groupOp = b.operatorOr(b.following, b.operatorOr(b.preceding, Default))
	}

	b.mode = MP
	b.groupPos = pos
	b.start = pos + 1
	b.clearOperators()
}

// closeGroup emits the text of the group as one clause. An empty group
// emits nothing, not even its operator.
func (b *buffer) closeGroup(pos int) {
	if clause := strings.TrimSpace(b.data[b.start:pos]); clause != "" {
		b.emit(b.groupOp, clause)
	}

	b.mode = MO
	b.groupPos = -1
	b.groupOp = ""
	b.start = pos + 1
}

// finish validates the final mode and flushes the trailing clause. A
// trailing clause that is empty contributes no operator either.
func (b *buffer) finish() error {
	if b.mode == MP || (b.mode == MQ && b.outer == MP) {
		return newParseError(ErrMismatchedParentheses, b.groupPos)
	}

	if clause := b.clause(len(b.data)); clause != "" {
		b.emit(b.operatorOr(b.preceding, Default), clause)
	}
	return nil
}

// clause returns the trimmed text from the clause start to end, leaving out
// the operators written right before and after it.
func (b *buffer) clause(end int) string {
	begin := b.start
	if b.preceding.set() && begin < b.preceding.pos {
		begin = b.preceding.pos + 1
	}
	if b.following.set() && b.following.pos != -1 && end > b.following.pos {
		end = b.following.pos
	}
	if begin >= end {
		return ""
	}
	return strings.TrimSpace(b.data[begin:end])
}

func (b *buffer) emit(op Operator, clause string) {
	b.result = append(b.result, string(op), clause)
}

func (b *buffer) operatorOr(p pending, fallback Operator) Operator {
	if p.set() {
		return p.op
	}
	return fallback
}

func (b *buffer) clearOperators() {
	b.preceding = pending{pos: -1}
	b.following = pending{pos: -1}
}
