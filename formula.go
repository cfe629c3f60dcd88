package molmass

import (
	"strconv"
	"strings"
)

// Formula is a parsed chemical formula: a sequence of terms in the order they
// were written. Order matters for rendering but not for mass.
type Formula []Term

// Term is one constituent of a formula with its repeat count.
type Term struct {
	Unit  Unit
	Count uint64

	// col is the column of the term's first rune in the parsed input, or 0
	// for terms that were not parsed.
	col int
}

// Unit is either a single element or a bracketed group of terms.
type Unit struct {
	kind  unitKind
	sym   string
	group Formula
}

type unitKind int8

const (
	unitNone unitKind = iota

	unitElement // sym is the element symbol
	unitGroup   // group is the sub-formula
)

// Element creates an element unit. The symbol is not checked against the
// atomic mass table.
func Element(symbol string) Unit {
	return Unit{kind: unitElement, sym: symbol}
}

// Group creates a group unit containing f.
func Group(f Formula) Unit {
	return Unit{kind: unitGroup, group: f}
}

// IsGroup returns whether u is a group.
func (u Unit) IsGroup() bool {
	return u.kind == unitGroup
}

// Symbol returns the element symbol of u, or the empty string if u is a group.
func (u Unit) Symbol() string {
	return u.sym
}

// Sub returns the terms of a group unit, or nil if u is an element.
func (u Unit) Sub() Formula {
	return u.group
}

// String renders the formula as plain text. Groups are always written with
// round brackets and counts of 1 are omitted, so parsing the result gives the
// same tally even when the input used other brackets.
func (f Formula) String() string {
	var b strings.Builder
	f.fmt(&b, plainCount)
	return b.String()
}

// Subscript renders the formula like String, but with counts written as
// Unicode subscript digits, e.g. "Ca(OH)₂".
func (f Formula) Subscript() string {
	var b strings.Builder
	f.fmt(&b, subscriptCount)
	return b.String()
}

func (f Formula) fmt(b *strings.Builder, count func(*strings.Builder, uint64)) {
	for _, t := range f {
		switch t.Unit.kind {
		case unitElement:
			b.WriteString(t.Unit.sym)
		case unitGroup:
			b.WriteByte('(')
			t.Unit.group.fmt(b, count)
			b.WriteByte(')')
		default:
			// Invalid units use invalid characters.
			b.WriteString("$$")
		}
		if t.Count != 1 {
			count(b, t.Count)
		}
	}
}

func plainCount(b *strings.Builder, n uint64) {
	b.WriteString(strconv.FormatUint(n, 10))
}

func subscriptCount(b *strings.Builder, n uint64) {
	for _, r := range strconv.FormatUint(n, 10) {
		b.WriteRune('₀' + r - '0')
	}
}
