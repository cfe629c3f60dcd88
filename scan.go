package molmass

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// OpenBrackets and CloseBrackets contain the characters which group terms.
// The bracket in byte position k in OpenBrackets is closed by the bracket in
// byte position k in CloseBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// scanner is a cursor over a byte range of a formula. Sub-formulas are parsed
// with a scanner over the same src with a narrower range, so positions are
// always relative to the whole input.
type scanner struct {
	src string
	pos int
	end int
}

func scan(src string) *scanner {
	return &scanner{src: src, end: len(src)}
}

// done returns whether the cursor has reached the end of its range.
func (s *scanner) done() bool {
	return s.pos >= s.end
}

// col converts a byte offset in src to a 1-based rune column.
func (s *scanner) col(off int) int {
	return utf8.RuneCountInString(s.src[:off]) + 1
}

// current decodes the rune at the cursor for error messages.
func (s *scanner) current() rune {
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:s.end])
	return r
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isOpen(c byte) bool {
	return strings.IndexByte(OpenBrackets, c) >= 0
}

func isClose(c byte) bool {
	return strings.IndexByte(CloseBrackets, c) >= 0
}

// scanElement scans an element symbol. The cursor must be at an uppercase
// ASCII letter. A following lowercase letter is part of the symbol; anything
// else, including a digit, ends it. There is no lookup in the mass table, so
// e.g. "Co" is always cobalt and never carbon with oxygen.
func (s *scanner) scanElement() (string, error) {
	if s.done() {
		return "", &InternalError{Op: "scanElement", Msg: "no input left"}
	}
	if !isUpper(s.src[s.pos]) {
		return "", &InternalError{Op: "scanElement", Msg: "expected uppercase letter, got " + strconv.QuoteRune(s.current())}
	}
	n := 1
	if s.pos+1 < s.end && isLower(s.src[s.pos+1]) {
		n = 2
	}
	sym := s.src[s.pos : s.pos+n]
	s.pos += n
	return sym, nil
}

// scanCount scans a run of digits as a base-10 count. If there are no digits,
// the count is 1 and nothing is consumed.
func (s *scanner) scanCount() (uint64, error) {
	start := s.pos
	for s.pos < s.end && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return 1, nil
	}
	text := s.src[start:s.pos]
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		// Only digits were scanned, so the only possible failure is range.
		return 0, &CountError{Col: s.col(start), Text: text}
	}
	return n, nil
}

// matchBracket finds the byte offset of the bracket closing the group that
// opens at the cursor. Only brackets of the opening style are counted; other
// brackets are ordinary characters here. The cursor must be at an open
// bracket and is not moved.
func (s *scanner) matchBracket() (int, error) {
	if s.done() {
		return 0, &InternalError{Op: "matchBracket", Msg: "no input left"}
	}
	k := strings.IndexByte(OpenBrackets, s.src[s.pos])
	if k < 0 {
		return 0, &InternalError{Op: "matchBracket", Msg: "expected open bracket, got " + strconv.QuoteRune(s.current())}
	}
	left, right := OpenBrackets[k], CloseBrackets[k]
	depth := 0
	for i := s.pos; i < s.end; i++ {
		switch s.src[i] {
		case left:
			depth++
		case right:
			depth--
		}
		if depth == 0 {
			return i, nil
		}
	}
	return 0, &BracketError{Col: s.col(s.pos), Left: OpenBrackets[k : k+1]}
}
