package molmass

import (
	"errors"
	"strconv"
)

// BracketError is an error indicating brackets that do not balance. It
// implements InputError.
type BracketError struct {
	// Col is the position of the offending bracket.
	Col int
	// Left is the opening bracket, or empty if a close bracket appeared with
	// no open bracket.
	Left string
	// Right is the mismatched closing bracket, or empty if the input ended
	// before the group was closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "unbalanced brackets: open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"formula"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CharError is an error indicating a character that cannot start a term. It
// implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the invalid character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// CountError is an error indicating a count or an expanded atom count that
// does not fit in a uint64. It implements InputError.
type CountError struct {
	// Col is the position of the count, or of the term whose expansion
	// overflowed.
	Col int
	// Text is the count as written, or the element symbol whose total
	// overflowed.
	Text string
}

func (err *CountError) Error() string {
	return errpos(err.Col, "count too large: "+err.Text)
}

func (err *CountError) Pos() int {
	return err.Col
}

// DepthError is an error indicating groups nested more deeply than allowed by
// MaxDepth. It implements InputError.
type DepthError struct {
	// Col is the position of the open bracket that exceeded the limit.
	Col int
	// Max is the maximum nesting depth.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "groups nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// ElementError is an error indicating an element symbol that is not in the
// atomic mass table. It implements InputError.
type ElementError struct {
	// Col is the position of the symbol's first occurrence, or 0 if the
	// formula was not parsed.
	Col int
	// Symbol is the unknown symbol.
	Symbol string
}

func (err *ElementError) Error() string {
	msg := "unknown element: " + err.Symbol
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *ElementError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error caused by the formula itself. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the one that caused the error, counted after whitespace is
	// removed. It is 0 when the position is unknown.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*CountError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*ElementError)(nil)
)

// InternalError indicates that a function in this package was called in a
// state it does not allow. It never results from bad input; seeing one means
// there is a bug here.
type InternalError struct {
	// Op is the operation whose precondition failed.
	Op string
	// Msg describes the failure.
	Msg string
}

func (err *InternalError) Error() string {
	return "molmass: " + err.Op + ": " + err.Msg
}

// ErrorKind classifies errors.
type ErrorKind int8

const (
	// KindNone means there was no error.
	KindNone ErrorKind = iota
	// KindInput means the formula was malformed or named an unknown element.
	KindInput
	// KindInternal means a bug in this package.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInput:
		return "input"
	case KindInternal:
		return "internal"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// KindOf classifies err. Errors that do not wrap an InputError are internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var ie InputError
	if errors.As(err, &ie) {
		return KindInput
	}
	return KindInternal
}
