package molmass

import (
	"fmt"
	"html"
	"strings"
	"unicode"
)

// BugMarker prefixes the message of an internal error in rendered output, so
// that a reader can tell a bug in this package from a mistake in the formula.
const BugMarker = "BUG IN MOLMASS: "

// Result is the outcome of evaluating a formula. Either Err is nil and
// Formula and Report are set, or Err is non-nil and both are nil.
type Result struct {
	// Input is the formula with whitespace removed.
	Input string
	// Formula is the parsed formula.
	Formula Formula
	// Report is the mass breakdown.
	Report *Report
	// Err is the first error that occurred while parsing or computing.
	Err error
}

// Kind classifies the result's error.
func (r *Result) Kind() ErrorKind {
	return KindOf(r.Err)
}

// Mass returns the total mass, or 0 if evaluation failed.
func (r *Result) Mass() float64 {
	if r.Err != nil || r.Report == nil {
		return 0
	}
	return r.Report.Float64()
}

// Message returns the error message, prefixed with BugMarker if the error is
// internal. It is empty if there is no error.
func (r *Result) Message() string {
	switch r.Kind() {
	case KindNone:
		return ""
	case KindInput:
		return r.Err.Error()
	default:
		return BugMarker + r.Err.Error()
	}
}

// Evaluate removes whitespace from a formula, parses it, and computes its
// mass. Evaluate never panics; a panic below it is returned as an
// *InternalError.
func Evaluate(formula string, opts ...Option) (r *Result) {
	r = &Result{Input: StripSpace(formula)}
	defer func() {
		if p := recover(); p != nil {
			r.Formula, r.Report = nil, nil
			r.Err = &InternalError{Op: "Evaluate", Msg: fmt.Sprint(p)}
			log.Error("Recovered from panic", log.Args("formula", r.Input, "panic", p))
		}
	}()
	f, err := Parse(r.Input, opts...)
	if err != nil {
		r.Err = err
		return r
	}
	rep, err := Compute(f, opts...)
	if err != nil {
		r.Err = err
		return r
	}
	r.Formula, r.Report = f, rep
	return r
}

// Mass evaluates a formula and returns its total mass. Any failure gives 0, so
// Mass can be used in the middle of arithmetic that should carry on anyway.
func Mass(formula string, opts ...Option) float64 {
	return Evaluate(formula, opts...).Mass()
}

// Render evaluates a formula and renders the result as HTML: the formula with
// subscript counts in a table of per-element masses. If evaluation fails, the
// result is the escaped error message as given by Result.Message.
func Render(formula string, opts ...Option) string {
	r := Evaluate(formula, opts...)
	if r.Err != nil {
		return html.EscapeString(r.Message())
	}
	return TableHTML(r.Formula, r.Report)
}

// StripSpace removes every Unicode whitespace character from s, including the
// byte order mark.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\ufeff' {
			return -1
		}
		return r
	}, s)
}
