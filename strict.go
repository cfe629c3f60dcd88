package molmass

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// strictLexer splits a formula into tokens. Element matches the same symbols
// as scanElement: an uppercase letter and at most one lowercase letter.
var strictLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Element", Pattern: `[A-Z][a-z]?`},
	{Name: "Count", Pattern: `[0-9]+`},
	{Name: "Open", Pattern: `[(\[{]`},
	{Name: "Close", Pattern: `[)\]}]`},
})

type strictFormula struct {
	Terms []*strictTerm `parser:"@@*"`
}

type strictTerm struct {
	Pos lexer.Position

	Element string       `parser:"(  @Element"`
	Group   *strictGroup `parser:" | @@ )"`
	Count   string       `parser:"@Count?"`
}

// strictGroup accepts any close bracket so that a mismatch can be reported
// with both brackets instead of as an unexpected token.
type strictGroup struct {
	Pos lexer.Position

	Open  string        `parser:"@Open"`
	Terms []*strictTerm `parser:"@@*"`
	Close string        `parser:"@Close"`
}

var strictParser = participle.MustBuild[strictFormula](
	participle.Lexer(strictLexer),
)

// parseStrict parses a formula requiring every group to close with the
// bracket style that opened it.
func parseStrict(src string, c *config) (Formula, error) {
	if src == "" {
		return Formula{}, nil
	}
	ast, err := strictParser.ParseString("", src)
	if err != nil {
		return nil, strictError(src, err)
	}
	return strictTerms(src, ast.Terms, c, 0)
}

// strictTerms converts parsed terms to a Formula. depth is the number of
// groups enclosing the terms.
func strictTerms(src string, terms []*strictTerm, c *config, depth int) (Formula, error) {
	f := make(Formula, 0, len(terms))
	for _, st := range terms {
		t := Term{col: runecol(src, st.Pos.Offset), Count: 1}
		// end is the byte offset just past the element or group.
		var end int
		switch {
		case st.Group != nil:
			g := st.Group
			if c.depth > 0 && depth+1 > c.depth {
				return nil, &DepthError{Col: t.col, Max: c.depth}
			}
			k := strings.Index(OpenBrackets, g.Open)
			if k < 0 {
				return nil, &InternalError{Op: "parseStrict", Msg: "group opened with " + strconv.Quote(g.Open)}
			}
			// Convert the contents first so the leftmost mismatch is reported.
			sub, err := strictTerms(src, g.Terms, c, depth+1)
			if err != nil {
				return nil, err
			}
			cl := closer(src, g.Pos.Offset)
			if cl < 0 {
				return nil, &InternalError{Op: "parseStrict", Msg: "no close bracket for group at " + strconv.Itoa(t.col)}
			}
			if g.Close != CloseBrackets[k:k+1] {
				return nil, &BracketError{Col: runecol(src, cl), Left: g.Open, Right: g.Close}
			}
			t.Unit = Group(sub)
			end = cl + 1
		case st.Element != "":
			t.Unit = Element(st.Element)
			end = st.Pos.Offset + len(st.Element)
		default:
			return nil, &InternalError{Op: "parseStrict", Msg: "term with neither element nor group"}
		}
		if st.Count != "" {
			n, err := strconv.ParseUint(st.Count, 10, 64)
			if err != nil {
				return nil, &CountError{Col: runecol(src, end), Text: st.Count}
			}
			t.Count = n
		}
		f = append(f, t)
	}
	return f, nil
}

// strictError converts a participle error to an InputError. An error at the
// end of input means a group was left open; otherwise the rune at the error
// position is a stray close bracket or cannot start a term.
func strictError(src string, err error) error {
	var (
		perr participle.Error
		lerr *lexer.Error
		off  int
	)
	switch {
	case errors.As(err, &perr):
		off = perr.Position().Offset
	case errors.As(err, &lerr):
		off = lerr.Pos.Offset
	default:
		return &InternalError{Op: "parseStrict", Msg: err.Error()}
	}
	if off < 0 || off > len(src) {
		return &InternalError{Op: "parseStrict", Msg: "error position out of range: " + err.Error()}
	}
	if off == len(src) {
		open := unclosed(src)
		if open < 0 {
			return &InternalError{Op: "parseStrict", Msg: "unexpected end of balanced input: " + err.Error()}
		}
		return &BracketError{Col: runecol(src, open), Left: src[open : open+1]}
	}
	r, _ := utf8.DecodeRuneInString(src[off:])
	if strings.ContainsRune(CloseBrackets, r) {
		return &BracketError{Col: runecol(src, off), Right: string(r)}
	}
	return &CharError{Col: runecol(src, off), Char: r}
}

// closer finds the byte offset of the close bracket ending the group that
// opens at off, or -1 if there is none. Any close bracket closes the innermost
// group, the same as in the grammar.
func closer(src string, off int) int {
	depth := 0
	for i := off; i < len(src); i++ {
		switch {
		case isOpen(src[i]):
			depth++
		case isClose(src[i]):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// unclosed finds the byte offset of the innermost open bracket that is still
// open at the end of src, or -1 if every bracket is closed. Any close bracket
// closes the innermost group.
func unclosed(src string) int {
	var stack []int
	for i := 0; i < len(src); i++ {
		switch {
		case isOpen(src[i]):
			stack = append(stack, i)
		case isClose(src[i]) && len(stack) > 0:
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) == 0 {
		return -1
	}
	return stack[len(stack)-1]
}

func runecol(src string, off int) int {
	if off > len(src) {
		off = len(src)
	}
	return utf8.RuneCountInString(src[:off]) + 1
}
