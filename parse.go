package molmass

// Formula = { Term }
// Term    = ( Element | Group ) [ Count ]
// Element = upper [ lower ]
// Group   = '(' Formula ')' | '[' Formula ']' | '{' Formula '}'
// Count   = digit { digit }

// Parse parses a formula. Parse does not remove whitespace; Evaluate does.
// Element symbols are not checked against the atomic mass table here, so
// Parse("Xx") succeeds and Compute reports the unknown element.
//
// The options that apply to parsing are Strict and MaxDepth.
func Parse(src string, opts ...Option) (Formula, error) {
	c := newConfig(opts)
	var (
		f   Formula
		err error
	)
	if c.strict {
		f, err = parseStrict(src, &c)
	} else {
		f, err = parseFormula(scan(src), &c, 0)
	}
	if err != nil {
		log.Debug("Formula rejected", log.Args("formula", src, "error", err))
		return nil, err
	}
	log.Trace("Parsed formula", log.Args("formula", src, "terms", len(f), "strict", c.strict))
	return f, nil
}

// parseFormula parses terms until the scanner reaches the end of its range.
// depth is the number of groups enclosing the range.
func parseFormula(s *scanner, c *config, depth int) (Formula, error) {
	f := Formula{}
	for !s.done() {
		t, err := parseTerm(s, c, depth)
		if err != nil {
			return nil, err
		}
		f = append(f, t)
	}
	return f, nil
}

// parseTerm parses an element or group followed by an optional count.
func parseTerm(s *scanner, c *config, depth int) (Term, error) {
	t := Term{col: s.col(s.pos)}
	switch ch := s.src[s.pos]; {
	case isOpen(ch):
		g, err := parseGroup(s, c, depth+1)
		if err != nil {
			return Term{}, err
		}
		t.Unit = Group(g)
	case isUpper(ch):
		sym, err := s.scanElement()
		if err != nil {
			return Term{}, err
		}
		t.Unit = Element(sym)
	default:
		return Term{}, &CharError{Col: t.col, Char: s.current()}
	}
	n, err := s.scanCount()
	if err != nil {
		return Term{}, err
	}
	t.Count = n
	return t, nil
}

// parseGroup parses the bracketed group at the cursor and moves the cursor
// past its close bracket. depth counts the group itself.
func parseGroup(s *scanner, c *config, depth int) (Formula, error) {
	if c.depth > 0 && depth > c.depth {
		return nil, &DepthError{Col: s.col(s.pos), Max: c.depth}
	}
	end, err := s.matchBracket()
	if err != nil {
		return nil, err
	}
	inner := scanner{src: s.src, pos: s.pos + 1, end: end}
	f, err := parseFormula(&inner, c, depth)
	if err != nil {
		return nil, err
	}
	s.pos = end + 1
	return f, nil
}
