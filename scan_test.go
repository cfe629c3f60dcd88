package molmass

import (
	"testing"
)

func TestScanElement(t *testing.T) {
	cases := []struct {
		src  string
		sym  string
		rest int
	}{
		{"H", "H", 1},
		{"He", "He", 2},
		{"H2", "H", 1},
		{"HO", "H", 1},
		{"Hel", "He", 2},
		{"H(", "H", 1},
		{"Hé", "H", 1},
	}
	for _, c := range cases {
		s := scan(c.src)
		sym, err := s.scanElement()
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if sym != c.sym || s.pos != c.rest {
			t.Errorf("%q: want %q ending at %d, got %q ending at %d", c.src, c.sym, c.rest, sym, s.pos)
		}
	}
}

func TestScanElementPreconditions(t *testing.T) {
	for _, src := range []string{"", "h", "2", "(", "é"} {
		s := scan(src)
		_, err := s.scanElement()
		if _, ok := err.(*InternalError); !ok {
			t.Errorf("%q: want *InternalError, got %#v", src, err)
		}
		if KindOf(err) != KindInternal {
			t.Errorf("%q: %v classified as %v", src, err, KindOf(err))
		}
	}
}

func TestScanCount(t *testing.T) {
	cases := []struct {
		src  string
		n    uint64
		rest int
	}{
		{"", 1, 0},
		{"H", 1, 0},
		{"2", 2, 1},
		{"12H", 12, 2},
		{"0", 0, 1},
		{"0042", 42, 4},
		{"18446744073709551615", 18446744073709551615, 20},
	}
	for _, c := range cases {
		s := scan(c.src)
		n, err := s.scanCount()
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if n != c.n || s.pos != c.rest {
			t.Errorf("%q: want %d ending at %d, got %d ending at %d", c.src, c.n, c.rest, n, s.pos)
		}
	}
}

func TestScanCountOverflow(t *testing.T) {
	s := scan("H18446744073709551616")
	s.pos = 1
	_, err := s.scanCount()
	ce, ok := err.(*CountError)
	if !ok {
		t.Fatalf("want *CountError, got %#v", err)
	}
	if ce.Col != 2 || ce.Text != "18446744073709551616" {
		t.Errorf("wrong error %#v", ce)
	}
}

func TestMatchBracket(t *testing.T) {
	cases := []struct {
		src   string
		match int
	}{
		{"()", 1},
		{"[]", 1},
		{"{}", 1},
		{"(H)2", 2},
		{"((H)O)", 5},
		{"(H])", 3},
		{"([)]", 2},
		{"{(}H}", 2},
	}
	for _, c := range cases {
		s := scan(c.src)
		m, err := s.matchBracket()
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if m != c.match {
			t.Errorf("%q: want match at %d, got %d", c.src, c.match, m)
		}
		if s.pos != 0 {
			t.Errorf("%q: cursor moved to %d", c.src, s.pos)
		}
	}
}

func TestMatchBracketUnbalanced(t *testing.T) {
	for _, src := range []string{"(", "((H)", "[H)", "{H]"} {
		s := scan(src)
		_, err := s.matchBracket()
		be, ok := err.(*BracketError)
		if !ok {
			t.Errorf("%q: want *BracketError, got %#v", src, err)
			continue
		}
		if be.Col != 1 || be.Left != src[:1] || be.Right != "" {
			t.Errorf("%q: wrong error %#v", src, be)
		}
	}
}

func TestMatchBracketPreconditions(t *testing.T) {
	for _, src := range []string{"", "H", ")"} {
		s := scan(src)
		_, err := s.matchBracket()
		if _, ok := err.(*InternalError); !ok {
			t.Errorf("%q: want *InternalError, got %#v", src, err)
		}
	}
}

func TestScannerRange(t *testing.T) {
	// A narrowed scanner must not read past its end.
	s := &scanner{src: "He2", pos: 0, end: 1}
	sym, err := s.scanElement()
	if err != nil {
		t.Fatal(err)
	}
	if sym != "H" {
		t.Errorf("want H, got %q", sym)
	}
	n, err := s.scanCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || !s.done() {
		t.Errorf("want count 1 at end, got %d at %d", n, s.pos)
	}
}
