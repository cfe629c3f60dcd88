package molmass

import (
	"math/big"
	"math/bits"
)

// Tally is the number of atoms of each element in a formula with all groups
// expanded. Symbols are kept in the order they were first encountered.
type Tally struct {
	syms   []string
	counts map[string]uint64
	// cols is the column of each symbol's first occurrence.
	cols map[string]int
}

func newTally() *Tally {
	return &Tally{
		counts: make(map[string]uint64),
		cols:   make(map[string]int),
	}
}

// add adds n atoms of sym. col is the position to use if sym is new to the
// tally.
func (t *Tally) add(sym string, n uint64, col int) error {
	c, ok := t.counts[sym]
	if !ok {
		t.syms = append(t.syms, sym)
		t.cols[sym] = col
	}
	s, carry := bits.Add64(c, n, 0)
	if carry != 0 {
		return &CountError{Col: t.cols[sym], Text: sym}
	}
	t.counts[sym] = s
	return nil
}

// Len returns the number of distinct elements in the tally.
func (t *Tally) Len() int {
	return len(t.syms)
}

// Symbols returns the element symbols in the order they first appear.
func (t *Tally) Symbols() []string {
	return append(([]string)(nil), t.syms...)
}

// Count returns the number of atoms of an element.
func (t *Tally) Count(symbol string) uint64 {
	return t.counts[symbol]
}

// Map returns a copy of the tally as a map.
func (t *Tally) Map() map[string]uint64 {
	m := make(map[string]uint64, len(t.counts))
	for k, v := range t.counts {
		m[k] = v
	}
	return m
}

// Aggregate expands the groups of a formula and totals the atoms of each
// element. The result is an error only if a count overflows.
func Aggregate(f Formula) (*Tally, error) {
	t := newTally()
	for _, term := range f {
		switch term.Unit.kind {
		case unitElement:
			if err := t.add(term.Unit.sym, term.Count, term.col); err != nil {
				return nil, err
			}
		case unitGroup:
			inner, err := Aggregate(term.Unit.group)
			if err != nil {
				return nil, err
			}
			for _, sym := range inner.syms {
				hi, n := bits.Mul64(inner.counts[sym], term.Count)
				if hi != 0 {
					return nil, &CountError{Col: term.col, Text: sym}
				}
				if err := t.add(sym, n, inner.cols[sym]); err != nil {
					return nil, err
				}
			}
		default:
			return nil, &InternalError{Op: "Aggregate", Msg: "term is neither element nor group"}
		}
	}
	return t, nil
}

// ElementMass is the contribution of one element to a formula's mass.
type ElementMass struct {
	Symbol string
	// Count is the number of atoms of the element.
	Count uint64
	// AtomMass is the standard atomic mass of the element.
	AtomMass *big.Float
	// Mass is Count × AtomMass.
	Mass *big.Float
	// Percent is the share of the formula's total mass, from 0 to 100. It is
	// zero for every element if the total is zero.
	Percent *big.Float
}

// Report is the mass breakdown of a formula.
type Report struct {
	// Elements holds one entry per distinct element in the order each was
	// first encountered.
	Elements []ElementMass
	// Total is the molecular mass.
	Total *big.Float
}

// Lookup returns the entry for an element, if it is present.
func (r *Report) Lookup(symbol string) (ElementMass, bool) {
	for _, e := range r.Elements {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return ElementMass{}, false
}

// Float64 returns the total mass as a float64.
func (r *Report) Float64() float64 {
	f, _ := r.Total.Float64()
	return f
}

// Compute aggregates a formula and computes its mass. If the formula contains
// an element that is not in the atomic mass table, the error is an
// *ElementError for the first such element. Unknown elements are checked
// after expansion, so each is reported at most once however many times its
// group repeats.
//
// The option that applies to computing is Prec.
func Compute(f Formula, opts ...Option) (*Report, error) {
	t, err := Aggregate(f)
	if err != nil {
		return nil, err
	}
	return t.Report(opts...)
}

// Report computes the masses of the elements in the tally.
func (t *Tally) Report(opts ...Option) (*Report, error) {
	c := newConfig(opts)
	r := Report{
		Elements: make([]ElementMass, 0, len(t.syms)),
		Total:    new(big.Float).SetPrec(c.prec),
	}
	for _, sym := range t.syms {
		m, err := AtomicMass(sym, c.prec)
		if err != nil {
			if ee, ok := err.(*ElementError); ok {
				ee.Col = t.cols[sym]
			}
			log.Debug("Unknown element", log.Args("symbol", sym))
			return nil, err
		}
		n := new(big.Float).SetPrec(c.prec).SetUint64(t.counts[sym])
		e := ElementMass{
			Symbol:   sym,
			Count:    t.counts[sym],
			AtomMass: m,
			Mass:     n.Mul(n, m),
		}
		r.Total.Add(r.Total, e.Mass)
		r.Elements = append(r.Elements, e)
	}
	hundred := new(big.Float).SetPrec(c.prec).SetInt64(100)
	for i := range r.Elements {
		p := new(big.Float).SetPrec(c.prec)
		if r.Total.Sign() != 0 {
			p.Quo(r.Elements[i].Mass, r.Total)
			p.Mul(p, hundred)
		}
		r.Elements[i].Percent = p
	}
	log.Trace("Computed mass", log.Args("elements", len(r.Elements), "total", r.Total.Text('g', 10)))
	return &r, nil
}
