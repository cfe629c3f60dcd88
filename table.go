package molmass

import (
	"math/big"
)

// elements lists the standard atomic weights in order of atomic number, taken
// from the IUPAC 2021 table (abridged values). Elements without a standard
// atomic weight use the mass of their longest-lived isotope.
var elements = [...]struct {
	sym  string
	mass string
}{
	{"H", "1.0080"},
	{"He", "4.0026"},
	{"Li", "6.94"},
	{"Be", "9.0122"},
	{"B", "10.81"},
	{"C", "12.011"},
	{"N", "14.007"},
	{"O", "15.999"},
	{"F", "18.998"},
	{"Ne", "20.18"},
	{"Na", "22.99"},
	{"Mg", "24.305"},
	{"Al", "26.982"},
	{"Si", "28.085"},
	{"P", "30.974"},
	{"S", "32.06"},
	{"Cl", "35.45"},
	{"Ar", "39.95"},
	{"K", "39.098"},
	{"Ca", "40.078"},
	{"Sc", "44.956"},
	{"Ti", "47.867"},
	{"V", "50.942"},
	{"Cr", "51.996"},
	{"Mn", "54.938"},
	{"Fe", "55.845"},
	{"Co", "58.933"},
	{"Ni", "58.693"},
	{"Cu", "63.546"},
	{"Zn", "65.38"},
	{"Ga", "69.723"},
	{"Ge", "72.63"},
	{"As", "74.922"},
	{"Se", "78.971"},
	{"Br", "79.904"},
	{"Kr", "83.798"},
	{"Rb", "85.468"},
	{"Sr", "87.62"},
	{"Y", "88.906"},
	{"Zr", "91.224"},
	{"Nb", "92.906"},
	{"Mo", "95.95"},
	{"Tc", "96.90636"},
	{"Ru", "101.07"},
	{"Rh", "102.91"},
	{"Pd", "106.42"},
	{"Ag", "107.87"},
	{"Cd", "112.41"},
	{"In", "114.82"},
	{"Sn", "118.71"},
	{"Sb", "121.76"},
	{"Te", "127.6"},
	{"I", "126.9"},
	{"Xe", "131.29"},
	{"Cs", "132.91"},
	{"Ba", "137.33"},
	{"La", "138.91"},
	{"Ce", "140.12"},
	{"Pr", "140.91"},
	{"Nd", "144.24"},
	{"Pm", "144.91276"},
	{"Sm", "150.36"},
	{"Eu", "151.96"},
	{"Gd", "157.25"},
	{"Tb", "158.93"},
	{"Dy", "162.5"},
	{"Ho", "164.93"},
	{"Er", "167.26"},
	{"Tm", "168.93"},
	{"Yb", "173.05"},
	{"Lu", "174.97"},
	{"Hf", "178.49"},
	{"Ta", "180.95"},
	{"W", "183.84"},
	{"Re", "186.21"},
	{"Os", "190.23"},
	{"Ir", "192.22"},
	{"Pt", "195.08"},
	{"Au", "196.97"},
	{"Hg", "200.59"},
	{"Tl", "204.38"},
	{"Pb", "207.2"},
	{"Bi", "208.98"},
	{"Po", "208.98243"},
	{"At", "209.98715"},
	{"Rn", "209.98969"},
	{"Fr", "211.99623"},
	{"Ra", "226.02541"},
	{"Ac", "227.02775"},
	{"Th", "232.04"},
	{"Pa", "231.04"},
	{"U", "238.03"},
	{"Np", "237.04817"},
	{"Pu", "244.06420"},
	{"Am", "243.06138"},
	{"Cm", "247.07035"},
	{"Bk", "247.07031"},
	{"Cf", "251.07959"},
	{"Es", "252.08298"},
	{"Fm", "257.09511"},
	{"Md", "258.09843"},
	{"No", "259.10100"},
	{"Lr", "262.10962"},
	{"Rf", "267.12179"},
	{"Db", "268.12567"},
	{"Sg", "269.12850"},
	{"Bh", "270.13337"},
	{"Hs", "269.13365"},
	{"Mt", "277.15353"},
	{"Ds", "281.16455"},
	{"Rg", "282.16934"},
	{"Cn", "285.17723"},
	{"Nh", "285.18011"},
	{"Fl", "289.19052"},
	{"Mc", "288.19288"},
	{"Lv", "291.20101"},
	{"Ts", "294.21084"},
	{"Og", "294.21398"},
}

// massidx maps element symbols to their index in elements. It is built once
// and only read afterward.
var massidx = func() map[string]int {
	m := make(map[string]int, len(elements))
	for i, e := range elements {
		m[e.sym] = i
	}
	return m
}()

// AtomicMass returns the standard atomic mass of an element at the given
// precision in bits, or 64 if prec is 0. If the symbol is not in the table,
// the error is an *ElementError.
func AtomicMass(symbol string, prec uint) (*big.Float, error) {
	i, ok := massidx[symbol]
	if !ok {
		return nil, &ElementError{Symbol: symbol}
	}
	if prec == 0 {
		prec = 64
	}
	r, _, err := big.ParseFloat(elements[i].mass, 10, prec, big.ToNearestEven)
	if err != nil {
		// The table is constant, so this is a bug.
		return nil, &InternalError{Op: "AtomicMass", Msg: "bad mass for " + symbol + ": " + err.Error()}
	}
	return r, nil
}

// Known returns whether symbol is in the atomic mass table.
func Known(symbol string) bool {
	_, ok := massidx[symbol]
	return ok
}

// Elements returns the symbols in the atomic mass table in order of atomic
// number.
func Elements() []string {
	v := make([]string, len(elements))
	for i, e := range elements {
		v[i] = e.sym
	}
	return v
}
