package molmass

// Option is an option for parsing or computing. Options that do not apply to
// an operation are ignored by it, so the same list can be passed to Parse,
// Compute, and Evaluate.
type Option interface {
	option()
}

type (
	strictopt bool
	depthopt  int
	precopt   uint
)

func (strictopt) option() {}
func (depthopt) option()  {}
func (precopt) option()   {}

// Strict tells the parser to require each group to be closed by the bracket
// style that opened it. By default, only brackets of the opening style are
// counted while looking for the end of a group, so "(H]2)" is a group whose
// content "H]2" fails as an invalid character rather than as a bracket
// mismatch.
func Strict() Option {
	return strictopt(true)
}

// MaxDepth limits how deeply groups may nest. Zero or a negative value means
// no limit, which is the default.
func MaxDepth(n int) Option {
	return depthopt(n)
}

// Prec sets the precision in bits of mass calculations. If no precision is
// given or prec is 0, the default is 64.
func Prec(prec uint) Option {
	return precopt(prec)
}

// config holds the settings resolved from a list of options.
type config struct {
	// strict enables same-style bracket matching.
	strict bool
	// depth is the maximum group nesting, or 0 for unlimited.
	depth int
	// prec is the precision of big.Float calculations.
	prec uint
}

func newConfig(opts []Option) config {
	c := config{prec: 64}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case strictopt:
			c.strict = bool(opt)
		case depthopt:
			c.depth = int(opt)
			if c.depth < 0 {
				c.depth = 0
			}
		case precopt:
			c.prec = uint(opt)
			if c.prec == 0 {
				c.prec = 64
			}
		default:
			panic("molmass: unknown option type")
		}
	}
	return c
}
