package molmass

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		input string
		mass  float64
	}{
		{"plain", "H2SO4", "H2SO4", 98.072},
		{"spaces", "  H2 S O4 ", "H2SO4", 98.072},
		{"tabs-newlines", "H2\tS\r\nO4\n", "H2SO4", 98.072},
		{"unicode-spaces", "H2\u00a0SO\u20034\u3000", "H2SO4", 98.072},
		{"bom", "\ufeffH2O", "H2O", 18.015},
		{"nested", "K4 [Fe (CN)6]", "K4[Fe(CN)6]", 368.345},
		{"empty", "", "", 0},
		{"blank", " \t\n", "", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Evaluate(c.src)
			require.NoError(t, r.Err)
			assert.Equal(t, KindNone, r.Kind())
			assert.Equal(t, c.input, r.Input)
			assert.NotNil(t, r.Formula)
			require.NotNil(t, r.Report)
			assert.InDelta(t, c.mass, r.Mass(), 1e-9)
			assert.InDelta(t, c.mass, Mass(c.src), 1e-9)
			assert.Empty(t, r.Message())
		})
	}
}

func TestEvaluateInputErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []Option
		msg  string
	}{
		{"unknown", "Xx2", nil, "1: unknown element: Xx"},
		{"unbalanced", "Ca(OH2", nil, "3: unbalanced brackets: open bracket ( with no close bracket"},
		{"invalid", "H2+O", nil, `3: invalid character '+'`},
		{"mismatch-strict", "Ca(OH]2", []Option{Strict()}, "6: mismatched bracket: (formula]"},
		{"too-deep", "((H))", []Option{MaxDepth(1)}, "2: groups nested deeper than 1"},
		{"overflow", "H99999999999999999999", nil, "2: count too large: 99999999999999999999"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Evaluate(c.src, c.opts...)
			require.Error(t, r.Err)
			assert.Equal(t, KindInput, r.Kind())
			assert.Nil(t, r.Formula)
			assert.Nil(t, r.Report)
			assert.Equal(t, float64(0), r.Mass())
			assert.Equal(t, float64(0), Mass(c.src, c.opts...))
			assert.Equal(t, c.msg, r.Message())
		})
	}
}

func TestResultInternalError(t *testing.T) {
	r := Result{Err: &InternalError{Op: "scanElement", Msg: "no input left"}}
	assert.Equal(t, KindInternal, r.Kind())
	assert.Equal(t, float64(0), r.Mass())
	assert.Equal(t, BugMarker+"molmass: scanElement: no input left", r.Message())
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		kind ErrorKind
	}{
		{nil, KindNone},
		{&BracketError{Col: 1, Left: "("}, KindInput},
		{&CharError{Col: 1, Char: '$'}, KindInput},
		{&CountError{Col: 1, Text: "1"}, KindInput},
		{&DepthError{Col: 1, Max: 1}, KindInput},
		{&ElementError{Symbol: "Xx"}, KindInput},
		{fmt.Errorf("evaluating: %w", &CharError{Col: 1, Char: '$'}), KindInput},
		{&InternalError{Op: "op", Msg: "msg"}, KindInternal},
		{errors.New("anything else"), KindInternal},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, KindOf(c.err), "%v", c.err)
	}
	assert.Equal(t, "input", KindInput.String())
	assert.Equal(t, "ErrorKind(9)", ErrorKind(9).String())
}

func TestRenderErrors(t *testing.T) {
	assert.Equal(t, "2: invalid character &#39;&lt;&#39;", Render("H<2"))
	assert.Equal(t, "1: unknown element: Xx", Render("Xx"))
	assert.True(t, strings.HasPrefix(Render("(H"), "1: unbalanced brackets"))
}

func TestStripSpace(t *testing.T) {
	assert.Equal(t, "H2O", StripSpace(" H 2 O "))
	assert.Equal(t, "", StripSpace("\v\f\u0085\u2028\u2029\u202f\u205f"))
	assert.Equal(t, "Fe", StripSpace("F\u200ae"))
}
