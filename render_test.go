package molmass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaHTML(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"", ""},
		{"H2O", "H<sub>2</sub>O"},
		{"H1", "H"},
		{"H0", "H"},
		{"Ca(OH)2", "Ca(OH)<sub>2</sub>"},
		{"K4[Fe(CN)6]", "K<sub>4</sub>(Fe(CN)<sub>6</sub>)"},
		{"{H}12", "(H)<sub>12</sub>"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormulaHTML(mustParse(t, c.src)), c.src)
	}
	assert.Equal(t, "&lt;", FormulaHTML(Formula{{Unit: Element("<"), Count: 1}}))
}

func TestRows(t *testing.T) {
	r, err := Compute(mustParse(t, "Ca(OH)2"))
	require.NoError(t, err)
	want := [][]string{
		{"Ca", "1", "40.078", "40.078", "54.092%"},
		{"O", "2", "15.999", "31.998", "43.187%"},
		{"H", "2", "1.008", "2.016", "2.721%"},
	}
	assert.Equal(t, want, r.Rows())
	assert.Equal(t, "100%", r.TotalPercent())

	z, err := Compute(mustParse(t, "H0"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"H", "0", "1.008", "0.000", "0.000%"}}, z.Rows())
	assert.Equal(t, "0%", z.TotalPercent())
}

func TestRender(t *testing.T) {
	want := "<table>" +
		"<tr><th colspan='5'>H<sub>2</sub>O</th></tr>" +
		"<tr><th>Atom</th><th>#</th><th>Atom Mass</th><th>Mass (g)</th><th>Mass %</th></tr>" +
		"<tr><td>H</td><td>2</td><td>1.008</td><td>2.016</td><td>11.191%</td></tr>" +
		"<tr><td>O</td><td>1</td><td>15.999</td><td>15.999</td><td>88.809%</td></tr>" +
		"<tr><th colspan='3'>Total Mass</th><th>18.015</th><th>100%</th></tr>" +
		"</table>"
	assert.Equal(t, want, Render("H2O"))
	assert.Equal(t, want, Render(" H 2 O "))
}

func TestRenderEmpty(t *testing.T) {
	want := "<table>" +
		"<tr><th colspan='5'></th></tr>" +
		"<tr><th>Atom</th><th>#</th><th>Atom Mass</th><th>Mass (g)</th><th>Mass %</th></tr>" +
		"<tr><th colspan='3'>Total Mass</th><th>0.000</th><th>0%</th></tr>" +
		"</table>"
	assert.Equal(t, want, Render(""))
}
