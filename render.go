package molmass

import (
	"html"
	"strconv"
	"strings"
)

// FormulaHTML renders a formula as HTML with counts greater than 1 in <sub>
// elements. Groups are always written with round brackets.
func FormulaHTML(f Formula) string {
	var b strings.Builder
	formulaHTML(&b, f)
	return b.String()
}

func formulaHTML(b *strings.Builder, f Formula) {
	for _, t := range f {
		if t.Unit.IsGroup() {
			b.WriteByte('(')
			formulaHTML(b, t.Unit.group)
			b.WriteByte(')')
		} else {
			b.WriteString(html.EscapeString(t.Unit.sym))
		}
		if t.Count > 1 {
			b.WriteString("<sub>")
			b.WriteString(strconv.FormatUint(t.Count, 10))
			b.WriteString("</sub>")
		}
	}
}

// Header holds the column titles of a mass table.
var Header = []string{"Atom", "#", "Atom Mass", "Mass (g)", "Mass %"}

// Rows formats the report's elements as table cells in the order of Header.
// Masses and percentages have three decimal places.
func (r *Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Elements))
	for _, e := range r.Elements {
		rows = append(rows, []string{
			e.Symbol,
			strconv.FormatUint(e.Count, 10),
			e.AtomMass.Text('g', -1),
			e.Mass.Text('f', 3),
			e.Percent.Text('f', 3) + "%",
		})
	}
	return rows
}

// TotalPercent is the percentage shown in the totals row: 100% unless the
// formula has no mass at all.
func (r *Report) TotalPercent() string {
	if r.Total.Sign() == 0 {
		return "0%"
	}
	return "100%"
}

// TableHTML renders a formula and its report as an HTML table with one row
// per element followed by a totals row.
func TableHTML(f Formula, r *Report) string {
	var b strings.Builder
	b.WriteString("<table>")
	b.WriteString("<tr><th colspan='5'>")
	b.WriteString(FormulaHTML(f))
	b.WriteString("</th></tr>")
	b.WriteString("<tr>")
	for _, h := range Header {
		b.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	b.WriteString("</tr>")
	for _, row := range r.Rows() {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("<tr><th colspan='3'>Total Mass</th>")
	b.WriteString("<th>" + r.Total.Text('f', 3) + "</th>")
	b.WriteString("<th>" + r.TotalPercent() + "</th>")
	b.WriteString("</tr>")
	b.WriteString("</table>")
	return b.String()
}
