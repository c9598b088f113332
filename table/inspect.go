package table

import (
	"fmt"
	"strconv"

	"termtable/inspect"
	"termtable/measure"
)

var _ inspect.Introspectable = (*Table)(nil)

// Inspect describes the table's allocation at maxWidth: one Column child
// per column carrying its hint, measured range and allocated width.
func (t *Table) Inspect(maxWidth int) *inspect.Node {
	columns := t.layoutColumns()
	req := t.Request(maxWidth)
	budget := CellBudget(columns, req)

	node := inspect.NewNode("Table").
		WithState("max_width", maxWidth).
		WithState("cell_budget", budget).
		WithState("non_column_width", t.extraWidth()).
		WithState("expand", t.expand).
		WithState("show_border", t.showBorder).
		WithState("box", t.box.Name).
		WithState("rows", len(t.rows))
	styles := inspect.ExtractStyleInfo(t.headerStyle, "header")
	if t.showBorder {
		styles.Border = t.box.Name
		styles.BorderColor = inspect.ExtractStyleInfo(t.borderStyle).Foreground
	}
	node.WithStyles(styles)

	lines, err := t.Render(maxWidth)
	if err != nil {
		return node.WithState("error", err.Error()).WithVisible(false)
	}
	width := 0
	for _, line := range lines {
		width = max(width, measure.StringWidth(line))
	}
	node.WithBounds(0, 0, width, len(lines)).WithVisible(len(lines) > 0)

	widths, _ := ComputeColumnWidths(columns, t.rows, req)
	r := renderer{t: t, widths: widths}
	x := 0
	if t.showBorder {
		x = 1
	}
	for i, c := range columns {
		m := measureColumn(c, i, t.rows, max(budget, 0))
		left := max(c.Padding.Left, 0)
		col := inspect.NewNode("Column").
			WithID(strconv.Itoa(i)).
			WithBounds(x+left, 0, widths[i], len(lines)).
			WithVisible(widths[i] > 0 && len(lines) > 0).
			WithState("hint", c.Hint.String()).
			WithState("no_wrap", c.NoWrap).
			WithState("min", m.Min).
			WithState("max", m.Max).
			WithState("width", widths[i]).
			WithState("padding", []int{left, r.rightPadding(i)})
		if c.Header != nil {
			col.WithContent(plain(c.Header))
		}
		if widths[i] < m.Max {
			col.WithTruncation(m.Max, widths[i], c.NoWrap)
		}
		node.AddChild(col)

		x += r.cellWidth(i)
		if t.showBorder {
			x++
		}
	}
	return node
}

func plain(m measure.Measurable) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", m)
}
