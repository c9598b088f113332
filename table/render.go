package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"termtable/log"
	"termtable/measure"
)

// truncater is implemented by content that can be cut to a single line
// instead of wrapped, such as measure.Text.
type truncater interface {
	Truncate(width int) []string
}

// Render lays the table out into at most maxWidth cells and returns the
// output lines. A table whose borders and padding alone do not fit renders
// no lines.
func (t *Table) Render(maxWidth int) ([]string, error) {
	defer log.GetProfiler().StartRender("table")()

	if len(t.columns) == 0 {
		return nil, nil
	}

	columns := t.layoutColumns()
	widths, err := ComputeColumnWidths(columns, t.rows, t.Request(maxWidth))
	if err != nil {
		return nil, err
	}
	if budget := CellBudget(columns, t.Request(maxWidth)); budget < 0 {
		log.LayoutTrace("table: %d columns need %d more cells than %d", len(columns), -budget, maxWidth)
		return nil, nil
	}
	log.LayoutTrace("table: max width %d, column widths %v", maxWidth, widths)

	r := renderer{t: t, widths: widths}
	headers, footers := make(Row, len(columns)), make(Row, len(columns))
	var hasHeader, hasFooter bool
	for i, c := range columns {
		headers[i], footers[i] = c.Header, c.Footer
		hasHeader = hasHeader || c.Header != nil
		hasFooter = hasFooter || c.Footer != nil
	}

	b := t.box.Border
	var lines []string
	if t.showBorder {
		lines = append(lines, r.rule(b.TopLeft, b.MiddleTop, b.TopRight, b.Top))
	}
	if hasHeader {
		lines = append(lines, r.row(headers, &t.headerStyle)...)
		if t.showBorder {
			lines = append(lines, r.rule(b.MiddleLeft, b.Middle, b.MiddleRight, b.Top))
		}
	}
	for _, row := range t.rows {
		lines = append(lines, r.row(row, nil)...)
	}
	if hasFooter {
		if t.showBorder {
			lines = append(lines, r.rule(b.MiddleLeft, b.Middle, b.MiddleRight, b.Bottom))
		}
		lines = append(lines, r.row(footers, &t.footerStyle)...)
	}
	if t.showBorder {
		lines = append(lines, r.rule(b.BottomLeft, b.MiddleBottom, b.BottomRight, b.Bottom))
	}

	log.RenderTrace("table", "%d lines", len(lines))
	return lines, nil
}

// String renders the table at its natural width.
func (t *Table) String() string {
	lines, err := t.Render(t.Measure(measure.Unbounded).Max)
	if err != nil {
		return err.Error()
	}
	return strings.Join(lines, "\n")
}

type renderer struct {
	t      *Table
	widths []int
}

func (r renderer) rightPadding(i int) int {
	if i == len(r.widths)-1 && !r.t.padRightLastCell {
		return 0
	}
	return max(r.t.columns[i].Padding.Right, 0)
}

// cellWidth is the full width of column i including its padding.
func (r renderer) cellWidth(i int) int {
	return max(r.t.columns[i].Padding.Left, 0) + r.widths[i] + r.rightPadding(i)
}

func (r renderer) border(s string) string {
	return r.t.borderStyle.Render(s)
}

// rule draws a horizontal line across every column.
func (r renderer) rule(left, joint, right, fill string) string {
	var sb strings.Builder
	sb.WriteString(r.border(left))
	for i := range r.widths {
		if i > 0 {
			sb.WriteString(r.border(joint))
		}
		sb.WriteString(r.border(strings.Repeat(fill, r.cellWidth(i))))
	}
	sb.WriteString(r.border(right))
	return sb.String()
}

// row renders one table row, which may span several lines when cells wrap.
func (r renderer) row(cells Row, style *lipgloss.Style) []string {
	cellLines := make([][]string, len(cells))
	height := 1
	for i, cell := range cells {
		cellLines[i] = r.cellLines(i, cell)
		height = max(height, len(cellLines[i]))
	}

	sep := r.border(r.t.box.Border.Left)
	out := make([]string, height)
	for y := range out {
		var sb strings.Builder
		if r.t.showBorder {
			sb.WriteString(sep)
		}
		for i, c := range r.t.columns {
			if i > 0 && r.t.showBorder {
				sb.WriteString(sep)
			}
			var line string
			if y < len(cellLines[i]) {
				line = cellLines[i][y]
			}
			content := align(line, r.widths[i], c.Align)
			if style != nil {
				content = style.Render(content)
			}
			sb.WriteString(strings.Repeat(" ", max(c.Padding.Left, 0)))
			sb.WriteString(content)
			sb.WriteString(strings.Repeat(" ", r.rightPadding(i)))
		}
		if r.t.showBorder {
			sb.WriteString(r.border(r.t.box.Border.Right))
		}
		out[y] = sb.String()
	}
	return out
}

func (r renderer) cellLines(i int, cell measure.Measurable) []string {
	w := r.widths[i]
	if tr, ok := cell.(truncater); ok && r.t.columns[i].NoWrap {
		return tr.Truncate(w)
	}
	if rc, ok := cell.(measure.Renderable); ok {
		return rc.Lines(w)
	}
	return nil
}

// align places line within width cells, cutting it if it is too wide.
func align(line string, width int, a Align) string {
	lw := measure.StringWidth(line)
	if lw > width {
		line = truncate.String(line, uint(max(width, 0)))
		lw = measure.StringWidth(line)
	}
	gap := max(width-lw, 0)
	switch a {
	case AlignRight:
		return strings.Repeat(" ", gap) + line
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + line + strings.Repeat(" ", gap-left)
	default:
		return line + strings.Repeat(" ", gap)
	}
}
