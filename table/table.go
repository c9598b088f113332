package table

import (
	"github.com/charmbracelet/lipgloss"

	"termtable/measure"
)

// Table is a renderable grid of cells with a header and optional footer.
// It implements measure.Renderable, so a table can be nested in a cell.
type Table struct {
	columns []Column
	rows    []Row

	box         Box
	borderStyle lipgloss.Style
	headerStyle lipgloss.Style
	footerStyle lipgloss.Style

	showBorder       bool
	showHeader       bool
	showFooter       bool
	expand           bool
	padRightLastCell bool

	width    int
	hasWidth bool
}

// Option configures a Table.
type Option func(*Table)

// New creates an empty table with a rounded border.
func New(opts ...Option) *Table {
	t := &Table{
		box:              RoundedBox,
		borderStyle:      lipgloss.NewStyle(),
		headerStyle:      lipgloss.NewStyle().Bold(true),
		footerStyle:      lipgloss.NewStyle(),
		showBorder:       true,
		showHeader:       true,
		showFooter:       true,
		padRightLastCell: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithBox sets the glyphs used for edges and separators.
func WithBox(b Box) Option {
	return func(t *Table) { t.box = b }
}

// WithoutBorder drops the outer edges and column separators.
func WithoutBorder() Option {
	return func(t *Table) { t.showBorder = false }
}

// WithBorder sets whether edges and column separators are drawn.
func WithBorder(show bool) Option {
	return func(t *Table) { t.showBorder = show }
}

// WithExpand makes the table fill the available width.
func WithExpand(expand bool) Option {
	return func(t *Table) { t.expand = expand }
}

// WithWidth fixes the table's total width. A narrower terminal still wins.
func WithWidth(w int) Option {
	return func(t *Table) {
		t.width = max(w, 0)
		t.hasWidth = true
	}
}

// WithPadRightLastCell sets whether the last column keeps its right padding.
func WithPadRightLastCell(pad bool) Option {
	return func(t *Table) { t.padRightLastCell = pad }
}

// WithShowHeader sets whether the header row is rendered and measured.
func WithShowHeader(show bool) Option {
	return func(t *Table) { t.showHeader = show }
}

// WithShowFooter sets whether the footer row is rendered and measured.
func WithShowFooter(show bool) Option {
	return func(t *Table) { t.showFooter = show }
}

// WithHeaderStyle sets the style applied to header cells.
func WithHeaderStyle(s lipgloss.Style) Option {
	return func(t *Table) { t.headerStyle = s }
}

// WithFooterStyle sets the style applied to footer cells.
func WithFooterStyle(s lipgloss.Style) Option {
	return func(t *Table) { t.footerStyle = s }
}

// WithBorderStyle sets the style applied to border glyphs.
func WithBorderStyle(s lipgloss.Style) Option {
	return func(t *Table) { t.borderStyle = s }
}

// MapColumns replaces every column already added with fn's result.
func MapColumns(fn func(Column) Column) Option {
	return func(t *Table) {
		for i, c := range t.columns {
			t.columns[i] = fn(c)
		}
	}
}

// WithColumnPadding overrides the padding of every column already added.
func WithColumnPadding(left, right int) Option {
	return MapColumns(func(c Column) Column {
		c.Padding = Padding{Left: left, Right: right}
		return c
	})
}

// With returns a copy of the table with opts applied. The copy shares
// cell content with t but adding rows or columns to one does not affect
// the other.
func (t *Table) With(opts ...Option) *Table {
	c := *t
	c.columns = append([]Column(nil), t.columns...)
	c.rows = t.rows[:len(t.rows):len(t.rows)]
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// AddColumn appends a column. Columns cannot be added once rows exist.
func (t *Table) AddColumn(c Column) error {
	if !c.Hint.validate() {
		return &HintError{Column: len(t.columns), Hint: c.Hint}
	}
	if len(t.rows) > 0 {
		return &ShapeError{Row: 0, Cells: len(t.rows[0]), Columns: len(t.columns) + 1}
	}
	t.columns = append(t.columns, c)
	return nil
}

// AddColumns appends a text-headed column for every header.
func (t *Table) AddColumns(headers ...string) error {
	for _, h := range headers {
		if err := t.AddColumn(NewColumn(h)); err != nil {
			return err
		}
	}
	return nil
}

// AddRow appends a row. It fails if the cell count differs from the
// column count.
func (t *Table) AddRow(cells ...measure.Measurable) error {
	if len(cells) != len(t.columns) {
		return &ShapeError{Row: len(t.rows), Cells: len(cells), Columns: len(t.columns)}
	}
	t.rows = append(t.rows, Row(cells))
	return nil
}

// AddTextRow appends a row of plain text cells.
func (t *Table) AddTextRow(cells ...string) error {
	return t.AddRow(TextRow(cells...)...)
}

// Columns returns the table's columns.
func (t *Table) Columns() []Column {
	return t.columns
}

// Rows returns the table's rows.
func (t *Table) Rows() []Row {
	return t.rows
}

// Box returns the border glyph set.
func (t *Table) Box() Box {
	return t.box
}

// ShowBorder reports whether edges and separators are drawn.
func (t *Table) ShowBorder() bool {
	return t.showBorder
}

// ShowHeader reports whether the header row is rendered.
func (t *Table) ShowHeader() bool {
	return t.showHeader
}

// ShowFooter reports whether the footer row is rendered.
func (t *Table) ShowFooter() bool {
	return t.showFooter
}

// Expand reports whether the table fills its width.
func (t *Table) Expand() bool {
	return t.expand
}

// Request returns the allocation request for rendering into maxWidth cells.
func (t *Table) Request(maxWidth int) Request {
	req := Request{
		MaxWidth:         maxWidth,
		Expand:           t.expand,
		PadRightLastCell: t.padRightLastCell,
		ShowBorder:       t.showBorder,
	}
	if t.hasWidth {
		w := t.width
		req.Width = &w
	}
	return req
}

// layoutColumns returns the columns as seen by the allocator, with hidden
// headers and footers removed.
func (t *Table) layoutColumns() []Column {
	if t.showHeader && t.showFooter {
		return t.columns
	}
	out := make([]Column, len(t.columns))
	for i, c := range t.columns {
		if !t.showHeader {
			c.Header = nil
		}
		if !t.showFooter {
			c.Footer = nil
		}
		out[i] = c
	}
	return out
}

// Widths computes the content width of every column for maxWidth cells.
func (t *Table) Widths(maxWidth int) ([]int, error) {
	return ComputeColumnWidths(t.layoutColumns(), t.rows, t.Request(maxWidth))
}

// extraWidth returns the cells used by borders and padding.
func (t *Table) extraWidth() int {
	paddings := make([]Padding, len(t.columns))
	for i, c := range t.columns {
		paddings[i] = c.Padding
	}
	return ComputeNonColumnWidth(len(t.columns), t.showBorder, paddings, t.padRightLastCell)
}

// Measure reports the table's width range: the column minimums and
// maximums summed, plus borders and padding.
func (t *Table) Measure(budget int) measure.Measurement {
	budget = max(budget, 0)
	if t.hasWidth {
		return measure.Exact(t.width).WithMaximum(budget)
	}

	extra := t.extraWidth()
	inner := max(budget-extra, 0)
	columns := t.layoutColumns()
	var lo, hi int
	for i := range columns {
		m := MeasureColumn(columns, t.rows, i, inner)
		lo = addCapped(lo, m.Min)
		hi = addCapped(hi, m.Max)
	}
	return measure.NewMeasurement(addCapped(lo, extra), addCapped(hi, extra)).WithMaximum(budget)
}

// Lines renders the table into width cells. A table that cannot be laid
// out renders as a single empty line.
func (t *Table) Lines(width int) []string {
	lines, err := t.Render(width)
	if err != nil || len(lines) == 0 {
		return []string{""}
	}
	return lines
}
