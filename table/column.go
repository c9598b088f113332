package table

import (
	"fmt"

	"termtable/measure"
)

// HintKind says how a column's width is decided.
type HintKind int

const (
	// HintAuto sizes the column from its content.
	HintAuto HintKind = iota

	// HintFixed gives the column an exact content width.
	HintFixed

	// HintStar shares the width left over by other columns in proportion
	// to a weight.
	HintStar
)

// String returns the string representation of the hint kind.
func (k HintKind) String() string {
	switch k {
	case HintAuto:
		return "auto"
	case HintFixed:
		return "fixed"
	case HintStar:
		return "star"
	default:
		return "unknown"
	}
}

// WidthHint is a column's sizing preference. The zero value is Auto.
type WidthHint struct {
	Kind HintKind
	// Value is the width for HintFixed and the weight for HintStar.
	Value int
}

// Auto sizes a column from its content.
func Auto() WidthHint { return WidthHint{Kind: HintAuto} }

// Fixed sizes a column to exactly w cells of content.
func Fixed(w int) WidthHint { return WidthHint{Kind: HintFixed, Value: w} }

// Star sizes a column by weight relative to the other star columns.
func Star(weight int) WidthHint { return WidthHint{Kind: HintStar, Value: weight} }

func (h WidthHint) String() string {
	switch h.Kind {
	case HintFixed, HintStar:
		return fmt.Sprintf("%s(%d)", h.Kind, h.Value)
	default:
		return h.Kind.String()
	}
}

func (h WidthHint) validate() bool {
	return h.Kind == HintAuto || h.Value >= 0
}

// Padding is the blank space on each side of a cell's content.
type Padding struct {
	Left  int
	Right int
}

// Width returns the total horizontal padding. Negative sides count as zero.
func (p Padding) Width() int {
	return max(p.Left, 0) + max(p.Right, 0)
}

// Align is the horizontal placement of a cell line within its column.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column describes one table column. The zero value is an auto-sized,
// wrapping column with no header and no padding.
type Column struct {
	// Header is measured together with the cells. Nil means no header.
	Header measure.Measurable

	// Footer is optional; when nil the header's measurement stands in.
	Footer measure.Measurable

	Hint    WidthHint
	NoWrap  bool
	Padding Padding
	Align   Align
}

// Wrappable reports whether the column may be narrowed below its content
// width by wrapping.
func (c Column) Wrappable() bool {
	return !c.NoWrap
}

// DefaultPadding is the padding given to columns created by NewColumn.
var DefaultPadding = Padding{Left: 1, Right: 1}

// ColumnOption configures a column created by NewColumn.
type ColumnOption func(*Column)

// NewColumn creates a column with a text header and DefaultPadding.
func NewColumn(header string, opts ...ColumnOption) Column {
	c := Column{
		Header:  measure.NewText(header),
		Padding: DefaultPadding,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithHint sets the column's width hint.
func WithHint(h WidthHint) ColumnOption {
	return func(c *Column) { c.Hint = h }
}

// NoWrap keeps cell content on one line, truncating it if the column is
// too narrow.
func NoWrap() ColumnOption {
	return func(c *Column) { c.NoWrap = true }
}

// WithPadding sets the column's left and right padding.
func WithPadding(left, right int) ColumnOption {
	return func(c *Column) { c.Padding = Padding{Left: left, Right: right} }
}

// WithFooter sets a text footer.
func WithFooter(footer string) ColumnOption {
	return func(c *Column) { c.Footer = measure.NewText(footer) }
}

// WithAlign sets the column alignment.
func WithAlign(a Align) ColumnOption {
	return func(c *Column) { c.Align = a }
}

// Row is one line of cells, index-aligned with the table's columns.
// A nil cell renders empty and is skipped during measurement.
type Row []measure.Measurable

// TextRow builds a Row of plain text cells.
func TextRow(cells ...string) Row {
	row := make(Row, len(cells))
	for i, cell := range cells {
		row[i] = measure.NewText(cell)
	}
	return row
}
