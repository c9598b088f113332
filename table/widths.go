// Package table lays out rows of content into columns that fit a terminal.
//
// ComputeColumnWidths is the allocation core. It is a pure function of its
// arguments: it measures every column, hands star columns their share of
// the space left over, collapses wrappable columns when the total is too
// wide, reduces all columns evenly as a last resort and optionally expands
// the result to fill the budget.
package table

import (
	"math"

	"termtable/measure"
	"termtable/ratio"
)

// Request holds the per-render allocation parameters.
type Request struct {
	// MaxWidth is the number of cells available for the whole table.
	MaxWidth int

	// Width is an explicit table width. It can only make the table
	// narrower than MaxWidth.
	Width *int

	// Expand grows columns so the table fills its width.
	Expand bool

	// PadRightLastCell keeps the right padding of the last column.
	PadRightLastCell bool

	// ShowBorder accounts for the outer edges and column separators.
	ShowBorder bool
}

// ComputeNonColumnWidth returns the cells taken by borders, separators and
// padding for a table with columnCount columns.
func ComputeNonColumnWidth(columnCount int, showBorder bool, paddings []Padding, padRightLastCell bool) int {
	if columnCount <= 0 {
		return 0
	}

	width := 0
	if showBorder {
		width += 2 + columnCount - 1
	}
	for _, p := range paddings {
		width += p.Width()
	}
	if !padRightLastCell && len(paddings) > 0 {
		width -= max(paddings[len(paddings)-1].Right, 0)
	}
	return width
}

// CellBudget returns the cells left for column content once borders and
// padding are taken out. It is negative when the chrome alone does not fit.
func CellBudget(columns []Column, req Request) int {
	width := req.MaxWidth
	if req.Width != nil {
		width = min(*req.Width, width)
	}
	paddings := make([]Padding, len(columns))
	for i, c := range columns {
		paddings[i] = c.Padding
	}
	return width - ComputeNonColumnWidth(len(columns), req.ShowBorder, paddings, req.PadRightLastCell)
}

// ComputeColumnWidths returns the content width of every column.
//
// The widths never sum to more than the cell budget, which itself never
// exceeds req.MaxWidth. A budget that cannot hold the borders and padding
// yields all zeros. The only errors are a row whose length differs from
// the column count and a negative width hint.
func ComputeColumnWidths(columns []Column, rows []Row, req Request) ([]int, error) {
	if err := validate(columns, rows); err != nil {
		return nil, err
	}

	widths := make([]int, len(columns))
	budget := CellBudget(columns, req)
	if budget < 0 {
		return widths, nil
	}
	// No width or budget exceeds ceiling, so sums of widths fit in an int.
	ceiling := math.MaxInt / (2 * (len(columns) + 1))
	budget = min(budget, ceiling)

	fixedTotal := 0
	weights := make([]int, len(columns))
	for i, c := range columns {
		if c.Hint.Kind == HintStar {
			weights[i] = c.Hint.Value
			continue
		}
		widths[i] = min(measureColumn(c, i, rows, budget).Max, ceiling)
		fixedTotal += widths[i]
	}

	if weights, weightTotal := ratio.Fit(weights); weightTotal > 0 {
		remaining := max(budget-fixedTotal, 0)
		for i, c := range columns {
			if c.Hint.Kind == HintStar {
				widths[i] = roundShare(remaining, weights[i], weightTotal)
			}
		}
	}

	if total := sum(widths); total > budget {
		wrappable := make([]bool, len(columns))
		for i, c := range columns {
			wrappable[i] = c.Wrappable()
		}
		widths = collapseWidths(widths, wrappable, budget)

		// Last resort: take what is still over from every column evenly.
		if excess := sum(widths) - budget; excess > 0 {
			widths = ratio.Reduce(excess, repeat(1, len(widths)), widths, widths)
		}
	}

	if total := sum(widths); req.Expand && total < budget {
		pad := ratio.Distribute(budget-total, widths, nil)
		for i := range widths {
			widths[i] += pad[i]
		}
	}

	return widths, nil
}

// MeasureColumn returns the width range of column index across its header,
// footer and cells at the given budget.
func MeasureColumn(columns []Column, rows []Row, index, budget int) measure.Measurement {
	return measureColumn(columns[index], index, rows, budget)
}

func measureColumn(c Column, index int, rows []Row, budget int) measure.Measurement {
	if c.Hint.Kind == HintFixed {
		return measure.Exact(c.Hint.Value)
	}

	var ms []measure.Measurement
	switch {
	case c.Header != nil:
		header := c.Header.Measure(budget)
		footer := header
		if c.Footer != nil {
			footer = c.Footer.Measure(budget)
		}
		ms = append(ms, header, footer)
	case c.Footer != nil:
		ms = append(ms, c.Footer.Measure(budget))
	}
	for _, row := range rows {
		if cell := row[index]; cell != nil {
			ms = append(ms, cell.Measure(budget))
		}
	}

	m, ok := measure.Combine(ms...)
	if !ok {
		return measure.NewMeasurement(c.Padding.Width(), budget)
	}
	return m
}

// collapseWidths narrows the widest wrappable columns towards the next
// widest until the total fits the budget or no column can give more.
func collapseWidths(widths []int, wrappable []bool, budget int) []int {
	excess := sum(widths) - budget
	for excess > 0 {
		maxColumn := -1
		for i, w := range widths {
			if wrappable[i] && w > maxColumn {
				maxColumn = w
			}
		}
		if maxColumn < 0 {
			break
		}

		// The next widest never counts as less than one cell.
		secondMaxColumn := 1
		for i, w := range widths {
			if wrappable[i] && w != maxColumn && w > secondMaxColumn {
				secondMaxColumn = w
			}
		}

		columnDifference := maxColumn - secondMaxColumn
		if columnDifference <= 0 {
			break
		}

		ratios := make([]int, len(widths))
		for i, w := range widths {
			if wrappable[i] && w == maxColumn {
				ratios[i] = 1
			}
		}

		limits := repeat(min(excess, columnDifference), len(widths))
		widths = ratio.Reduce(excess, ratios, limits, widths)
		excess = sum(widths) - budget
	}
	return widths
}

// roundShare returns amount*weight/total rounded half away from zero.
func roundShare(amount, weight, total int) int {
	q, r := ratio.MulDiv(amount, weight, total)
	if r >= total-r {
		q++
	}
	return q
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// addCapped adds two non-negative ints, saturating at math.MaxInt.
func addCapped(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
