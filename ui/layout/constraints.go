package layout

// Constraints holds the computed dimensions of the viewer's components.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	TitleHeight  int
	StatusHeight int

	// Viewport is the scrolling area the table is drawn into.
	ViewportWidth  int
	ViewportHeight int

	// Margin is the blank column count on each side of the table.
	Margin int

	// TableWidth is the max width handed to the column allocator.
	TableWidth int

	// ShowMinWarning is set when the terminal is below MinWidth or MinHeight.
	ShowMinWarning bool
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	width, height = max(width, 0), max(height, 0)
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
		ShowMinWarning: width < MinWidth || height < MinHeight,
	}

	// Fixed lines first, the viewport takes what is left.
	if height >= CompactHeight {
		c.TitleHeight = TitleHeight
	}
	if height >= MinHeight {
		c.StatusHeight = StatusHeight
	}
	c.ViewportHeight = max(height-c.TitleHeight-c.StatusHeight, 0)
	c.ViewportWidth = width

	c.Margin = computeMargin(c.Mode)
	c.TableWidth = max(width-2*c.Margin, 0)

	return c
}

func computeMargin(mode LayoutMode) int {
	switch mode {
	case LayoutFull:
		return MarginFull
	case LayoutStandard:
		return MarginStandard
	default:
		return 0
	}
}

func clamp(value, minVal, maxVal int) int {
	return max(minVal, min(value, maxVal))
}
