// Package layout computes how the interactive table viewer divides the
// terminal between its title, status line and table viewport.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals (>= 140w x 40h).
	// Margins on both sides of the table.
	LayoutFull LayoutMode = iota

	// LayoutStandard is for medium terminals (>= 100w x 24h).
	LayoutStandard

	// LayoutCompact is for smaller terminals (>= 60w x 12h).
	// No margins.
	LayoutCompact

	// LayoutMinimal is below the compact thresholds. The table gets every
	// cell the terminal has.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode calculates the appropriate layout mode for the given dimensions.
// The more restrictive dimension wins.
func DetermineMode(width, height int) LayoutMode {
	return max(determineWidthMode(width), determineHeightMode(height))
}

func determineWidthMode(width int) LayoutMode {
	switch {
	case width >= FullWidth:
		return LayoutFull
	case width >= StandardWidth:
		return LayoutStandard
	case width >= CompactWidth:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

func determineHeightMode(height int) LayoutMode {
	switch {
	case height >= FullHeight:
		return LayoutFull
	case height >= StandardHeight:
		return LayoutStandard
	case height >= CompactHeight:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}
