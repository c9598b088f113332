package layout

// Degradation holds flags for table chrome that is dropped on small
// terminals. Features are listed in order of degradation priority (first
// to drop).
type Degradation struct {
	HideFooter  bool // Footer row (height < 10)
	HideHeader  bool // Header row (height < 6)
	TrimPadding bool // At most one cell of padding per side (width < 40)
	HideBorder  bool // Edges and separators (width < 30)
	HidePadding bool // Cell padding (width < 20)

	ShowMinWarning bool // Terminal too small warning (below MinWidth/MinHeight)
}

// Threshold constants for degradation
const (
	FooterHideHeight = 10
	HeaderHideHeight = 6
	PaddingTrimWidth = 40
	BorderHideWidth  = 30
	PaddingHideWidth = 20
)

// ComputeDegradation calculates which table features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideFooter:     c.TerminalHeight < FooterHideHeight,
		HideHeader:     c.TerminalHeight < HeaderHideHeight,
		TrimPadding:    c.TableWidth < PaddingTrimWidth,
		HideBorder:     c.TableWidth < BorderHideWidth,
		HidePadding:    c.TableWidth < PaddingHideWidth,
		ShowMinWarning: c.ShowMinWarning,
	}
}

// ShowBorder reports whether a table configured with configured borders
// should draw them.
func (d Degradation) ShowBorder(configured bool) bool {
	return configured && !d.HideBorder
}

// Padding trims configured cell padding to at most one cell per side, or
// none once padding is hidden.
func (d Degradation) Padding(left, right int) (int, int) {
	if d.HidePadding {
		return 0, 0
	}
	if d.TrimPadding {
		return clamp(left, 0, 1), clamp(right, 0, 1)
	}
	return max(left, 0), max(right, 0)
}

// Any reports whether any feature is degraded.
func (d Degradation) Any() bool {
	return d.HideFooter || d.HideHeader || d.TrimPadding || d.HideBorder || d.HidePadding
}
