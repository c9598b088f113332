package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the viewer lays a table out in.
	MinWidth = 20

	// CompactWidth is the threshold for compact mode.
	CompactWidth = 60

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 100

	// FullWidth is the threshold for full layout with margins.
	FullWidth = 140
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal the viewer lays a table out in.
	MinHeight = 5

	// CompactHeight is the threshold for compact mode.
	CompactHeight = 12

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 24

	// FullHeight is the threshold for full layout.
	FullHeight = 40
)

// Chrome around the table viewport.
const (
	// TitleHeight is the title line above the viewport.
	TitleHeight = 1

	// StatusHeight is the key help and scroll position line below it.
	StatusHeight = 1

	// MarginStandard is the horizontal margin on each side in standard mode.
	MarginStandard = 1

	// MarginFull is the horizontal margin on each side in full mode.
	MarginFull = 2
)
