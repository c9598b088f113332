package inspect

import (
	"fmt"
	"strings"
	"time"

	"termtable/ui/layout"
)

// SnapshotVersion is the snapshot format version.
const SnapshotVersion = "1.0.0"

// Snapshot is the viewer's complete layout state at a point in time.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	Terminal TerminalInfo `json:"terminal"`

	View ViewInfo `json:"view"`

	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints lists the degradation thresholds and whether each fired.
	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ViewInfo holds the viewer's toggles and scroll state.
type ViewInfo struct {
	Expand       bool `json:"expand"`
	ShowBorder   bool `json:"show_border"`
	ScrollOffset int  `json:"scroll_offset"`
	TotalLines   int  `json:"total_lines"`
	Rows         int  `json:"rows"`
	Columns      int  `json:"columns"`
}

// LayoutInfo contains the computed constraints.
type LayoutInfo struct {
	Mode           string          `json:"mode"`
	ViewportWidth  int             `json:"viewport_width"`
	ViewportHeight int             `json:"viewport_height"`
	Margin         int             `json:"margin"`
	TableWidth     int             `json:"table_width"`
	Degradation    DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active degradation flags.
type DegradationInfo struct {
	HideFooter     bool `json:"hide_footer"`
	HideHeader     bool `json:"hide_header"`
	TrimPadding    bool `json:"trim_padding"`
	HideBorder     bool `json:"hide_border"`
	HidePadding    bool `json:"hide_padding"`
	ShowMinWarning bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`

	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   SnapshotVersion,
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithView sets the viewer state and returns the snapshot for chaining.
func (s *Snapshot) WithView(v ViewInfo) *Snapshot {
	s.View = v
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:           c.Mode.String(),
		ViewportWidth:  c.ViewportWidth,
		ViewportHeight: c.ViewportHeight,
		Margin:         c.Margin,
		TableWidth:     c.TableWidth,
		Degradation: DegradationInfo{
			HideFooter:     d.HideFooter,
			HideHeader:     d.HideHeader,
			TrimPadding:    d.TrimPadding,
			HideBorder:     d.HideBorder,
			HidePadding:    d.HidePadding,
			ShowMinWarning: d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_footer", Threshold: layout.FooterHideHeight, Active: d.HideFooter, Dimension: "height"},
		{Name: "hide_header", Threshold: layout.HeaderHideHeight, Active: d.HideHeader, Dimension: "height"},
		{Name: "trim_padding", Threshold: layout.PaddingTrimWidth, Active: d.TrimPadding, Dimension: "width"},
		{Name: "hide_border", Threshold: layout.BorderHideWidth, Active: d.HideBorder, Dimension: "width"},
		{Name: "hide_padding", Threshold: layout.PaddingHideWidth, Active: d.HidePadding, Dimension: "width"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== Layout Snapshot ===\n")
	fmt.Fprintf(&b, "Time: %s\n", s.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height)
	fmt.Fprintf(&b, "Table: %d rows x %d columns, expand=%v border=%v\n",
		s.View.Rows, s.View.Columns, s.View.Expand, s.View.ShowBorder)

	b.WriteString("\n--- Layout ---\n")
	fmt.Fprintf(&b, "Mode: %s\n", s.Layout.Mode)
	fmt.Fprintf(&b, "Viewport: %dx%d\n", s.Layout.ViewportWidth, s.Layout.ViewportHeight)
	fmt.Fprintf(&b, "Table width: %d (margin %d)\n", s.Layout.TableWidth, s.Layout.Margin)

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		fmt.Fprintf(&b, "  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension)
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(node.Type)
	if node.ID != "" {
		fmt.Fprintf(b, " [%s]", node.ID)
	}
	fmt.Fprintf(b, " (%dx%d)", node.Bounds.Width, node.Bounds.Height)
	if node.Content != "" {
		fmt.Fprintf(b, " %q", node.Content)
	}
	if !node.Visible {
		b.WriteString(" HIDDEN")
	}
	if node.Truncated != nil {
		fmt.Fprintf(b, " TRUNCATED(%d->%d)", node.Truncated.NaturalWidth, node.Truncated.DisplayWidth)
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
