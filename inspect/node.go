package inspect

// Node is one element of an inspection tree, such as a table or one of
// its columns.
type Node struct {
	// Type is the element kind (e.g., "TableView", "Table", "Column").
	Type string `json:"type"`

	// ID is an optional identifier, unique among siblings.
	ID string `json:"id,omitempty"`

	// Bounds is the element's position and size in terminal cells.
	Bounds Bounds `json:"bounds"`

	// Visible is false for elements that take no cells, such as a
	// column allocated zero width.
	Visible bool `json:"visible"`

	// State holds element-specific values (hints, measurements, flags).
	State map[string]any `json:"state,omitempty"`

	Styles *StyleInfo `json:"styles,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Content is the element's text, for columns the plain header.
	Content string `json:"content,omitempty"`

	// Truncated is set when content is cut to fit its allocation.
	Truncated *TruncationInfo `json:"truncated,omitempty"`
}

// Bounds represents element position and dimensions.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyleInfo describes the lipgloss style applied to an element.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	Padding     []int  `json:"padding,omitempty"` // [top, right, bottom, left]

	// AppliedStyles names the styles that were merged into this one.
	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// TruncationInfo records content that did not fit its allocation.
type TruncationInfo struct {
	// NaturalWidth is the width the content asked for.
	NaturalWidth int `json:"natural_width"`

	// DisplayWidth is the width it was given.
	DisplayWidth int `json:"display_width"`

	// Ellipsis is set when lines were cut and marked instead of wrapped.
	Ellipsis bool `json:"ellipsis"`
}

// NewNode creates a visible Node with the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]any),
	}
}

// WithID sets the node ID and returns the node for chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithBounds sets the node bounds and returns the node for chaining.
func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

// WithVisible sets whether the node is drawn.
func (n *Node) WithVisible(visible bool) *Node {
	n.Visible = visible
	return n
}

// WithState adds a state key-value pair and returns the node for chaining.
func (n *Node) WithState(key string, value any) *Node {
	if n.State == nil {
		n.State = make(map[string]any)
	}
	n.State[key] = value
	return n
}

// WithStyles sets the node styles and returns the node for chaining.
func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// AddChild adds a child node and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// WithContent sets the node content and returns the node for chaining.
func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// WithTruncation records that content of natural width was shown in
// displayed cells.
func (n *Node) WithTruncation(natural, displayed int, hasEllipsis bool) *Node {
	n.Truncated = &TruncationInfo{
		NaturalWidth: natural,
		DisplayWidth: displayed,
		Ellipsis:     hasEllipsis,
	}
	return n
}

// Find returns the first node in the tree, depth first, with the given
// type and ID. An empty id matches any node of that type.
func (n *Node) Find(nodeType, id string) *Node {
	if n == nil {
		return nil
	}
	if n.Type == nodeType && (id == "" || n.ID == id) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(nodeType, id); found != nil {
			return found
		}
	}
	return nil
}
