package table

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Box is a named set of border glyphs. Every glyph must be one cell wide.
type Box struct {
	Name   string
	Border lipgloss.Border
}

var (
	NormalBox  = Box{Name: "normal", Border: lipgloss.NormalBorder()}
	RoundedBox = Box{Name: "rounded", Border: lipgloss.RoundedBorder()}
	ThickBox   = Box{Name: "thick", Border: lipgloss.ThickBorder()}
	DoubleBox  = Box{Name: "double", Border: lipgloss.DoubleBorder()}
	HiddenBox  = Box{Name: "hidden", Border: lipgloss.HiddenBorder()}
	ASCIIBox   = Box{Name: "ascii", Border: lipgloss.Border{
		Top:          "-",
		Bottom:       "-",
		Left:         "|",
		Right:        "|",
		TopLeft:      "+",
		TopRight:     "+",
		BottomLeft:   "+",
		BottomRight:  "+",
		MiddleLeft:   "+",
		MiddleRight:  "+",
		Middle:       "+",
		MiddleTop:    "+",
		MiddleBottom: "+",
	}}
)

var boxes = map[string]Box{
	NormalBox.Name:  NormalBox,
	RoundedBox.Name: RoundedBox,
	ThickBox.Name:   ThickBox,
	DoubleBox.Name:  DoubleBox,
	HiddenBox.Name:  HiddenBox,
	ASCIIBox.Name:   ASCIIBox,
}

// BoxByName looks up one of the predefined boxes.
func BoxByName(name string) (Box, bool) {
	b, ok := boxes[name]
	return b, ok
}

// BoxNames returns the names of the predefined boxes in sorted order.
func BoxNames() []string {
	names := make([]string, 0, len(boxes))
	for name := range boxes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
