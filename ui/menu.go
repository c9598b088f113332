package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"termtable/measure"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

// Option groups, drawn left to right with a vertical separator between.
var (
	toggleGroup   = []KeyName{KeyExpand, KeyBorder}
	actionGroup   = []KeyName{KeyCopy}
	systemGroup   = []KeyName{KeyUp, KeyDown, KeyQuit}
	compactGroups = [][]KeyName{{KeyQuit}}
	defaultGroups = [][]KeyName{toggleGroup, actionGroup, systemGroup}
)

// menuCompactWidth is the width below which only the quit key is listed.
const menuCompactWidth = 50

// Menu is the one-line key help under the table. A status message, when
// set, replaces the key help on the left.
type Menu struct {
	width  int
	status string
	scroll string

	// keyDown is the key which is pressed. The default is -1.
	keyDown KeyName
}

func NewMenu() *Menu {
	return &Menu{keyDown: -1}
}

func (m *Menu) Keydown(name KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetStatus shows msg instead of the key help until it is cleared with "".
func (m *Menu) SetStatus(msg string) {
	m.status = msg
}

// SetScroll sets the scroll position indicator shown at the right edge.
func (m *Menu) SetScroll(s string) {
	m.scroll = s
}

// SetSize sets the width the menu is drawn into.
func (m *Menu) SetSize(width int) {
	m.width = width
}

func (m *Menu) groups() [][]KeyName {
	if m.width < menuCompactWidth {
		return compactGroups
	}
	return defaultGroups
}

func (m *Menu) help() string {
	var s strings.Builder
	groups := m.groups()
	for g, group := range groups {
		for i, k := range group {
			binding := GlobalkeyBindings[k]

			var (
				localKeyStyle  = keyStyle
				localDescStyle = descStyle
			)
			if g == 1 && len(groups) > 1 {
				localKeyStyle, localDescStyle = actionGroupStyle, actionGroupStyle
			}
			if m.keyDown == k {
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if g != len(groups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}
	return s.String()
}

func (m *Menu) String() string {
	if m.width <= 0 {
		return ""
	}

	left := m.status
	if left == "" {
		left = m.help()
	}
	right := m.scroll
	if right != "" {
		right = " " + descStyle.Render(right)
	}

	// The scroll indicator is dropped before the help is cut.
	if measure.StringWidth(left)+measure.StringWidth(right) > m.width {
		right = ""
	}
	if measure.StringWidth(left) > m.width {
		left = truncate.StringWithTail(left, uint(m.width), measure.Ellipsis)
	}

	gap := max(m.width-measure.StringWidth(left)-measure.StringWidth(right), 0)
	return left + strings.Repeat(" ", gap) + right
}
