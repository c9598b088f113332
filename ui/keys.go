package ui

import "github.com/charmbracelet/bubbles/key"

// KeyName identifies a viewer action.
type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyTop
	KeyBottom
	KeyExpand
	KeyBorder
	KeyCopy
	KeyQuit
)

// GlobalKeyStringsMap maps key presses to actions.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"pgup":   KeyPageUp,
	"pgdown": KeyPageDown,
	" ":      KeyPageDown,
	"home":   KeyTop,
	"g":      KeyTop,
	"end":    KeyBottom,
	"G":      KeyBottom,
	"e":      KeyExpand,
	"b":      KeyBorder,
	"y":      KeyCopy,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings holds the help text shown for every action.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyPageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	KeyPageDown: key.NewBinding(
		key.WithKeys("pgdown", " "),
		key.WithHelp("pgdn", "page down"),
	),
	KeyTop: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	KeyBottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	KeyExpand: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "expand"),
	),
	KeyBorder: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "border"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
