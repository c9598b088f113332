package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termtable/inspect"
	"termtable/log"
	"termtable/measure"
	"termtable/table"
	"termtable/ui/layout"
)

const (
	// keyUpDelay is how long a pressed key stays underlined in the menu.
	keyUpDelay = 100 * time.Millisecond
	// statusDelay is how long a status message replaces the key help.
	statusDelay = 2 * time.Second
)

type keyupMsg struct{}

type clearStatusMsg struct{ id int }

// copyMsg reports the outcome of copying the table to the clipboard.
type copyMsg struct {
	lines int
	err   error
}

// TableView is a Bubble Tea model that shows a table in a scrolling
// viewport. Columns are allocated again on every resize, so the table
// always fits the terminal width.
type TableView struct {
	base  *table.Table
	title string

	viewport viewport.Model
	menu     *Menu

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation

	expand bool
	border bool

	// lines is the last rendered table, margins included.
	lines []string
	ready bool

	statusID int
	copyFn   func(string) error
}

// NewTableView creates a viewer for t. The table's expand and border
// settings are the starting values of the viewer's toggles.
func NewTableView(t *table.Table, title string) *TableView {
	return &TableView{
		base:     t,
		title:    title,
		viewport: viewport.New(0, 0),
		menu:     NewMenu(),
		expand:   t.Expand(),
		border:   t.ShowBorder(),
		copyFn:   clipboard.WriteAll,
	}
}

// WithClipboard replaces the function used to write to the clipboard.
func (m *TableView) WithClipboard(fn func(string) error) *TableView {
	m.copyFn = fn
	return m
}

func (m *TableView) Init() tea.Cmd {
	return nil
}

func (m *TableView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case copyMsg:
		if msg.err != nil {
			log.ErrorLog.Errorf("copy table: %v", msg.err)
			return m, m.setStatus(StatusStyles.Error.Render("copy failed: " + msg.err.Error()))
		}
		return m, m.setStatus(StatusStyles.Success.Render(fmt.Sprintf("copied %d lines", msg.lines)))
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.menu.SetStatus("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.updateScroll()
	return m, cmd
}

func (m *TableView) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	log.InputTrace("key %q", msg.String())

	name, ok := GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	m.menu.Keydown(name)
	keyup := tea.Tick(keyUpDelay, func(time.Time) tea.Msg { return keyupMsg{} })

	switch name {
	case KeyQuit:
		return m, tea.Quit
	case KeyUp:
		m.viewport.LineUp(1)
	case KeyDown:
		m.viewport.LineDown(1)
	case KeyPageUp:
		m.viewport.ViewUp()
	case KeyPageDown:
		m.viewport.ViewDown()
	case KeyTop:
		m.viewport.GotoTop()
	case KeyBottom:
		m.viewport.GotoBottom()
	case KeyExpand:
		m.expand = !m.expand
		m.relayout()
	case KeyBorder:
		m.border = !m.border
		m.relayout()
	case KeyCopy:
		return m, tea.Batch(keyup, m.copyCmd())
	}
	m.updateScroll()
	return m, keyup
}

func (m *TableView) setStatus(msg string) tea.Cmd {
	m.statusID++
	id := m.statusID
	m.menu.SetStatus(msg)
	return tea.Tick(statusDelay, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

// current is the table as it is drawn at the current size: the base
// table with the viewer's toggles and the layout's degradation applied.
func (m *TableView) current() *table.Table {
	d := m.degradation
	return m.base.With(
		table.WithBorder(d.ShowBorder(m.border)),
		table.WithExpand(m.expand),
		table.WithShowHeader(m.base.ShowHeader() && !d.HideHeader),
		table.WithShowFooter(m.base.ShowFooter() && !d.HideFooter),
		table.MapColumns(func(c table.Column) table.Column {
			c.Padding.Left, c.Padding.Right = d.Padding(c.Padding.Left, c.Padding.Right)
			return c
		}),
	)
}

// relayout recomputes constraints and renders the table into the viewport.
func (m *TableView) relayout() {
	m.constraints = layout.ComputeConstraints(m.width, m.height)
	m.degradation = layout.ComputeDegradation(m.constraints)
	c := m.constraints

	m.viewport.Width = c.ViewportWidth
	m.viewport.Height = c.ViewportHeight
	m.menu.SetSize(c.TerminalWidth)

	lines, err := m.current().Render(c.TableWidth)
	if err != nil {
		log.ErrorLog.Errorf("render table: %v", err)
		m.menu.SetStatus(StatusStyles.Error.Render(err.Error()))
		lines = nil
	}
	if len(lines) == 0 && c.ShowMinWarning {
		lines = measure.NewText("terminal too small").Styled(StatusStyles.Warning).Truncate(c.ViewportWidth)
	}
	if c.Margin > 0 {
		margin := strings.Repeat(" ", c.Margin)
		for i, line := range lines {
			lines[i] = margin + line
		}
	}

	m.lines = lines
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.ready = true
	m.updateScroll()

	log.LayoutTrace("view: %dx%d mode=%s table width=%d lines=%d",
		c.TerminalWidth, c.TerminalHeight, c.Mode, c.TableWidth, len(lines))
	if inspect.IsEnabled() {
		if err := inspect.WriteSnapshot(m.Snapshot()); err != nil {
			log.WarningLog.Warnf("write inspect snapshot: %v", err)
		}
	}
}

func (m *TableView) updateScroll() {
	if m.viewport.TotalLineCount() <= m.viewport.Height {
		m.menu.SetScroll("")
		return
	}
	m.menu.SetScroll(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
}

// copyCmd copies the table, unstyled, at the current width.
func (m *TableView) copyCmd() tea.Cmd {
	plain := lipgloss.NewStyle()
	lines, err := m.current().With(
		table.WithHeaderStyle(plain),
		table.WithFooterStyle(plain),
		table.WithBorderStyle(plain),
	).Render(m.constraints.TableWidth)
	copyFn := m.copyFn
	return func() tea.Msg {
		if err != nil {
			return copyMsg{err: err}
		}
		return copyMsg{lines: len(lines), err: copyFn(strings.Join(lines, "\n"))}
	}
}

func (m *TableView) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	if !m.ready {
		return ""
	}

	var parts []string
	if m.constraints.TitleHeight > 0 {
		parts = append(parts, measure.NewText(m.title).Styled(titleStyle).Truncate(m.width)[0])
	}
	if m.constraints.ViewportHeight > 0 {
		parts = append(parts, m.viewport.View())
	}
	if m.constraints.StatusHeight > 0 {
		parts = append(parts, m.menu.String())
	}
	return strings.Join(parts, "\n")
}

// Lines returns the rendered table as last laid out, margins included.
func (m *TableView) Lines() []string {
	return m.lines
}

// Expanded reports whether the expand toggle is on.
func (m *TableView) Expanded() bool {
	return m.expand
}

// Bordered reports whether the border toggle is on. The layout may still
// hide the border on narrow terminals.
func (m *TableView) Bordered() bool {
	return m.border
}

// InspectNode describes the viewer and the table's allocation.
func (m *TableView) InspectNode() *inspect.Node {
	c := m.constraints
	root := inspect.NewNode("TableView").
		WithBounds(0, 0, c.TerminalWidth, c.TerminalHeight).
		WithState("mode", c.Mode.String()).
		WithState("scroll_offset", m.viewport.YOffset)

	root.AddChild(inspect.NewNode("Title").
		WithContent(m.title).
		WithBounds(0, 0, c.TerminalWidth, c.TitleHeight).
		WithVisible(c.TitleHeight > 0))

	tbl := m.current().Inspect(c.TableWidth)
	shift(tbl, c.Margin, c.TitleHeight)
	root.AddChild(tbl)

	root.AddChild(inspect.NewNode("Menu").
		WithBounds(0, c.TitleHeight+c.ViewportHeight, c.TerminalWidth, c.StatusHeight).
		WithVisible(c.StatusHeight > 0))
	return root
}

func shift(n *inspect.Node, dx, dy int) {
	n.Bounds.X += dx
	n.Bounds.Y += dy
	for _, child := range n.Children {
		shift(child, dx, dy)
	}
}

// Snapshot captures the viewer's layout for the inspect package.
func (m *TableView) Snapshot() *inspect.Snapshot {
	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithView(inspect.ViewInfo{
			Expand:       m.expand,
			ShowBorder:   m.border,
			ScrollOffset: m.viewport.YOffset,
			TotalLines:   len(m.lines),
			Rows:         len(m.base.Rows()),
			Columns:      len(m.base.Columns()),
		}).
		WithLayout(m.constraints, m.degradation).
		WithComponents(m.InspectNode())
}

// SnapshotAt lays t out as the viewer would in a width x height terminal
// and returns the resulting snapshot.
func SnapshotAt(t *table.Table, title string, width, height int) *inspect.Snapshot {
	v := NewTableView(t, title)
	v.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return v.Snapshot()
}
