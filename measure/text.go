package measure

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Unbounded is a budget large enough that no content is limited by it.
const Unbounded = 1 << 20

// Ellipsis is appended to content cut short by Truncate.
const Ellipsis = "…"

// Renderable content can lay itself out as lines no wider than width cells.
type Renderable interface {
	Measurable
	Lines(width int) []string
}

// StringWidth returns the number of terminal cells s occupies, ignoring
// ANSI escape sequences.
func StringWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// Text is a block of plain text, optionally styled when rendered.
// Escape sequences embedded in the content do not count towards its width.
type Text struct {
	content string
	style   lipgloss.Style
	styled  bool
}

// NewText creates a Text from s. Newlines in s start new lines.
func NewText(s string) Text {
	return Text{content: strings.ReplaceAll(s, "\r\n", "\n")}
}

// Styled returns a copy of t rendered with style.
func (t Text) Styled(style lipgloss.Style) Text {
	t.style = style
	t.styled = true
	return t
}

// String returns the unstyled content.
func (t Text) String() string {
	return t.content
}

// Measure reports the widest word as Min and the widest line as Max,
// with Max limited to budget.
func (t Text) Measure(budget int) Measurement {
	var widestWord, widestLine int
	for _, line := range strings.Split(t.content, "\n") {
		widestLine = max(widestLine, StringWidth(line))
		for _, word := range strings.Fields(line) {
			widestWord = max(widestWord, wordWidth(word))
		}
	}
	return NewMeasurement(widestWord, widestLine).WithMaximum(max(budget, 0))
}

// wordWidth measures a single word. Plain words skip the escape scanner.
func wordWidth(word string) int {
	if strings.IndexByte(word, '\x1b') >= 0 {
		return StringWidth(word)
	}
	return runewidth.StringWidth(word)
}

// Lines word-wraps the text to width, breaking words that are wider than
// width on their own.
func (t Text) Lines(width int) []string {
	if width <= 0 {
		return []string{""}
	}
	wrapped := wrap.String(wordwrap.String(t.content, width), width)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = t.render(strings.TrimRight(line, " "))
	}
	return lines
}

// Truncate returns the text lines cut to width, marking cut lines with an
// ellipsis.
func (t Text) Truncate(width int) []string {
	lines := strings.Split(t.content, "\n")
	for i, line := range lines {
		switch {
		case width <= 0:
			line = ""
		case StringWidth(line) > width:
			line = truncate.StringWithTail(line, uint(width), Ellipsis)
		}
		lines[i] = t.render(line)
	}
	return lines
}

func (t Text) render(line string) string {
	if !t.styled || line == "" {
		return line
	}
	return t.style.Render(line)
}
