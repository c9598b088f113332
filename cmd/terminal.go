package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"termtable/config"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// TerminalWidth returns the width of the terminal on fd, or DefaultWidth
// when fd is not a terminal.
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// ResolveWidth picks the render width: the flag when set, otherwise the
// width of the terminal on f.
func ResolveWidth(flag int, f *os.File) int {
	if flag > 0 {
		return flag
	}
	return TerminalWidth(int(f.Fd()))
}

// ColorProfile maps a color mode to a termenv profile. Auto detects the
// profile of w.
func ColorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	switch mode {
	case "", config.ColorAuto:
		return termenv.NewOutput(w).EnvColorProfile(), nil
	case config.ColorAlways:
		return termenv.TrueColor, nil
	case config.ColorNever:
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("unknown color mode %q, expected auto, always or never", mode)
	}
}

// ApplyColor sets lipgloss's color profile for the given mode.
func ApplyColor(mode string, w io.Writer) error {
	p, err := ColorProfile(mode, w)
	if err != nil {
		return err
	}
	lipgloss.SetColorProfile(p)
	return nil
}
