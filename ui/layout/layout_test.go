package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMode(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   LayoutMode
	}{
		{
			name:   "full mode - large terminal",
			width:  140,
			height: 40,
			want:   LayoutFull,
		},
		{
			name:   "standard mode - both at standard thresholds",
			width:  100,
			height: 24,
			want:   LayoutStandard,
		},
		{
			name:   "wide but short",
			width:  200,
			height: 30,
			want:   LayoutStandard, // Uses most restrictive mode (height-based)
		},
		{
			name:   "tall but narrow",
			width:  80,
			height: 60,
			want:   LayoutCompact, // Uses most restrictive mode (width-based)
		},
		{
			name:   "exact compact thresholds",
			width:  60,
			height: 12,
			want:   LayoutCompact,
		},
		{
			name:   "minimal mode - below compact width",
			width:  59,
			height: 30,
			want:   LayoutMinimal,
		},
		{
			name:   "minimal mode - below compact height",
			width:  200,
			height: 11,
			want:   LayoutMinimal,
		},
		{
			name:   "zero size",
			want:   LayoutMinimal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineMode(tt.width, tt.height)
			assert.Equal(t, tt.want, got, "DetermineMode(%d, %d)", tt.width, tt.height)
		})
	}
}

func TestLayoutModeString(t *testing.T) {
	assert.Equal(t, "full", LayoutFull.String())
	assert.Equal(t, "standard", LayoutStandard.String())
	assert.Equal(t, "compact", LayoutCompact.String())
	assert.Equal(t, "minimal", LayoutMinimal.String())
	assert.Equal(t, "unknown", LayoutMode(42).String())
}

func TestComputeConstraints(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   Constraints
	}{
		{
			name:   "common 80x24 terminal",
			width:  80,
			height: 24,
			want: Constraints{
				TerminalWidth: 80, TerminalHeight: 24, Mode: LayoutCompact,
				TitleHeight: 1, StatusHeight: 1,
				ViewportWidth: 80, ViewportHeight: 22,
				TableWidth: 80,
			},
		},
		{
			name:   "standard terminal gets a margin",
			width:  120,
			height: 30,
			want: Constraints{
				TerminalWidth: 120, TerminalHeight: 30, Mode: LayoutStandard,
				TitleHeight: 1, StatusHeight: 1,
				ViewportWidth: 120, ViewportHeight: 28,
				Margin: 1, TableWidth: 118,
			},
		},
		{
			name:   "full terminal",
			width:  150,
			height: 45,
			want: Constraints{
				TerminalWidth: 150, TerminalHeight: 45, Mode: LayoutFull,
				TitleHeight: 1, StatusHeight: 1,
				ViewportWidth: 150, ViewportHeight: 43,
				Margin: 2, TableWidth: 146,
			},
		},
		{
			name:   "short terminal drops the title",
			width:  30,
			height: 8,
			want: Constraints{
				TerminalWidth: 30, TerminalHeight: 8, Mode: LayoutMinimal,
				StatusHeight:  1,
				ViewportWidth: 30, ViewportHeight: 7,
				TableWidth: 30,
			},
		},
		{
			name:   "tiny terminal",
			width:  10,
			height: 3,
			want: Constraints{
				TerminalWidth: 10, TerminalHeight: 3, Mode: LayoutMinimal,
				ViewportWidth: 10, ViewportHeight: 3,
				TableWidth: 10, ShowMinWarning: true,
			},
		},
		{
			name:   "negative dimensions",
			width:  -5,
			height: -1,
			want:   Constraints{Mode: LayoutMinimal, ShowMinWarning: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeConstraints(tt.width, tt.height)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestConstraintsFitTerminal(t *testing.T) {
	for width := 0; width <= 200; width += 7 {
		for height := 0; height <= 60; height += 3 {
			c := ComputeConstraints(width, height)
			assert.LessOrEqual(t, c.TitleHeight+c.ViewportHeight+c.StatusHeight, height, "%dx%d", width, height)
			assert.LessOrEqual(t, c.TableWidth+2*c.Margin, width, "%dx%d", width, height)
			assert.GreaterOrEqual(t, c.TableWidth, 0)
		}
	}
}

func TestComputeDegradation(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   Degradation
	}{
		{
			name:   "nothing degraded at 80x24",
			width:  80,
			height: 24,
			want:   Degradation{},
		},
		{
			name:   "short and narrow",
			width:  35,
			height: 8,
			want:   Degradation{HideFooter: true, TrimPadding: true},
		},
		{
			name:   "border dropped",
			width:  25,
			height: 5,
			want:   Degradation{HideFooter: true, HideHeader: true, TrimPadding: true, HideBorder: true},
		},
		{
			name:   "everything dropped",
			width:  15,
			height: 4,
			want: Degradation{
				HideFooter: true, HideHeader: true,
				TrimPadding: true, HideBorder: true, HidePadding: true,
				ShowMinWarning: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeDegradation(ComputeConstraints(tt.width, tt.height))
			assert.Equal(t, tt.want, d)
			assert.Equal(t, tt.want != Degradation{}, d.Any())
		})
	}
}

func TestDegradationUsesTableWidth(t *testing.T) {
	// 140 wide is full mode; the margins still leave plenty of room.
	d := ComputeDegradation(ComputeConstraints(140, 40))
	assert.False(t, d.Any())
}

func TestDegradationPadding(t *testing.T) {
	tests := []struct {
		name        string
		d           Degradation
		left, right int
		wantL       int
		wantR       int
	}{
		{"untouched", Degradation{}, 2, 3, 2, 3},
		{"negative clamps", Degradation{}, -1, 2, 0, 2},
		{"trimmed", Degradation{TrimPadding: true}, 2, 3, 1, 1},
		{"trim keeps zero", Degradation{TrimPadding: true}, 0, 1, 0, 1},
		{"hidden", Degradation{TrimPadding: true, HidePadding: true}, 2, 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := tt.d.Padding(tt.left, tt.right)
			assert.Equal(t, tt.wantL, l)
			assert.Equal(t, tt.wantR, r)
		})
	}
}

func TestDegradationShowBorder(t *testing.T) {
	assert.True(t, Degradation{}.ShowBorder(true))
	assert.False(t, Degradation{}.ShowBorder(false))
	assert.False(t, Degradation{HideBorder: true}.ShowBorder(true))
}
