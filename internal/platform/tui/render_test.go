package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/skyhop/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, '@', core.ColorYellow)
	s.SetColored(4, 0, '@', core.ColorYellow)
	s.DrawTextColored(0, 1, "====", core.ColorGreen)

	got := ansi.Strip(RenderScreen(s))
	want := "ab @@ \n====  "
	if got != want {
		t.Errorf("RenderScreen text = %q, want %q", got, want)
	}
}

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(3, 4)
	if rows := strings.Count(RenderScreen(s), "\n") + 1; rows != 4 {
		t.Errorf("rendered %d rows, want 4", rows)
	}
}

func TestCellStylesCoverPalette(t *testing.T) {
	for _, c := range core.Colors() {
		if int(c) >= len(cellStyles) {
			t.Fatalf("no style for color %d", c)
		}
	}
	// Out-of-range colors fall back to the default style.
	_ = styleFor(core.Color(255))
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
		{1000, time.Second / maxFrameRate},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
