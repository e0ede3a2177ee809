package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionJump},
		{"w", runeKey('w'), core.ActionJump},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	if !h.Held(core.ActionLeft, t0.Add(50*time.Millisecond)) {
		t.Error("left should be held inside the window")
	}
	if h.Held(core.ActionLeft, t0.Add(100*time.Millisecond)) {
		t.Error("left should be released at the end of the window")
	}

	// Auto-repeat extends the hold.
	h.Press(core.ActionLeft, t0.Add(90*time.Millisecond))
	if !h.Held(core.ActionLeft, t0.Add(150*time.Millisecond)) {
		t.Error("repeat should extend the hold")
	}
}

func TestHoldTrackerOpposite(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Unix(1000, 0)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now)

	if h.Held(core.ActionLeft, now) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight, now) {
		t.Error("right should be held")
	}
}

func TestHoldTrackerApply(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Unix(1000, 0)
	h.Press(core.ActionRight, now)

	frame := core.NewInputFrame()
	h.Apply(&frame, now)
	if !frame.Has(core.ActionRight) || frame.Has(core.ActionLeft) {
		t.Errorf("frame = %v, want right only", frame.Actions)
	}

	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame, now)
	if frame.Has(core.ActionRight) {
		t.Error("Release should drop every hold")
	}
}

func TestHoldTrackerDefaultWindow(t *testing.T) {
	h := NewHoldTracker(0)
	now := time.Unix(1000, 0)
	h.Press(core.ActionLeft, now)

	if !h.Held(core.ActionLeft, now.Add(holdWindow-time.Millisecond)) {
		t.Error("zero window should fall back to the default")
	}
	if h.Held(core.ActionLeft, now.Add(holdWindow)) {
		t.Error("hold should end after the default window")
	}
}
