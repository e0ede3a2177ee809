// Package tui is the Bubble Tea host for Sky Hop.
// It runs the fixed-rate tick loop, maps keys to actions and hosts the menu,
// scoreboard and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a frame. The model turns the time
// between frames into fixed simulation ticks.
type TickMsg time.Time

// maxFrameRate caps how often frames are requested.
const maxFrameRate = 240

// frameInterval is the delay between frames for a tick rate.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(min(tickRate, maxFrameRate))
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
