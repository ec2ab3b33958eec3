// Package tui provides the Bubble Tea frontend: the terminal frame loop,
// key mapping, rasterizing draw lists into terminal cells, and the SSH
// server that runs one game per session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wampus-world/internal/core"
)

// maxFrameDelta caps the measured frame time so a stalled terminal does
// not swallow a whole dwell in one frame.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.FrameDelta(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time between two ticks. The first tick and clock
// steps backwards use the nominal frame length.
func frameDelta(prev, now time.Time, tickRate int) time.Duration {
	nominal := core.FrameDelta(tickRate)
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev)
	if dt <= 0 {
		return nominal
	}
	return min(dt, maxFrameDelta)
}
