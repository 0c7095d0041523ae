// Package tui runs the games in a terminal with Bubble Tea: the fixed-rate
// tick loop, key and mouse mapping, the level picker, and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/busjam/internal/core"
)

// TickMsg drives one simulation step of the running game.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one tick from now. Games are stepped
// with this fixed duration regardless of wall-clock delivery.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
