// Package tui hosts the mini-games in a terminal: the lobby, tutorials,
// the game loop with pause and stop, completion screens, the leaderboard
// and the SSH server that serves all of it remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// host that scheduled it; a host drops ticks that are not its own.
type TickMsg struct {
	At   time.Time
	Loop int64
}

// tickCmd schedules the next tick of loop at tickRate per second.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
