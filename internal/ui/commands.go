package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// animTick schedules the next animation frame
func animTick() tea.Cmd {
	return tea.Tick(animFrame, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// clearStatusLater clears the status line after a short delay
func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
