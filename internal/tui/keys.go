package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slok/fitrack/internal/model"
)

const helpText = "↑/↓: select  1: planned  2: in progress  3: completed  t: type  s: status  r: reload  q: quit"

// statusKeys are the keys that request a status for the selected activity.
var statusKeys = map[string]model.ActivityStatus{
	"1": model.ActivityStatusPlanned,
	"2": model.ActivityStatusInProgress,
	"3": model.ActivityStatusCompleted,
}

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return true
	}
	return false
}

func isUp(msg tea.KeyMsg) bool {
	return msg.String() == "up" || msg.String() == "k"
}

func isDown(msg tea.KeyMsg) bool {
	return msg.String() == "down" || msg.String() == "j"
}

// nextOption cycles through all the options with nil meaning "all".
func nextOption[T comparable](current *T, options []T) *T {
	if current == nil {
		return &options[0]
	}
	for i, o := range options {
		if o == *current {
			if i+1 == len(options) {
				return nil
			}
			next := options[i+1]
			return &next
		}
	}
	return nil
}
