package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/slok/fitrack/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	filterStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Faint(true)

	statusStyles = map[model.ActivityStatus]lipgloss.Style{
		model.ActivityStatusPlanned:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		model.ActivityStatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		model.ActivityStatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

func renderStatus(s model.ActivityStatus) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(s.Label())
}
