package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	muted     lipgloss.Style
	empty     lipgloss.Style
	warning   lipgloss.Style
	bar       lipgloss.Style
	me        lipgloss.Style
	them      lipgloss.Style
	moduleOn  lipgloss.Style
	moduleOff lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:     lipgloss.NewStyle().Faint(true),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		me:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		them:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		moduleOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		moduleOff: lipgloss.NewStyle().Faint(true),
	}
}
