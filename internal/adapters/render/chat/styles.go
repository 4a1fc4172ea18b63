package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	peer      lipgloss.Style
	peerMeta  lipgloss.Style
	channel   lipgloss.Style
	joined    lipgloss.Style
	joinable  lipgloss.Style
	sender    lipgloss.Style
	self      lipgloss.Style
	broadcast lipgloss.Style
	content   lipgloss.Style
	timestamp lipgloss.Style
	info      lipgloss.Style
	success   lipgloss.Style
	sent      lipgloss.Style
	failure   lipgloss.Style
	system    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		peer:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		peerMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		channel:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		joined:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		joinable:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		sender:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		self:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		broadcast: lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		content:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		info:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		sent:      lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		failure:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		system:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("221")),
	}
}

var defaultStyles = newStyles()
