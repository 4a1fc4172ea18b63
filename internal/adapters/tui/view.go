package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	chatrender "github.com/bnema/peerchat-cli/internal/adapters/render/chat"
	"github.com/bnema/peerchat-cli/internal/domain"
)

const (
	minSidebarWidth = 16
	sidebarPadding  = 4
	sidebarBorder   = 1
)

var (
	colorPrimary = lipgloss.Color("39")

	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
	sidebarSectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	sidebarItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	sidebarSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	sidebarJoinStyle     = lipgloss.NewStyle().Faint(true)
	titleStyle           = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	systemLineStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("221"))
	statusBarStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), m.viewContent())
	return lipgloss.JoinVertical(lipgloss.Left, mainArea, m.viewStatusBar())
}

func (m *Model) sidebarWidth() int {
	longest := 0
	for _, item := range m.items {
		if n := lipgloss.Width(m.itemLabel(item)); n > longest {
			longest = n
		}
	}
	w := longest + sidebarPadding
	if w < minSidebarWidth {
		w = minSidebarWidth
	}
	return w
}

func (m *Model) itemLabel(item sidebarItem) string {
	if item.mode == domain.TargetChannel && !item.joined {
		return item.label + " " + sidebarJoinStyle.Render("+join")
	}
	return item.label
}

func (m *Model) updateLayout() {
	contentWidth := m.width - m.sidebarWidth() - sidebarBorder
	if contentWidth < 10 {
		contentWidth = 10
	}

	m.viewport.Width = contentWidth
	m.input.Width = contentWidth - lipgloss.Width(m.input.Prompt) - 1

	contentHeight := m.height - lipgloss.Height(m.renderTitleBar()) - lipgloss.Height(m.viewStatusBar()) - 1
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.viewport.Height = contentHeight
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) renderTitleBar() string {
	return titleStyle.Render(m.chat.Session().Target().Title())
}

func (m *Model) viewSidebar() string {
	height := m.height - lipgloss.Height(m.viewStatusBar())
	var rows []string

	section := ""
	for i, item := range m.items {
		if heading := sectionFor(item.mode); heading != section {
			section = heading
			rows = append(rows, sidebarSectionStyle.Render(heading))
		}
		style := sidebarItemStyle
		if i == m.cursor {
			style = sidebarSelectedStyle
		}
		rows = append(rows, style.Render(m.itemLabel(item)))
	}

	return sidebarStyle.Width(m.sidebarWidth()).Height(height).MaxHeight(height).Render(strings.Join(rows, "\n"))
}

func sectionFor(mode domain.TargetMode) string {
	switch mode {
	case domain.TargetPeer:
		return "PEERS"
	case domain.TargetChannel:
		return "CHANNELS"
	default:
		return "BROADCAST"
	}
}

func (m *Model) viewContent() string {
	height := m.height - lipgloss.Height(m.viewStatusBar())
	inner := lipgloss.JoinVertical(lipgloss.Left, m.renderTitleBar(), m.viewport.View(), m.input.View())
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(inner)
}

func (m *Model) viewStatusBar() string {
	parts := []string{}
	if m.refreshing {
		parts = append(parts, m.spinner.View()+" refreshing")
	}
	if identity := m.chat.Session().Identity(); identity != "" {
		parts = append(parts, "@"+identity)
	}
	if m.notice.Text != "" {
		parts = append(parts, chatrender.Notice(domain.Notice{Level: m.notice.Level, Text: m.notice.Text}))
	}
	return statusBarStyle.Render(strings.Join(parts, "  "))
}
