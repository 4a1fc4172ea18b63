package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
)

const maxViewLines = 500

// Chat is the part of the chat service the TUI drives.
type Chat interface {
	Session() *application.Session
	Refresh(ctx context.Context) (application.DirectoryView, error)
	Send(ctx context.Context, message string) (application.SendResult, error)
	CreateChannel(ctx context.Context, name string) (domain.Notice, error)
	JoinChannel(ctx context.Context, name string) (domain.Notice, error)
	Now() time.Time
}

type sidebarItem struct {
	mode      domain.TargetMode
	label     string
	displayID string
	routingID string
	joined    bool
}

type Model struct {
	chat Chat
	ctx  context.Context

	width  int
	height int

	items  []sidebarItem
	cursor int

	viewport   viewport.Model
	input      textinput.Model
	spinner    spinner.Model
	refreshing bool

	lines  []string
	notice domain.Notice
}

func New(ctx context.Context, chat Chat) *Model {
	input := textinput.New()
	input.Placeholder = "Type a message, /join <channel>, /create <channel>"
	input.Prompt = "> "
	input.CharLimit = 2000
	input.Focus()

	return &Model{
		chat:   chat,
		ctx:    ctx,
		items:  []sidebarItem{broadcastItem()},
		cursor: -1,
		input:  input,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		viewport: viewport.New(0, 0),
	}
}

func broadcastItem() sidebarItem {
	return sidebarItem{mode: domain.TargetBroadcast, label: "General", displayID: domain.BroadcastTargetID}
}

func (m *Model) Init() tea.Cmd {
	m.refreshing = true
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.refreshCmd())
}

// Deliver wraps an inbound message for tea.Program.Send.
func Deliver(message domain.AttributedMessage) tea.Msg {
	return InboundMsg{Message: message}
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > maxViewLines {
		m.lines = m.lines[len(m.lines)-maxViewLines:]
	}
	m.syncViewport()
}

func (m *Model) clearView() {
	m.lines = nil
	m.syncViewport()
}

func (m *Model) setNotice(notice domain.Notice) {
	m.notice = notice
	if notice.Level == domain.NoticeSystem {
		m.appendLine(systemLineStyle.Render(notice.Text))
	}
}

// rebuildItems replaces the sidebar from a refreshed view and keeps the
// cursor on the active target when it is still listed.
func (m *Model) rebuildItems(view application.DirectoryView) {
	items := []sidebarItem{broadcastItem()}
	for _, peer := range view.Peers {
		items = append(items, sidebarItem{
			mode:      domain.TargetPeer,
			label:     peer.Username,
			displayID: peer.DisplayID,
			routingID: peer.RoutingID,
		})
	}
	for _, channel := range view.Channels {
		items = append(items, sidebarItem{
			mode:      domain.TargetChannel,
			label:     "#" + channel.Name,
			displayID: channel.Name,
			joined:    channel.Joined,
		})
	}
	m.items = items
	m.cursor = m.indexOfTarget(m.chat.Session().Target())
}

func (m *Model) indexOfTarget(target domain.ConversationTarget) int {
	if target.IsNone() {
		return -1
	}
	for i, item := range m.items {
		if item.mode == target.Mode && item.displayID == target.DisplayID {
			return i
		}
	}
	return -1
}
