package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	chatrender "github.com/bnema/peerchat-cli/internal/adapters/render/chat"
	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case InboundMsg:
		return m.handleInbound(msg)
	case refreshedMsg:
		return m.handleRefreshed(msg)
	case sentMsg:
		return m.handleSent(msg)
	case channelJoinedMsg:
		return m.handleChannelJoined(msg)
	case channelCreatedMsg:
		return m.handleChannelCreated(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.updateLayout()
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		return m, m.moveCursor(1)
	case "shift+tab":
		return m, m.moveCursor(-1)
	case "ctrl+r":
		return m, m.startRefresh()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if text == "" {
			return m, nil
		}
		if strings.HasPrefix(text, "/") {
			return m, m.runSlashCommand(text)
		}
		return m, m.sendCmd(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) runSlashCommand(text string) tea.Cmd {
	name, arg, _ := strings.Cut(strings.TrimPrefix(text, "/"), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "join":
		return m.joinCmd(arg)
	case "create":
		return m.createCmd(arg)
	case "refresh":
		return m.startRefresh()
	case "quit":
		return tea.Quit
	default:
		m.setNotice(domain.Notice{Level: domain.NoticeError, Text: "Unknown command /" + name, At: m.chat.Now()})
		return nil
	}
}

func (m *Model) startRefresh() tea.Cmd {
	if m.refreshing {
		return nil
	}
	m.refreshing = true
	return tea.Batch(m.spinner.Tick, m.refreshCmd())
}

// moveCursor steps through the sidebar and selects the item under the cursor.
func (m *Model) moveCursor(step int) tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}

	next := m.cursor + step
	if m.cursor < 0 && step < 0 {
		next = len(m.items) - 1
	}
	next = (next + len(m.items)) % len(m.items)
	m.cursor = next

	return m.selectItem(m.items[next])
}

// selectItem makes item the active target. The message view is cleared only
// when the target actually changes. Unjoined channels are joined first.
func (m *Model) selectItem(item sidebarItem) tea.Cmd {
	if item.mode == domain.TargetChannel && !item.joined {
		return m.joinCmd(item.displayID)
	}

	displayID := item.displayID
	if item.mode == domain.TargetBroadcast {
		displayID = ""
	}
	if m.chat.Session().SelectTarget(item.mode, displayID, item.routingID) {
		m.clearView()
	}
	return nil
}

func (m *Model) handleInbound(msg InboundMsg) (tea.Model, tea.Cmd) {
	m.appendLine(chatrender.Message(msg.Message, m.chat.Session().Identity()))
	m.setNotice(application.ReceivedNotice(msg.Message, m.chat.Now()))
	return m, nil
}

func (m *Model) handleRefreshed(msg refreshedMsg) (tea.Model, tea.Cmd) {
	m.refreshing = false
	if msg.view.Peers != nil || msg.view.Channels != nil {
		m.rebuildItems(mergeView(m.items, msg.view))
	}
	if msg.err != nil {
		m.setNotice(application.NoticeForError(application.ActivityRefresh, msg.err, m.chat.Now()))
		return m, nil
	}
	m.setNotice(msg.view.Notice)
	return m, nil
}

// mergeView fills in whichever half of a partially failed refresh is
// missing from the current sidebar.
func mergeView(items []sidebarItem, view application.DirectoryView) application.DirectoryView {
	if view.Peers != nil && view.Channels != nil {
		return view
	}
	for _, item := range items {
		switch {
		case item.mode == domain.TargetPeer && view.Peers == nil:
			view.Peers = append(view.Peers, application.PeerEntry{Username: item.label, DisplayID: item.displayID, RoutingID: item.routingID})
		case item.mode == domain.TargetChannel && view.Channels == nil:
			view.Channels = append(view.Channels, application.ChannelEntry{Name: item.displayID, Joined: item.joined})
		}
	}
	return view
}

func (m *Model) handleSent(msg sentMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setNotice(application.NoticeForError(application.ActivitySend, msg.err, m.chat.Now()))
		return m, nil
	}
	m.appendLine(chatrender.Message(msg.result.Echo, m.chat.Session().Identity()))
	m.setNotice(msg.result.Notice)
	return m, nil
}

func (m *Model) handleChannelJoined(msg channelJoinedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setNotice(application.NoticeForError(application.ActivityJoin, msg.err, m.chat.Now()))
		return m, nil
	}
	if msg.changed {
		m.clearView()
	}
	m.setNotice(msg.notice)
	m.cursor = m.indexOfTarget(m.chat.Session().Target())
	return m, m.startRefresh()
}

func (m *Model) handleChannelCreated(msg channelCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setNotice(application.NoticeForError(application.ActivityCreate, msg.err, m.chat.Now()))
		return m, nil
	}
	m.setNotice(msg.notice)
	return m, m.startRefresh()
}
