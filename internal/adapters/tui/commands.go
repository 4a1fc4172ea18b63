package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
)

// InboundMsg carries one attributed message from the polling loop.
type InboundMsg struct {
	Message domain.AttributedMessage
}

type refreshedMsg struct {
	view application.DirectoryView
	err  error
}

type sentMsg struct {
	result application.SendResult
	err    error
}

type channelJoinedMsg struct {
	notice  domain.Notice
	changed bool
	err     error
}

type channelCreatedMsg struct {
	notice domain.Notice
	err    error
}

func (m *Model) refreshCmd() tea.Cmd {
	chat, ctx := m.chat, m.ctx
	return func() tea.Msg {
		view, err := chat.Refresh(ctx)
		return refreshedMsg{view: view, err: err}
	}
}

func (m *Model) sendCmd(text string) tea.Cmd {
	chat, ctx := m.chat, m.ctx
	return func() tea.Msg {
		result, err := chat.Send(ctx, text)
		return sentMsg{result: result, err: err}
	}
}

func (m *Model) joinCmd(name string) tea.Cmd {
	chat, ctx := m.chat, m.ctx
	return func() tea.Msg {
		before := chat.Session().Target()
		notice, err := chat.JoinChannel(ctx, name)
		return channelJoinedMsg{notice: notice, changed: chat.Session().Target() != before, err: err}
	}
}

func (m *Model) createCmd(name string) tea.Cmd {
	chat, ctx := m.chat, m.ctx
	return func() tea.Msg {
		notice, err := chat.CreateChannel(ctx, name)
		return channelCreatedMsg{notice: notice, err: err}
	}
}
