package chat

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
)

type Section int

const (
	SectionAll Section = iota
	SectionPeers
	SectionChannels
)

type RenderOptions struct {
	Section Section
	// ShowRouting adds the routing id next to each peer's display id.
	ShowRouting bool
}

func renderDirectory(view application.DirectoryView, opts RenderOptions, s styles) string {
	var blocks []string

	if opts.Section != SectionChannels {
		blocks = append(blocks, renderPeers(view.Peers, opts, s))
	}
	if opts.Section != SectionPeers {
		blocks = append(blocks, renderChannels(view.Channels, s))
	}

	for i := 1; i < len(blocks); i++ {
		blocks[i] = s.section.Render(blocks[i])
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderPeers(peers []application.PeerEntry, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Peers"),
		s.header.Render(fmt.Sprintf("online: %d", len(peers))),
	}

	if len(peers) == 0 {
		lines = append(lines, s.empty.Render("No other peers online."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, peer := range peers {
		line := s.peer.Render(peer.Username) + " " + s.peerMeta.Render(peer.DisplayID)
		if opts.ShowRouting {
			line += " " + s.peerMeta.Render("-> "+peer.RoutingID)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderChannels(channels []application.ChannelEntry, s styles) string {
	lines := []string{
		s.title.Render("Channels"),
		s.header.Render(fmt.Sprintf("channels: %d", len(channels))),
	}

	if len(channels) == 0 {
		lines = append(lines, s.empty.Render("No channels yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, channel := range channels {
		lines = append(lines, ChannelLabel(channel))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ChannelLabel is a one-line channel entry with its membership affordance.
func ChannelLabel(channel application.ChannelEntry) string {
	s := defaultStyles
	state := s.joinable.Render("[JOIN]")
	if channel.Joined {
		state = s.joined.Render("[CHAT]")
	}

	return fmt.Sprintf("%s %s %s",
		s.channel.Render("#"+channel.Name),
		s.peerMeta.Render(fmt.Sprintf("(%d members)", channel.Members)),
		state,
	)
}

// Message renders one chat line. Lines authored by self use a distinct style.
func Message(message domain.AttributedMessage, self string) string {
	s := defaultStyles

	sender := s.sender.Render(message.Sender)
	if self != "" && message.Sender == self {
		sender = s.self.Render(message.Sender)
	}

	line := sender + ": " + s.content.Render(message.Content)
	if message.IsBroadcast {
		line = s.broadcast.Render("📢") + " " + line
	}

	return line
}

// TimedMessage prefixes Message with a clock time.
func TimedMessage(message domain.AttributedMessage, self string, at time.Time) string {
	return defaultStyles.timestamp.Render(at.Format("15:04:05")) + " " + Message(message, self)
}

func Notice(notice domain.Notice) string {
	s := defaultStyles

	var style lipgloss.Style
	switch notice.Level {
	case domain.NoticeSuccess:
		style = s.success
	case domain.NoticeSent:
		style = s.sent
	case domain.NoticeError:
		style = s.failure
	case domain.NoticeSystem:
		style = s.system
	default:
		style = s.info
	}

	text := style.Render(notice.Text)
	if notice.At.IsZero() {
		return text
	}
	return s.timestamp.Render(notice.At.Format("15:04:05")) + " " + text
}

func Profile(profile domain.Profile) string {
	s := defaultStyles

	if !profile.Registered() {
		return s.empty.Render("Not registered. Run `peerchat register <username>`.")
	}

	lines := []string{
		s.peer.Render(profile.Username),
		s.peerMeta.Render("peer id: " + profile.PeerID),
	}
	if !profile.RegisteredAt.IsZero() {
		lines = append(lines, s.peerMeta.Render("registered: "+profile.RegisteredAt.Format(time.RFC3339)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
