package application

import (
	"github.com/bnema/peerchat-cli/internal/domain"
)

type PeerEntry struct {
	Username  string
	DisplayID string
	RoutingID string
}

type ChannelEntry struct {
	Name    string
	Members int
	Joined  bool
}

// DirectoryView is the result of a refresh, shaped for display. The local
// identity is left out of Peers.
type DirectoryView struct {
	Peers    []PeerEntry
	Channels []ChannelEntry
	Notice   domain.Notice
}

type SendResult struct {
	Request domain.OutboundRequest
	Receipt domain.SendReceipt
	Echo    domain.AttributedMessage
	Notice  domain.Notice
}
