package domain

// BroadcastMarker prefixes every message addressed to all peers.
const BroadcastMarker = "📢 Broadcast:"

// InboundMessage is one record returned by the poll endpoint.
type InboundMessage struct {
	Text          string
	SenderAddress string
}

type AttributedMessage struct {
	Sender      string
	Content     string
	IsBroadcast bool
}
