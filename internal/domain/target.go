package domain

type TargetMode string

const (
	TargetNone      TargetMode = "none"
	TargetBroadcast TargetMode = "broadcast"
	TargetChannel   TargetMode = "channel"
	TargetPeer      TargetMode = "peer"
)

// BroadcastTargetID is the display id used while broadcast is selected.
const BroadcastTargetID = "BROADCAST"

func (m TargetMode) Valid() bool {
	switch m {
	case TargetNone, TargetBroadcast, TargetChannel, TargetPeer:
		return true
	default:
		return false
	}
}

// ConversationTarget is the currently selected chat destination.
// Mode is TargetNone exactly when DisplayID is empty. RoutingID is only
// meaningful in peer mode.
type ConversationTarget struct {
	Mode      TargetMode
	DisplayID string
	RoutingID string
}

func NoTarget() ConversationTarget {
	return ConversationTarget{Mode: TargetNone}
}

func (t ConversationTarget) IsNone() bool {
	return t.Mode == "" || t.Mode == TargetNone
}

// Select transitions to the requested state and reports whether anything
// changed. Re-selecting the current mode and display id is a no-op.
func (t *ConversationTarget) Select(mode TargetMode, displayID, routingID string) bool {
	if mode == TargetBroadcast && displayID == "" {
		displayID = BroadcastTargetID
	}
	if mode == "" || displayID == "" {
		mode = TargetNone
	}
	if mode == TargetNone {
		displayID = ""
		routingID = ""
	}

	current := t.Mode
	if current == "" {
		current = TargetNone
	}
	if current == mode && t.DisplayID == displayID {
		return false
	}

	t.Mode = mode
	t.DisplayID = displayID
	t.RoutingID = routingID
	return true
}

// Title is the heading shown for the active conversation.
func (t ConversationTarget) Title() string {
	switch t.Mode {
	case TargetBroadcast:
		return "General Chat (Broadcast)"
	case TargetChannel:
		return "Channel: #" + t.DisplayID
	case TargetPeer:
		return "Direct Chat with " + t.DisplayID
	default:
		return "Please select a Peer or Channel"
	}
}
