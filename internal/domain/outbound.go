package domain

type Endpoint string

const (
	EndpointBroadcastSend Endpoint = "/broadcast-peer"
	EndpointGenericSend   Endpoint = "/send-peer"
)

type SendBody struct {
	Message        string `json:"message"`
	SenderUsername string `json:"sender_username,omitempty"`
	TargetID       string `json:"target_id,omitempty"`
	TargetType     string `json:"target_type,omitempty"`
}

// OutboundRequest is a fully addressed send, ready for the transport.
type OutboundRequest struct {
	Endpoint    Endpoint
	Body        SendBody
	Mode        TargetMode
	DisplayName string
}

// SendReceipt carries the per-member delivery counts of a channel send.
type SendReceipt struct {
	SentTo int
	Failed int
}
