package application

import (
	"fmt"
	"strings"

	"github.com/bnema/peerchat-cli/internal/domain"
)

const (
	targetTypeChannel = "channel"
	targetTypePeer    = "peer"
)

// Route turns the active target and a plaintext message into an addressed
// request. No request is produced for an unselected target or a blank message.
func Route(target domain.ConversationTarget, localIdentity string, message string) (domain.OutboundRequest, error) {
	if target.IsNone() {
		return domain.OutboundRequest{}, fmt.Errorf("%w: %w", domain.ErrInvalidTarget, domain.ErrNoTargetSelected)
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return domain.OutboundRequest{}, fmt.Errorf("%w: %w", domain.ErrInvalidTarget, domain.ErrEmptyMessage)
	}

	identity := strings.TrimSpace(localIdentity)
	if identity == "" {
		return domain.OutboundRequest{}, fmt.Errorf("%w: %w", domain.ErrInvalidTarget, domain.ErrNotRegistered)
	}

	switch target.Mode {
	case domain.TargetBroadcast:
		return domain.OutboundRequest{
			Endpoint: domain.EndpointBroadcastSend,
			Body: domain.SendBody{
				Message:        fmt.Sprintf("%s [%s] %s", domain.BroadcastMarker, identity, message),
				SenderUsername: identity,
			},
			Mode:        domain.TargetBroadcast,
			DisplayName: "Broadcast",
		}, nil
	case domain.TargetChannel:
		return domain.OutboundRequest{
			Endpoint: domain.EndpointGenericSend,
			Body: domain.SendBody{
				Message:        message,
				SenderUsername: identity,
				TargetID:       target.DisplayID,
				TargetType:     targetTypeChannel,
			},
			Mode:        domain.TargetChannel,
			DisplayName: "#" + target.DisplayID,
		}, nil
	case domain.TargetPeer:
		routingID := target.RoutingID
		if routingID == "" {
			routingID = target.DisplayID
		}
		return domain.OutboundRequest{
			Endpoint: domain.EndpointGenericSend,
			Body: domain.SendBody{
				Message:        message,
				SenderUsername: identity,
				TargetID:       routingID,
				TargetType:     targetTypePeer,
			},
			Mode:        domain.TargetPeer,
			DisplayName: domain.IdentityPart(target.DisplayID),
		}, nil
	default:
		return domain.OutboundRequest{}, fmt.Errorf("%w: unsupported mode %q", domain.ErrInvalidTarget, target.Mode)
	}
}
