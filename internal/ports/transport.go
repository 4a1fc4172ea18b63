package ports

import (
	"context"

	"github.com/bnema/peerchat-cli/internal/domain"
)

type MessageTransport interface {
	Send(ctx context.Context, request domain.OutboundRequest) (domain.SendReceipt, error)
	PollMessages(ctx context.Context) ([]domain.InboundMessage, error)
}
