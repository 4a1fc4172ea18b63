package ports

import (
	"context"

	"github.com/bnema/peerchat-cli/internal/domain"
)

// TrackerDirectory is the directory-service surface exposed by the peer web app.
type TrackerDirectory interface {
	ListPeers(ctx context.Context) ([]domain.PeerRecord, error)
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	RegisterPeer(ctx context.Context, username string) (string, error)
	CreateChannel(ctx context.Context, name string, owner string) error
	JoinChannel(ctx context.Context, name string, username string) error
}
