package ports

import (
	"context"

	"github.com/bnema/peerchat-cli/internal/domain"
)

type ProfileRepository interface {
	Load(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}
