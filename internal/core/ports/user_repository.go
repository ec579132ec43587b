package ports

import (
	"context"

	"github.com/campaignlab/campaign-api/internal/core/domain"
)

// UserRepository is the credential store. FindByUsername returns the stored
// hash and must only be consumed by the authentication flow.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
