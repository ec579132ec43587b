package ports

import (
	"context"

	"github.com/campaignlab/campaign-api/internal/core/domain"
)

// CampaignRepository defines persistence operations for campaigns.
// List returns rows in id order; there is no pagination.
type CampaignRepository interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	FindByID(ctx context.Context, id int64) (*domain.Campaign, error)
	Insert(ctx context.Context, c *domain.Campaign) error
	Update(ctx context.Context, c *domain.Campaign) error
	Delete(ctx context.Context, id int64) error
}
