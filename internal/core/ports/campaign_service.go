package ports

import (
	"context"
	"time"

	"github.com/campaignlab/campaign-api/internal/core/domain"
)

// CampaignInput carries the writable campaign fields. It is the allow-list
// for create and update: the id is assigned by storage and can never be set
// from a request body.
type CampaignInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Status      bool
}

// CampaignService defines the CRUD use-cases over campaigns. Every operation
// sits behind the request authenticator; the identity is unused beyond gating.
type CampaignService interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	Create(ctx context.Context, input CampaignInput) (*domain.Campaign, error)
	Update(ctx context.Context, id int64, input CampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, id int64) error
}
