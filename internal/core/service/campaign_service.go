package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campaignlab/campaign-api/internal/core/domain"
	"github.com/campaignlab/campaign-api/internal/core/ports"
)

// CampaignService implements plain CRUD over the campaigns table. Each
// operation is a single storage call; there is no retry or partial-failure
// handling anywhere in this flow.
type CampaignService struct {
	repo   ports.CampaignRepository
	logger zerolog.Logger
}

func NewCampaignService(repo ports.CampaignRepository, logger zerolog.Logger) *CampaignService {
	return &CampaignService{repo: repo, logger: logger}
}

func (s *CampaignService) List(ctx context.Context) ([]domain.Campaign, error) {
	return s.repo.List(ctx)
}

func (s *CampaignService) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CampaignService) Create(ctx context.Context, input ports.CampaignInput) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	applyInput(campaign, input)

	if err := s.repo.Insert(ctx, campaign); err != nil {
		s.logger.Error().Err(err).Msg("failed to create campaign")
		return nil, err
	}

	s.logger.Info().Int64("campaign_id", campaign.ID).Str("name", campaign.Name).Msg("campaign created")
	return campaign, nil
}

// Update fully replaces every field except the id.
func (s *CampaignService) Update(ctx context.Context, id int64, input ports.CampaignInput) (*domain.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(campaign, input)
	if err := s.repo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("campaign_id", id).Msg("campaign updated")
	return campaign, nil
}

func (s *CampaignService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("campaign_id", id).Msg("campaign deleted")
	return nil
}

// applyInput copies the writable fields onto a campaign. This is the one
// place request data reaches a persisted row, so the field list is explicit:
// the id is deliberately absent.
func applyInput(c *domain.Campaign, input ports.CampaignInput) {
	c.Name = input.Name
	c.Description = input.Description
	c.StartDate = input.StartDate
	c.EndDate = input.EndDate
	c.Budget = input.Budget
	c.Status = input.Status
}
