package handler

import (
	"github.com/campaignlab/campaign-api/internal/core/domain"
	"github.com/campaignlab/campaign-api/internal/core/ports"
)

func toCampaignInput(req campaignRequest) ports.CampaignInput {
	return ports.CampaignInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Status:      req.Status,
	}
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate.UTC(),
		EndDate:     c.EndDate.UTC(),
		Budget:      c.Budget,
		Status:      c.Status,
	}
}

func toCampaignListResponse(campaigns []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, len(campaigns))
	for i := range campaigns {
		out[i] = toCampaignResponse(&campaigns[i])
	}
	return out
}
