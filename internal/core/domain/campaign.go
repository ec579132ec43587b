package domain

import (
	"errors"
	"time"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// Campaign is a single row in the campaigns table. Campaigns are not owned
// per-user; any authenticated identity may read or write any of them.
type Campaign struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      float64   `json:"budget"`
	Status      bool      `json:"status"`
}
