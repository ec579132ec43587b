package handler

import "time"

// campaignRequest is the body for create and update. It deliberately has no
// id field: ids are assigned by storage and immutable afterwards.
//
// Budget and date ordering are not validated beyond shape; the product has
// not decided whether budget >= 0 or end_date > start_date should hold.
type campaignRequest struct {
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description" validate:"required"`
	StartDate   time.Time `json:"start_date"  validate:"required"`
	EndDate     time.Time `json:"end_date"    validate:"required"`
	Budget      float64   `json:"budget"`
	Status      bool      `json:"status"`
}

// campaignResponse is the transport view of a campaign. It is kept separate
// from the domain type so the JSON contract is not coupled to internal
// changes.
type campaignResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      float64   `json:"budget"`
	Status      bool      `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}
