package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campaignlab/campaign-api/internal/api/metrics"
	"github.com/campaignlab/campaign-api/internal/core/domain"
	"github.com/campaignlab/campaign-api/internal/core/ports"
)

// CampaignHandler handles HTTP requests for campaign CRUD. All routes sit
// behind the Auth middleware; the identity gates access but carries no
// ownership semantics.
type CampaignHandler struct {
	service ports.CampaignService
}

func NewCampaignHandler(service ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// List handles GET /campaigns/.
//
// @Summary      List all campaigns
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   campaignResponse
// @Failure      401  {object}  map[string]string
// @Router       /campaigns/ [get]
func (h *CampaignHandler) List(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	campaigns, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCampaignListResponse(campaigns))
}

// Get handles GET /campaigns/:id.
//
// @Summary      Get a campaign
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Campaign id"
// @Success      200  {object}  campaignResponse
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [get]
func (h *CampaignHandler) Get(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	id, err := campaignID(c)
	if err != nil {
		return err
	}

	campaign, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCampaignResponse(campaign))
}

// Create handles POST /campaigns/.
//
// @Summary      Create a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      campaignRequest  true  "Campaign fields"
// @Success      200   {object}  campaignResponse
// @Failure      400   {object}  map[string]string
// @Router       /campaigns/ [post]
func (h *CampaignHandler) Create(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	req, err := bindCampaign(c)
	if err != nil {
		return err
	}

	campaign, err := h.service.Create(c.Request().Context(), toCampaignInput(req))
	if err != nil {
		return err
	}

	metrics.CampaignWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, toCampaignResponse(campaign))
}

// Update handles PUT /campaigns/:id. Every field except the id is replaced.
//
// @Summary      Update a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Campaign id"
// @Param        body  body      campaignRequest  true  "Campaign fields"
// @Success      200   {object}  campaignResponse
// @Failure      404   {object}  map[string]string
// @Router       /campaigns/{id} [put]
func (h *CampaignHandler) Update(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	id, err := campaignID(c)
	if err != nil {
		return err
	}

	req, err := bindCampaign(c)
	if err != nil {
		return err
	}

	campaign, err := h.service.Update(c.Request().Context(), id, toCampaignInput(req))
	if err != nil {
		return err
	}

	metrics.CampaignWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toCampaignResponse(campaign))
}

// Delete handles DELETE /campaigns/:id.
//
// @Summary      Delete a campaign
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Campaign id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	id, err := campaignID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CampaignWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Campaign deleted successfully"})
}

func bindCampaign(c echo.Context) (campaignRequest, error) {
	var req campaignRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// campaignID parses the :id path parameter. A non-numeric id cannot name an
// existing row, so it is reported as not found rather than a bad request.
func campaignID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrCampaignNotFound
	}
	return id, nil
}
