package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campaignlab/campaign-api/internal/api/middleware"
	"github.com/campaignlab/campaign-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; a protected handler reached without it
// is a wiring bug and fails closed with a 401.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(*domain.Identity)
	if !ok || identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return identity, nil
}
