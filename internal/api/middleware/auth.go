package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campaignlab/campaign-api/internal/core/ports"
)

// IdentityKey is the echo context key under which Auth stores the resolved
// identity for downstream handlers.
const IdentityKey = "identity"

// Auth guards a route group with bearer-token authentication. The token is
// resolved through the auth service, which re-fetches the user on every
// request, so a token for a deleted user is rejected immediately.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := auth.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}
