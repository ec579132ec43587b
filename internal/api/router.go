package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/campaignlab/campaign-api/internal/api/handler"
	"github.com/campaignlab/campaign-api/internal/api/middleware"
	"github.com/campaignlab/campaign-api/internal/core/ports"
	"github.com/campaignlab/campaign-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(authService ports.AuthService, campaignService ports.CampaignService, db *sql.DB, corsOrigins []string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     corsOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("campaign_api"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(authService)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	authMiddleware := middleware.Auth(authService)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMiddleware)

	// --- Campaign routes (all protected) ---
	campaigns := e.Group("/campaigns", authMiddleware)
	campaigns.GET("/", campaignHandler.List)
	campaigns.GET("/:id", campaignHandler.Get)
	campaigns.POST("/", campaignHandler.Create)
	campaigns.PUT("/:id", campaignHandler.Update)
	campaigns.DELETE("/:id", campaignHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
