package service

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shopify-buy-button/internal/auth"
	"github.com/loganlanou/shopify-buy-button/internal/embed"
	"github.com/loganlanou/shopify-buy-button/internal/handlers"
	"github.com/loganlanou/shopify-buy-button/internal/middleware"
	"github.com/loganlanou/shopify-buy-button/internal/options"
	"github.com/loganlanou/shopify-buy-button/internal/render"
	"github.com/loganlanou/shopify-buy-button/storage"
)

type Service struct {
	storage         *storage.Storage
	config          *Config
	renderer        *render.Renderer
	embedHandler    *handlers.EmbedHandler
	settingsHandler *handlers.SettingsHandler
}

func New(storage *storage.Storage, config *Config) *Service {
	return NewWithFilters(storage, config, embed.Filters{})
}

// NewWithFilters is New for hosts that adjust embed arguments before render.
func NewWithFilters(storage *storage.Storage, config *Config, filters embed.Filters) *Service {
	store := options.NewStore(storage.Queries)
	renderer := render.New(store, filters, config.Embed.ScriptURL)

	return &Service{
		storage:         storage,
		config:          config,
		renderer:        renderer,
		embedHandler:    handlers.NewEmbedHandler(renderer, store, config.BaseURL, config.Embed.PickerURL),
		settingsHandler: handlers.NewSettingsHandler(store),
	}
}

// Renderer returns the page renderer the routes share.
func (s *Service) Renderer() *render.Renderer {
	return s.renderer
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.handleHealth)

	// All other routes know whether the caller is an editor
	withAuth := e.Group("")
	withAuth.Use(middleware.ClerkSession())
	withAuth.Use(auth.Editors(s.storage.Queries, s.config.Clerk.EditorIDs))

	// Public rendering
	withAuth.POST("/api/render", s.embedHandler.HandleRender)

	// Preview answers non-editors with an empty response rather than 401
	withAuth.GET("/embed/preview", s.embedHandler.HandlePreview)

	// Editor routes take the check per route; a group with middleware would
	// also answer unknown paths under its prefix
	requireEditor := auth.RequireEditor()
	withAuth.GET("/embed/preview/qr", s.embedHandler.HandlePreviewQR, requireEditor)
	withAuth.GET("/admin/modal", s.embedHandler.HandleModal, requireEditor)

	api := withAuth.Group("/api")
	api.GET("/appearance", s.settingsHandler.GetAppearance, requireEditor)
	api.PUT("/appearance", s.settingsHandler.UpdateAppearance, requireEditor)
	api.GET("/shop", s.settingsHandler.GetShop, requireEditor)
	api.PUT("/shop", s.settingsHandler.UpdateShop, requireEditor)
}

func (s *Service) handleHealth(c echo.Context) error {
	status := "connected"
	if err := s.storage.DB().PingContext(c.Request().Context()); err != nil {
		status = "unavailable"
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": s.config.Environment,
		"database":    status,
	})
}
