package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shopify-buy-button/internal/appearance"
	"github.com/loganlanou/shopify-buy-button/internal/options"
)

type SettingsHandler struct {
	options *options.Store
}

func NewSettingsHandler(store *options.Store) *SettingsHandler {
	return &SettingsHandler{options: store}
}

type appearanceResponse struct {
	Settings appearance.Settings   `json:"settings"`
	Resolved appearance.Appearance `json:"resolved"`
}

func (h *SettingsHandler) GetAppearance(c echo.Context) error {
	settings, err := appearance.LoadSettings(c.Request().Context(), h.options)
	if err != nil {
		slog.Error("failed to load appearance settings", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load appearance settings")
	}

	return c.JSON(http.StatusOK, appearanceResponse{
		Settings: settings,
		Resolved: settings.Resolve(),
	})
}

func (h *SettingsHandler) UpdateAppearance(c echo.Context) error {
	var settings appearance.Settings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := appearance.Save(c.Request().Context(), h.options, settings); err != nil {
		if errors.Is(err, appearance.ErrInvalidColor) || errors.Is(err, appearance.ErrInvalidRedirect) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		slog.Error("failed to save appearance settings", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save appearance settings")
	}

	slog.Info("appearance settings updated")
	return c.JSON(http.StatusOK, appearanceResponse{
		Settings: settings,
		Resolved: settings.Resolve(),
	})
}

type shopSettings struct {
	Shop          *string `json:"shop"`
	ConnectedSite *string `json:"connected_site"`
}

func (h *SettingsHandler) GetShop(c echo.Context) error {
	ctx := c.Request().Context()

	shop, err := h.options.FallbackShop(ctx)
	if err != nil {
		slog.Error("failed to read shop option", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read shop")
	}
	site, err := h.options.Get(ctx, options.ConnectedSite, "")
	if err != nil {
		slog.Error("failed to read connected site", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read connected site")
	}

	return c.JSON(http.StatusOK, shopSettings{Shop: &shop, ConnectedSite: &site})
}

// UpdateShop sets the fields present in the body and leaves the rest alone.
func (h *SettingsHandler) UpdateShop(c echo.Context) error {
	var req shopSettings
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ctx := c.Request().Context()
	if req.Shop != nil {
		if err := h.options.SaveShop(ctx, *req.Shop); err != nil {
			slog.Error("failed to save shop option", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save shop")
		}
	}
	if req.ConnectedSite != nil {
		if err := h.options.Set(ctx, options.ConnectedSite, *req.ConnectedSite); err != nil {
			slog.Error("failed to save connected site", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save connected site")
		}
	}

	return h.GetShop(c)
}
