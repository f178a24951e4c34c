package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/mobilepos_backend/internal/core/ports/services"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
	"github.com/SscSPs/mobilepos_backend/internal/middleware"
	"github.com/SscSPs/mobilepos_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests related to the shop settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers routes related to settings. Writes need the admin role.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.GET("/exchange-rate/history", h.listRateHistory)

		admin := settings.Group("", middleware.RequireRole(utils.RoleAdmin))
		admin.PUT("", h.updateSettings)
		admin.PUT("/exchange-rate", h.setExchangeRate)
	}
}

// getSettings godoc
// @Summary Get the shop settings
// @Description Returns the current settings, or the defaults when none were saved
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(*settings))
}

// updateSettings godoc
// @Summary Update the shop settings
// @Description Partially updates app name, background image and language
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update settings")
		return
	}

	logger.Info("Settings updated")
	c.JSON(http.StatusOK, dto.ToSettingsResponse(*settings))
}

// setExchangeRate godoc
// @Summary Set the exchange rate
// @Description Sets the secondary-per-primary rate. Non-positive rates are ignored and reported with applied=false.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   rate body dto.SetExchangeRateRequest true "New rate"
// @Success 200 {object} dto.SetExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to set exchange rate"
// @Security BearerAuth
// @Router /settings/exchange-rate [put]
func (h *settingsHandler) setExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, applied, err := h.settingsService.SetExchangeRate(c.Request.Context(), req.Rate, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to set exchange rate")
		return
	}

	logger.Info("Exchange rate submitted", slog.String("rate", req.Rate.String()), slog.Bool("applied", applied))
	c.JSON(http.StatusOK, dto.SetExchangeRateResponse{
		Applied:  applied,
		Settings: dto.ToSettingsResponse(*settings),
	})
}

// listRateHistory godoc
// @Summary List exchange rate changes
// @Description Returns past exchange rates, newest first
// @Tags settings
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListExchangeRateHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list exchange rate history"
// @Security BearerAuth
// @Router /settings/exchange-rate/history [get]
func (h *settingsHandler) listRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListRateHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	changes, nextToken, err := h.settingsService.ListRateHistory(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list exchange rate history")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateHistoryResponse(changes, nextToken))
}
