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

// checkoutHandler handles HTTP requests of the payment screen.
type checkoutHandler struct {
	checkoutService portssvc.CheckoutSvc
	analytics       *utils.PosthogClientWrapper
}

func newCheckoutHandler(cs portssvc.CheckoutSvc, analytics *utils.PosthogClientWrapper) *checkoutHandler {
	return &checkoutHandler{checkoutService: cs, analytics: analytics}
}

// registerCheckoutRoutes registers routes related to checkout.
func registerCheckoutRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutSvc, analytics *utils.PosthogClientWrapper, extra ...gin.HandlerFunc) {
	h := newCheckoutHandler(checkoutService, analytics)

	checkout := rg.Group("/checkout", extra...)
	{
		checkout.POST("/quote", h.quote)
		checkout.POST("/confirm", h.confirm)
	}
}

// quote godoc
// @Summary Reconcile a dual-currency tender
// @Description Computes paid, remaining and change amounts for the tender entered so far. Nothing is stored.
// @Tags checkout
// @Accept  json
// @Produce  json
// @Param   tender body dto.CheckoutQuoteRequest true "Total due and tender"
// @Success 200 {object} dto.CheckoutQuoteResponse
// @Failure 400 {object} map[string]string "Invalid input format or non-positive exchange rate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to reconcile tender"
// @Security BearerAuth
// @Router /checkout/quote [post]
func (h *checkoutHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CheckoutQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckoutQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	q, err := h.checkoutService.Quote(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reconcile tender")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckoutQuoteResponse(q))
}

// confirm godoc
// @Summary Confirm a sale
// @Description Finalizes the sale and stores its ticket in the shop backend. Incomplete tender needs a credit sale with a customer name.
// @Tags checkout
// @Accept  json
// @Produce  json
// @Param   sale body dto.CheckoutConfirmRequest true "Tender, cart lines and payment details"
// @Success 201 {object} dto.CheckoutConfirmResponse
// @Failure 400 {object} map[string]string "Invalid input or sale not confirmable"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend rejected the ticket"
// @Failure 500 {object} map[string]string "Failed to confirm sale"
// @Security BearerAuth
// @Router /checkout/confirm [post]
func (h *checkoutHandler) confirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CheckoutConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckoutConfirm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sale, err := h.checkoutService.Confirm(c.Request.Context(), req, userID, middleware.GetAuthTokenFromContext(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to confirm sale")
		return
	}

	middleware.PosthogEvent(c, h.analytics, middleware.EventSaleConfirmed, map[string]any{
		"payment_method": string(sale.Sale.Method),
		"is_credit":      sale.Sale.IsCredit,
	})
	logger.Info("Sale confirmed", slog.String("ticket_id", sale.Ticket.ID), slog.Bool("is_credit", sale.Sale.IsCredit))
	c.JSON(http.StatusCreated, dto.ToCheckoutConfirmResponse(sale))
}
