package services

import (
	"context"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
)

// CheckoutSvc reconciles dual-currency tender and finalizes sales.
type CheckoutSvc interface {
	// Quote reconciles the tender without side effects.
	Quote(ctx context.Context, req dto.CheckoutQuoteRequest) (*domain.CheckoutQuote, error)

	// Confirm finalizes the sale and stores exactly one ticket through the backend.
	Confirm(ctx context.Context, req dto.CheckoutConfirmRequest, userID, authToken string) (*domain.ConfirmedSale, error)
}
