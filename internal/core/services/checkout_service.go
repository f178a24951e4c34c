package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/mobilepos_backend/internal/core/ports/services"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
	"github.com/SscSPs/mobilepos_backend/internal/utils/tender"
	"github.com/shopspring/decimal"
)

type checkoutService struct {
	BaseService
	settings portssvc.SettingsReaderSvc
	tickets  gateways.TicketGateway
}

// NewCheckoutService creates the checkout service. The shop exchange rate is read from settings.
func NewCheckoutService(settings portssvc.SettingsReaderSvc, tickets gateways.TicketGateway) portssvc.CheckoutSvc {
	return &checkoutService{settings: settings, tickets: tickets}
}

var _ portssvc.CheckoutSvc = (*checkoutService)(nil)

func (s *checkoutService) Quote(ctx context.Context, req dto.CheckoutQuoteRequest) (*domain.CheckoutQuote, error) {
	session, rate, err := s.open(ctx, req)
	if err != nil {
		return nil, err
	}
	return &domain.CheckoutQuote{
		ExchangeRate:   rate,
		Tender:         session.Tender(),
		Reconciliation: session.Result(),
		State:          session.StateFor(req.IsCredit, req.CustomerName),
		CanConfirm:     tender.CanConfirm(session.Result(), req.IsCredit, req.CustomerName),
	}, nil
}

func (s *checkoutService) Confirm(ctx context.Context, req dto.CheckoutConfirmRequest, userID, authToken string) (*domain.ConfirmedSale, error) {
	session, rate, err := s.open(ctx, req.CheckoutQuoteRequest)
	if err != nil {
		return nil, err
	}

	sale, err := session.Confirm(req.PaymentMethod, req.IsCredit, req.CustomerName)
	if err != nil {
		s.LogDebug(ctx, "Checkout not confirmable",
			slog.String("remaining_primary", session.Result().RemainingPrimary.String()),
			slog.Bool("is_credit", req.IsCredit))
		return nil, err
	}

	ticketReq := domain.NewTicketRequest(sale, dto.ToTicketItems(req.Items), rate)
	ticket, err := s.tickets.CreateTicket(ctx, authToken, ticketReq)
	if err != nil {
		s.LogError(ctx, err, "Failed to create ticket",
			slog.String("user_id", userID),
			slog.String("payment_status", string(ticketReq.PaymentStatus)))
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.LogInfo(ctx, "Sale confirmed",
		slog.String("ticket_id", ticket.ID),
		slog.String("user_id", userID),
		slog.String("payment_status", string(ticketReq.PaymentStatus)),
		slog.String("amount_usd", sale.TenderedPrimary.String()),
		slog.String("amount_ves", sale.TenderedSecondary.String()))

	return &domain.ConfirmedSale{
		ExchangeRate:   rate,
		Sale:           sale,
		Reconciliation: session.Result(),
		Ticket:         *ticket,
	}, nil
}

// open builds a session for the request and replays the entered tender into it.
func (s *checkoutService) open(ctx context.Context, req dto.CheckoutQuoteRequest) (*tender.Session, decimal.Decimal, error) {
	rate, err := s.rate(ctx, req.ExchangeRate)
	if err != nil {
		return nil, decimal.Zero, err
	}
	session, err := tender.Open(req.TotalDue, rate)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if err := session.SetPrimary(string(req.TenderedPrimary)); err != nil {
		return nil, decimal.Zero, err
	}
	if err := session.SetSecondary(string(req.TenderedSecondary)); err != nil {
		return nil, decimal.Zero, err
	}
	return session, rate, nil
}

func (s *checkoutService) rate(ctx context.Context, override *decimal.Decimal) (decimal.Decimal, error) {
	if override != nil {
		return *override, nil
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return settings.ExchangeRate, nil
}
