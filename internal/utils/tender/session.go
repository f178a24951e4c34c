package tender

import (
	"fmt"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Session tracks one checkout from opening to confirmation. It is not safe for
// concurrent use; each checkout owns its session.
type Session struct {
	totalDue decimal.Decimal
	rate     decimal.Decimal
	tender   domain.Tender
	result   domain.Reconciliation
	state    domain.CheckoutState
}

// Open starts a checkout for totalDue at the given rate. Reopening resets every field.
func Open(totalDue, rate decimal.Decimal) (*Session, error) {
	s := &Session{}
	if err := s.Reset(totalDue, rate); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset puts the session back into Idle with cleared tender fields.
func (s *Session) Reset(totalDue, rate decimal.Decimal) error {
	result, err := Reconcile(totalDue, rate, decimal.Zero, decimal.Zero)
	if err != nil {
		return err
	}
	s.totalDue = totalDue
	s.rate = rate
	s.tender = domain.Tender{AmountPrimary: decimal.Zero, AmountSecondary: decimal.Zero}
	s.result = result
	s.state = domain.CheckoutIdle
	return nil
}

// SetPrimary updates the primary tender from raw cashier input and recomputes.
func (s *Session) SetPrimary(raw string) error {
	return s.edit(func(t *domain.Tender) { t.AmountPrimary = ParseAmount(raw) })
}

// SetSecondary updates the secondary tender from raw cashier input and recomputes.
func (s *Session) SetSecondary(raw string) error {
	return s.edit(func(t *domain.Tender) { t.AmountSecondary = ParseAmount(raw) })
}

func (s *Session) edit(apply func(*domain.Tender)) error {
	if s.state == domain.CheckoutConfirmed {
		return fmt.Errorf("%w: checkout already confirmed", apperrors.ErrValidation)
	}
	apply(&s.tender)
	result, err := Reconcile(s.totalDue, s.rate, s.tender.AmountPrimary, s.tender.AmountSecondary)
	if err != nil {
		return err
	}
	s.result = result
	s.state = domain.CheckoutEditing
	return nil
}

// State reports where the checkout stands. Complete wins over Editing once the balance is covered.
func (s *Session) State() domain.CheckoutState {
	if s.state == domain.CheckoutEditing && s.result.IsComplete {
		return domain.CheckoutComplete
	}
	return s.state
}

// StateFor reports the state given the credit designation the cashier has chosen.
func (s *Session) StateFor(isCredit bool, customerName string) domain.CheckoutState {
	st := s.State()
	if st == domain.CheckoutEditing && CanConfirm(s.result, isCredit, customerName) {
		return domain.CheckoutPartialCredit
	}
	return st
}

// Result returns the current reconciliation.
func (s *Session) Result() domain.Reconciliation { return s.result }

// Tender returns the current tender amounts.
func (s *Session) Tender() domain.Tender { return s.tender }

// Confirm finalizes the checkout. It fails unless CanConfirm holds, and is terminal.
func (s *Session) Confirm(method domain.PaymentMethod, isCredit bool, customerName string) (domain.SaleRecord, error) {
	if s.state == domain.CheckoutConfirmed {
		return domain.SaleRecord{}, fmt.Errorf("%w: checkout already confirmed", apperrors.ErrValidation)
	}
	if !CanConfirm(s.result, isCredit, customerName) {
		return domain.SaleRecord{}, fmt.Errorf("%w: payment incomplete; a credit sale needs a customer name", apperrors.ErrValidation)
	}
	sale := Finalize(s.tender, s.result, method, isCredit, customerName)
	s.state = domain.CheckoutConfirmed
	return sale, nil
}
