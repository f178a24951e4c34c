package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/mobilepos_backend/internal/core/ports/services"
	"github.com/SscSPs/mobilepos_backend/internal/core/services"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CheckoutServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockSettingsRepository
	mockTickets *MockTicketGateway
	service     portssvc.CheckoutSvc
}

func (suite *CheckoutServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.mockTickets = new(MockTicketGateway)
	suite.service = services.NewCheckoutService(services.NewSettingsService(suite.mockRepo), suite.mockTickets)
}

func TestCheckoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func quoteReq(total, primary, secondary string) dto.CheckoutQuoteRequest {
	return dto.CheckoutQuoteRequest{
		TotalDue:          dec(total),
		TenderedPrimary:   dto.RawAmount(primary),
		TenderedSecondary: dto.RawAmount(secondary),
	}
}

func (suite *CheckoutServiceTestSuite) TestQuote_UsesShopRate() {
	ctx := context.Background()
	suite.mockRepo.On("FindSettings", ctx).Return(storedSettings("40"), nil).Once()

	q, err := suite.service.Quote(ctx, quoteReq("100", "30", "1000"))

	suite.Require().NoError(err)
	r := q.Reconciliation
	suite.True(q.ExchangeRate.Equal(dec("40")))
	suite.True(r.PaidSecondaryInPrimary.Equal(dec("25")))
	suite.True(r.TotalPaidPrimary.Equal(dec("55")))
	suite.True(r.RemainingPrimary.Equal(dec("45")))
	suite.True(r.RemainingSecondary.Equal(dec("1800")))
	suite.False(r.IsComplete)
	suite.False(q.CanConfirm)
	suite.Equal(domain.CheckoutEditing, q.State)
}

func (suite *CheckoutServiceTestSuite) TestQuote_OverrideRateSkipsSettings() {
	rate := dec("50")
	req := quoteReq("20", "", "1000")
	req.ExchangeRate = &rate

	q, err := suite.service.Quote(context.Background(), req)

	suite.Require().NoError(err)
	suite.True(q.Reconciliation.IsComplete)
	suite.True(q.CanConfirm)
	suite.Equal(domain.CheckoutComplete, q.State)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindSettings", mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestQuote_ChangeDue() {
	rate := dec("40")
	req := quoteReq("10", "20", "")
	req.ExchangeRate = &rate

	q, err := suite.service.Quote(context.Background(), req)

	suite.Require().NoError(err)
	suite.True(q.Reconciliation.IsChange)
	changePrimary, changeSecondary := q.Reconciliation.Change()
	suite.True(changePrimary.Equal(dec("10")))
	suite.True(changeSecondary.Equal(dec("400")))
}

func (suite *CheckoutServiceTestSuite) TestQuote_PartialCreditState() {
	ctx := context.Background()
	suite.mockRepo.On("FindSettings", ctx).Return(storedSettings("40"), nil).Once()
	req := quoteReq("100", "30", "1000")
	req.IsCredit = true
	req.CustomerName = "Juan Perez"

	q, err := suite.service.Quote(ctx, req)

	suite.Require().NoError(err)
	suite.True(q.CanConfirm)
	suite.Equal(domain.CheckoutPartialCredit, q.State)
}

func (suite *CheckoutServiceTestSuite) TestQuote_NonPositiveRate() {
	rate := decimal.Zero
	req := quoteReq("10", "", "")
	req.ExchangeRate = &rate

	_, err := suite.service.Quote(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrDivisionByZero)
}

func confirmReq(isCredit bool, customer string) dto.CheckoutConfirmRequest {
	req := dto.CheckoutConfirmRequest{
		CheckoutQuoteRequest: quoteReq("100", "30", "1000"),
		Items:                []dto.TicketItemRequest{{ProductID: 7, Quantity: 1}},
	}
	req.IsCredit = isCredit
	req.CustomerName = customer
	return req
}

func (suite *CheckoutServiceTestSuite) TestConfirm_CreditSaleIsPending() {
	ctx := context.Background()
	suite.mockRepo.On("FindSettings", ctx).Return(storedSettings("40"), nil).Once()
	suite.mockTickets.On("CreateTicket", ctx, "tok", mock.MatchedBy(func(r domain.TicketRequest) bool {
		return r.PaymentStatus == domain.PaymentPending &&
			r.PaymentMethod == domain.PaymentMixed &&
			r.CustomerName == "Juan Perez" &&
			r.AmountUSD.Equal(dec("30")) &&
			r.AmountVES.Equal(dec("1000")) &&
			r.ExchangeRate.Equal(dec("40")) &&
			len(r.Items) == 1 && r.Items[0].ProductID == 7
	})).Return(&domain.Ticket{ID: "T-9"}, nil).Once()

	sale, err := suite.service.Confirm(ctx, confirmReq(true, "Juan Perez"), "user-1", "tok")

	suite.Require().NoError(err)
	suite.Equal("T-9", sale.Ticket.ID)
	suite.True(sale.Sale.IsCredit)
	suite.Equal(domain.PaymentPending, sale.Sale.PaymentStatus())
	suite.mockTickets.AssertNumberOfCalls(suite.T(), "CreateTicket", 1)
}

func (suite *CheckoutServiceTestSuite) TestConfirm_CompleteSaleIsPaidWithDefaultCustomer() {
	ctx := context.Background()
	suite.mockRepo.On("FindSettings", ctx).Return(storedSettings("40"), nil).Once()
	req := confirmReq(true, "")
	req.TenderedPrimary = "100"
	req.TenderedSecondary = ""
	req.PaymentMethod = domain.PaymentCash
	suite.mockTickets.On("CreateTicket", ctx, "tok", mock.MatchedBy(func(r domain.TicketRequest) bool {
		return r.PaymentStatus == domain.PaymentPaid && r.CustomerName == domain.DefaultCustomerName && r.PaymentMethod == domain.PaymentCash
	})).Return(&domain.Ticket{ID: "T-10"}, nil).Once()

	sale, err := suite.service.Confirm(ctx, req, "user-1", "tok")

	suite.Require().NoError(err)
	suite.False(sale.Sale.IsCredit)
	suite.mockTickets.AssertExpectations(suite.T())
}

func (suite *CheckoutServiceTestSuite) TestConfirm_IncompleteWithoutCreditIsRejected() {
	tests := []struct {
		name     string
		isCredit bool
		customer string
	}{
		{"not credit", false, "Juan Perez"},
		{"credit without customer", true, "   "},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			ctx := context.Background()
			suite.mockRepo.On("FindSettings", ctx).Return(storedSettings("40"), nil).Once()

			_, err := suite.service.Confirm(ctx, confirmReq(tt.isCredit, tt.customer), "user-1", "tok")

			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockTickets.AssertNotCalled(suite.T(), "CreateTicket", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestConfirm_BackendFailurePropagates() {
	ctx := context.Background()
	suite.mockRepo.On("FindSettings", ctx).Return(storedSettings("40"), nil).Once()
	upstream := fmt.Errorf("%w: Product not found", apperrors.ErrUpstream)
	suite.mockTickets.On("CreateTicket", ctx, "tok", mock.Anything).Return(nil, upstream).Once()

	_, err := suite.service.Confirm(ctx, confirmReq(true, "Juan Perez"), "user-1", "tok")

	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.Contains(err.Error(), "Product not found")
	suite.mockTickets.AssertNumberOfCalls(suite.T(), "CreateTicket", 1)
}
