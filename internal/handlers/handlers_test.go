package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/mobilepos_backend/internal/core/ports/services"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
	"github.com/SscSPs/mobilepos_backend/internal/handlers"
	"github.com/SscSPs/mobilepos_backend/internal/platform/config"
	"github.com/SscSPs/mobilepos_backend/internal/utils"
	"github.com/SscSPs/mobilepos_backend/internal/utils/csvimport"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (*domain.ShopSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopSettings), args.Error(1)
}
func (m *MockSettingsService) ListRateHistory(ctx context.Context, limit int, nextToken string) ([]domain.ExchangeRateChange, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.ExchangeRateChange), args.String(1), args.Error(2)
}
func (m *MockSettingsService) SetExchangeRate(ctx context.Context, rate decimal.Decimal, userID string) (*domain.ShopSettings, bool, error) {
	args := m.Called(ctx, rate, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ShopSettings), args.Bool(1), args.Error(2)
}
func (m *MockSettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.ShopSettings, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopSettings), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Mock CheckoutService ---
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Quote(ctx context.Context, req dto.CheckoutQuoteRequest) (*domain.CheckoutQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutQuote), args.Error(1)
}
func (m *MockCheckoutService) Confirm(ctx context.Context, req dto.CheckoutConfirmRequest, userID, authToken string) (*domain.ConfirmedSale, error) {
	args := m.Called(ctx, req, userID, authToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfirmedSale), args.Error(1)
}

var _ portssvc.CheckoutSvc = (*MockCheckoutService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Preview(ctx context.Context, kind domain.EntityKind, fileName string, r io.Reader) (*domain.ImportPreview, error) {
	args := m.Called(ctx, kind, fileName, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportPreview), args.Error(1)
}
func (m *MockImportService) Template(kind domain.EntityKind) domain.ImportTemplate {
	args := m.Called(kind)
	return args.Get(0).(domain.ImportTemplate)
}
func (m *MockImportService) ListBatches(ctx context.Context, limit int, nextToken string) ([]domain.ImportBatch, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.ImportBatch), args.String(1), args.Error(2)
}
func (m *MockImportService) Commit(ctx context.Context, kind domain.EntityKind, req dto.ImportCommitRequest, userID, authToken string) (*domain.BulkCreateResult, error) {
	args := m.Called(ctx, kind, req, userID, authToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkCreateResult), args.Error(1)
}

var _ portssvc.ImportSvcFacade = (*MockImportService)(nil)

// --- Test Suite Setup ---
type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	jwtSecret    string
	mockSettings *MockSettingsService
	mockCheckout *MockCheckoutService
	mockImport   *MockImportService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockSettings = new(MockSettingsService)
	suite.mockCheckout = new(MockCheckoutService)
	suite.mockImport = new(MockImportService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	services := &portssvc.ServiceContainer{
		Settings: suite.mockSettings,
		Checkout: suite.mockCheckout,
		Import:   suite.mockImport,
	}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, services, nil))
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockSettings.AssertExpectations(suite.T())
	suite.mockCheckout.AssertExpectations(suite.T())
	suite.mockImport.AssertExpectations(suite.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) token(userID, role string) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, body)
	suite.Require().NoError(err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) doJSON(method, path, token string, payload any) *httptest.ResponseRecorder {
	data, err := json.Marshal(payload)
	suite.Require().NoError(err)
	return suite.do(method, path, token, bytes.NewReader(data), "application/json")
}

func defaultSettings() *domain.ShopSettings {
	s := domain.DefaultShopSettings()
	return &s
}

// --- Health & auth ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMissingToken_Unauthorized() {
	w := suite.do(http.MethodGet, "/api/v1/settings", "", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestExpiredToken_Unauthorized() {
	token, err := utils.GenerateJWT("user-1", utils.RoleAdmin, suite.jwtSecret, -time.Minute, "test")
	suite.Require().NoError(err)

	w := suite.do(http.MethodGet, "/api/v1/settings", token, nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Token has expired")
}

// --- Settings ---

func (suite *HandlerTestSuite) TestGetSettings_Success() {
	suite.mockSettings.On("GetSettings", mock.Anything).Return(defaultSettings(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/settings", suite.token("user-1", utils.RoleCashier), nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SettingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("es", resp.Language)
	suite.True(resp.ExchangeRate.Equal(decimal.RequireFromString("45.50")))
}

func (suite *HandlerTestSuite) TestSetExchangeRate_RequiresAdmin() {
	w := suite.doJSON(http.MethodPut, "/api/v1/settings/exchange-rate", suite.token("user-1", utils.RoleCashier), map[string]any{"rate": 50})
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestSetExchangeRate_NotApplied() {
	current := defaultSettings()
	suite.mockSettings.On("SetExchangeRate", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool { return d.IsZero() }), "admin-1").
		Return(current, false, nil).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/settings/exchange-rate", suite.token("admin-1", utils.RoleAdmin), map[string]any{"rate": 0})
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SetExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Applied)
	suite.True(resp.Settings.ExchangeRate.Equal(current.ExchangeRate))
}

func (suite *HandlerTestSuite) TestUpdateSettings_BindingRejectsLanguage() {
	w := suite.doJSON(http.MethodPut, "/api/v1/settings", suite.token("admin-1", utils.RoleAdmin), map[string]any{"language": "fr"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListRateHistory_PassesPaging() {
	changes := []domain.ExchangeRateChange{{ExchangeRateID: "r1", Rate: decimal.NewFromInt(40), SetAt: time.Now().UTC(), SetBy: "admin-1"}}
	suite.mockSettings.On("ListRateHistory", mock.Anything, 5, "abc").Return(changes, "next", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/settings/exchange-rate/history?limit=5&nextToken=abc", suite.token("user-1", utils.RoleCashier), nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListExchangeRateHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Changes, 1)
	suite.Equal("next", resp.NextToken)
}

// --- Checkout ---

func (suite *HandlerTestSuite) TestQuote_Success() {
	quote := &domain.CheckoutQuote{
		ExchangeRate: decimal.NewFromInt(40),
		Reconciliation: domain.Reconciliation{
			TotalDuePrimary:        decimal.NewFromInt(100),
			TotalDueSecondary:      decimal.NewFromInt(4000),
			PaidPrimary:            decimal.NewFromInt(30),
			PaidSecondaryInPrimary: decimal.NewFromInt(25),
			TotalPaidPrimary:       decimal.NewFromInt(55),
			RemainingPrimary:       decimal.NewFromInt(45),
			RemainingSecondary:     decimal.NewFromInt(1800),
		},
		State: domain.CheckoutEditing,
	}
	suite.mockCheckout.On("Quote", mock.Anything, mock.MatchedBy(func(r dto.CheckoutQuoteRequest) bool {
		return r.TotalDue.Equal(decimal.NewFromInt(100)) && string(r.TenderedPrimary) == "30" && string(r.TenderedSecondary) == "1000"
	})).Return(quote, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/checkout/quote", suite.token("user-1", utils.RoleCashier),
		map[string]any{"totalDue": 100, "tenderedPrimary": "30", "tenderedSecondary": 1000})
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CheckoutQuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.RemainingPrimary.Equal(decimal.NewFromInt(45)))
	suite.False(resp.CanConfirm)
	suite.Equal(domain.CheckoutEditing, resp.State)
}

func (suite *HandlerTestSuite) TestQuote_NegativeTotalRejectedByBinding() {
	w := suite.doJSON(http.MethodPost, "/api/v1/checkout/quote", suite.token("user-1", utils.RoleCashier), map[string]any{"totalDue": -1})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestQuote_DivisionByZero() {
	suite.mockCheckout.On("Quote", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDivisionByZero).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/checkout/quote", suite.token("user-1", utils.RoleCashier), map[string]any{"totalDue": 10})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func confirmBody() map[string]any {
	return map[string]any{
		"totalDue":          100,
		"tenderedPrimary":   "30",
		"tenderedSecondary": "1000",
		"isCredit":          true,
		"customerName":      "Juan Perez",
		"items":             []map[string]any{{"productId": 1, "quantity": 2}},
	}
}

func (suite *HandlerTestSuite) TestConfirm_CreditSale() {
	token := suite.token("user-1", utils.RoleCashier)
	sale := &domain.ConfirmedSale{
		ExchangeRate: decimal.NewFromInt(40),
		Sale: domain.SaleRecord{
			TenderedPrimary:   decimal.NewFromInt(30),
			TenderedSecondary: decimal.NewFromInt(1000),
			Method:            domain.PaymentMixed,
			CustomerName:      "Juan Perez",
			IsCredit:          true,
		},
		Ticket: domain.Ticket{ID: "T-1"},
	}
	suite.mockCheckout.On("Confirm", mock.Anything, mock.MatchedBy(func(r dto.CheckoutConfirmRequest) bool {
		return r.IsCredit && len(r.Items) == 1 && r.Items[0].Quantity == 2
	}), "user-1", token).Return(sale, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/checkout/confirm", token, confirmBody())
	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CheckoutConfirmResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("T-1", resp.TicketID)
	suite.Equal(domain.PaymentPending, resp.PaymentStatus)
}

func (suite *HandlerTestSuite) TestConfirm_RequiresItems() {
	body := confirmBody()
	delete(body, "items")
	w := suite.doJSON(http.MethodPost, "/api/v1/checkout/confirm", suite.token("user-1", utils.RoleCashier), body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestConfirm_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not confirmable", fmt.Errorf("%w: sale cannot be confirmed", apperrors.ErrValidation), http.StatusBadRequest},
		{"backend rejected", fmt.Errorf("failed to create ticket: %w", fmt.Errorf("%w: Product not found", apperrors.ErrUpstream)), http.StatusBadGateway},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockCheckout.On("Confirm", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := suite.doJSON(http.MethodPost, "/api/v1/checkout/confirm", suite.token("user-1", utils.RoleCashier), confirmBody())
			suite.Equal(tt.status, w.Code)
			if tt.status == http.StatusBadGateway {
				suite.Contains(w.Body.String(), "Product not found")
			}
			if tt.status == http.StatusInternalServerError {
				suite.NotContains(w.Body.String(), "boom")
			}
		})
	}
}

// --- Imports ---

func (suite *HandlerTestSuite) TestTemplate_Download() {
	tpl := domain.ImportTemplate{FileName: "plantilla_partes.csv", Content: csvimport.TemplateBytes(domain.EntityPart)}
	suite.mockImport.On("Template", domain.EntityPart).Return(tpl).Once()

	w := suite.do(http.MethodGet, "/api/v1/imports/parts/template", suite.token("user-1", utils.RoleCashier), nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="plantilla_partes.csv"`, w.Header().Get("Content-Disposition"))
	suite.Equal(tpl.Content, w.Body.Bytes())
}

func (suite *HandlerTestSuite) TestTemplate_UnknownKind() {
	w := suite.do(http.MethodGet, "/api/v1/imports/tickets/template", suite.token("user-1", utils.RoleCashier), nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func multipartFile(name, content string) (io.Reader, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", name)
	_, _ = fw.Write([]byte(content))
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

func sampleProductsPreview() *domain.ImportPreview {
	result, _ := csvimport.ParseAndValidate("nombre,marca,stock,precio\nA,B,1,2\n,B,x,2", domain.EntityProduct)
	return &domain.ImportPreview{FileName: "p.csv", Result: result}
}

func (suite *HandlerTestSuite) TestPreview_JSON() {
	suite.mockImport.On("Preview", mock.Anything, domain.EntityProduct, "p.csv", mock.Anything).Return(sampleProductsPreview(), nil).Once()

	body, ct := multipartFile("p.csv", "ignored")
	w := suite.do(http.MethodPost, "/api/v1/imports/products/preview", suite.token("user-1", utils.RoleCashier), body, ct)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ImportPreviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.ValidCount)
	suite.Equal(1, resp.InvalidCount)
	suite.Len(resp.Rows, 2)
	suite.Len(resp.Summary, 1)
	suite.Contains(resp.Summary[0], "Fila 3")
}

func (suite *HandlerTestSuite) TestPreview_XLSXReport() {
	suite.mockImport.On("Preview", mock.Anything, domain.EntityProduct, "p.csv", mock.Anything).Return(sampleProductsPreview(), nil).Once()

	body, ct := multipartFile("p.csv", "ignored")
	w := suite.do(http.MethodPost, "/api/v1/imports/products/preview?format=xlsx", suite.token("user-1", utils.RoleCashier), body, ct)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	// xlsx files are zip archives
	suite.Equal([]byte("PK"), w.Body.Bytes()[:2])
}

func (suite *HandlerTestSuite) TestPreview_ExcelRejected() {
	err := fmt.Errorf("%w: solo CSV", apperrors.ErrUnsupportedFileType)
	suite.mockImport.On("Preview", mock.Anything, domain.EntityProduct, "p.xlsx", mock.Anything).Return(nil, err).Once()

	body, ct := multipartFile("p.xlsx", "x")
	w := suite.do(http.MethodPost, "/api/v1/imports/products/preview", suite.token("user-1", utils.RoleCashier), body, ct)
	suite.Equal(http.StatusUnsupportedMediaType, w.Code)
}

func (suite *HandlerTestSuite) TestPreview_MissingFile() {
	w := suite.do(http.MethodPost, "/api/v1/imports/products/preview", suite.token("user-1", utils.RoleCashier), nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func commitBody() map[string]any {
	return map[string]any{
		"fileName": "p.csv",
		"products": []map[string]any{
			{"name": "A", "brand": "B", "stock": 1, "price": "2"},
			{"name": "C", "brand": "D", "stock": 0, "price": "3.5"},
		},
	}
}

func (suite *HandlerTestSuite) TestCommit_RequiresAdmin() {
	w := suite.doJSON(http.MethodPost, "/api/v1/imports/products/commit", suite.token("user-1", utils.RoleCashier), commitBody())
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCommit_Success() {
	token := suite.token("admin-1", utils.RoleAdmin)
	result := &domain.BulkCreateResult{ImportBatchID: "b1", Attempted: 2, Created: 2}
	suite.mockImport.On("Commit", mock.Anything, domain.EntityProduct, mock.MatchedBy(func(r dto.ImportCommitRequest) bool {
		return len(r.Products) == 2 && r.Products[1].Name == "C"
	}), "admin-1", token).Return(result, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/imports/products/commit", token, commitBody())
	suite.Equal(http.StatusCreated, w.Code)

	var resp domain.BulkCreateResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Created)
}

func (suite *HandlerTestSuite) TestCommit_StopsWithPartialResult() {
	result := &domain.BulkCreateResult{Attempted: 2, Created: 1, FailedRow: 2, Error: "duplicate"}
	err := fmt.Errorf("row 2 of 2: %w", fmt.Errorf("%w: duplicate", apperrors.ErrUpstream))
	suite.mockImport.On("Commit", mock.Anything, domain.EntityProduct, mock.Anything, "admin-1", mock.Anything).Return(result, err).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/imports/products/commit", suite.token("admin-1", utils.RoleAdmin), commitBody())
	suite.Equal(http.StatusBadGateway, w.Code)

	var resp struct {
		Error  string                  `json:"error"`
		Result domain.BulkCreateResult `json:"result"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Result.Created)
	suite.Equal(2, resp.Result.FailedRow)
	suite.Contains(resp.Error, "row 2 of 2")
}

func (suite *HandlerTestSuite) TestListBatches() {
	batches := []domain.ImportBatch{{ImportBatchID: "b1", Kind: domain.EntityPart, Status: domain.ImportBatchCompleted}}
	suite.mockImport.On("ListBatches", mock.Anything, 0, "").Return(batches, "", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/imports/batches", suite.token("user-1", utils.RoleCashier), nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListImportBatchesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Batches, 1)
	suite.Equal("b1", resp.Batches[0].ImportBatchID)
}
