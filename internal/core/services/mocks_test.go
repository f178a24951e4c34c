package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindSettings(ctx context.Context) (*domain.ShopSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.ShopSettings, change *domain.ExchangeRateChange) error {
	args := m.Called(ctx, settings, change)
	return args.Error(0)
}

func (m *MockSettingsRepository) ListExchangeRateChanges(ctx context.Context, limit int, before *time.Time) ([]domain.ExchangeRateChange, error) {
	args := m.Called(ctx, limit, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRateChange), args.Error(1)
}

var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

// --- Mock ImportBatchRepository ---
type MockImportBatchRepository struct {
	mock.Mock
}

func (m *MockImportBatchRepository) SaveImportBatch(ctx context.Context, batch domain.ImportBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockImportBatchRepository) ListImportBatches(ctx context.Context, limit int, before *time.Time) ([]domain.ImportBatch, error) {
	args := m.Called(ctx, limit, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportBatch), args.Error(1)
}

var _ portsrepo.ImportBatchRepositoryFacade = (*MockImportBatchRepository)(nil)

// --- Mock backend gateways ---
type MockCatalogGateway struct {
	mock.Mock
}

func (m *MockCatalogGateway) CreateProduct(ctx context.Context, authToken string, product domain.Product) error {
	args := m.Called(ctx, authToken, product)
	return args.Error(0)
}

func (m *MockCatalogGateway) CreatePart(ctx context.Context, authToken string, part domain.Part) error {
	args := m.Called(ctx, authToken, part)
	return args.Error(0)
}

var _ gateways.CatalogGateway = (*MockCatalogGateway)(nil)

type MockTicketGateway struct {
	mock.Mock
}

func (m *MockTicketGateway) CreateTicket(ctx context.Context, authToken string, req domain.TicketRequest) (*domain.Ticket, error) {
	args := m.Called(ctx, authToken, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

var _ gateways.TicketGateway = (*MockTicketGateway)(nil)

type MockFileArchiver struct {
	mock.Mock
}

func (m *MockFileArchiver) Archive(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

var _ gateways.FileArchiver = (*MockFileArchiver)(nil)
