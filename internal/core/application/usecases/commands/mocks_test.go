package commands_test

import (
	"context"

	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Districts(ctx context.Context) ([]*network.District, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*network.District), args.Error(1)
}

func (m *MockCatalogRepository) Locations(ctx context.Context) ([]*network.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*network.Location), args.Error(1)
}

func (m *MockCatalogRepository) DeliveryCategories(ctx context.Context) ([]*network.DeliveryCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*network.DeliveryCategory), args.Error(1)
}

func (m *MockCatalogRepository) Orders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockCatalogRepository) Deliveries(ctx context.Context) (*delivery.Ledger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Ledger), args.Error(1)
}

func (m *MockCatalogRepository) SaveDeliveries(ctx context.Context, ledger *delivery.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockCatalogRepository) Import(ctx context.Context, collection ports.Collection, raw []byte) (int, error) {
	args := m.Called(ctx, collection, raw)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) Export(ctx context.Context, collection ports.Collection) (string, error) {
	args := m.Called(ctx, collection)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogRepository) SchemaVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogRepository) SetSchemaVersion(ctx context.Context, version string) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}
