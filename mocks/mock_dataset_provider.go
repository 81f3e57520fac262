package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hungerguard/internal/domain"
)

// MockDatasetProvider is a mock implementation of port.DatasetProvider.
type MockDatasetProvider struct {
	mock.Mock
}

func (m *MockDatasetProvider) Inventory(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockDatasetProvider) DemandSignals(ctx context.Context) ([]domain.DemandSignal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DemandSignal), args.Error(1)
}

func (m *MockDatasetProvider) Logistics(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockDatasetProvider) StorageFacilities(ctx context.Context) ([]domain.StorageFacility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StorageFacility), args.Error(1)
}

func (m *MockDatasetProvider) Farmers(ctx context.Context) (map[string]domain.Farmer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Farmer), args.Error(1)
}
