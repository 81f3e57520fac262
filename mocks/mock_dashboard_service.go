package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hungerguard/internal/domain"
)

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) SystemStatus(ctx context.Context) (*domain.SystemStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemStatus), args.Error(1)
}

func (m *MockDashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockDashboardService) InventoryFlow(ctx context.Context) (*domain.InventoryFlow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryFlow), args.Error(1)
}

func (m *MockDashboardService) NetworkStatus(ctx context.Context) (*domain.NetworkStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkStatus), args.Error(1)
}

func (m *MockDashboardService) WasteReduction(ctx context.Context) (*domain.WasteReduction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WasteReduction), args.Error(1)
}
