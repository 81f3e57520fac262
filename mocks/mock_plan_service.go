package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hungerguard/internal/domain"
)

// MockPlanService is a mock implementation of service.PlanService.
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) GeneratePlan(ctx context.Context, rawReport string, focus domain.PriorityFocus) *domain.PlanResponse {
	args := m.Called(ctx, rawReport, focus)
	return args.Get(0).(*domain.PlanResponse)
}

func (m *MockPlanService) Drain() {
	m.Called()
}
