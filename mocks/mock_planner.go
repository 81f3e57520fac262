package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hungerguard/internal/port"
)

// MockPlanner is a mock implementation of port.Planner.
type MockPlanner struct {
	mock.Mock
}

func (m *MockPlanner) GeneratePlan(ctx context.Context, input port.PlanInput) (*port.PlanOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.PlanOutput), args.Error(1)
}
