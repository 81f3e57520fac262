package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hungerguard/internal/port"
)

// MockPlanRecorder is a mock implementation of port.PlanRecorder.
type MockPlanRecorder struct {
	mock.Mock
}

func (m *MockPlanRecorder) Record(ctx context.Context, rec *port.PlanRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockPlanRecorder) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
