package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hungerguard/internal/dataset"
	"hungerguard/internal/service"
)

var dashboardClock = func() time.Time {
	return time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)
}

func TestDashboardService_SystemStatus(t *testing.T) {
	svc := service.NewDashboardServiceWithClock(dataset.NewMemoryProvider(), dashboardClock)

	status, err := svc.SystemStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "operational", status.Status)
	assert.Equal(t, 1000, status.TotalInventoryKg)
	assert.Equal(t, 1150, status.TotalDemandCapacity)
	assert.Equal(t, 86.96, status.UtilizationRate)
	assert.Equal(t, "2024-05-12T09:30:00Z", status.LastUpdated)
}

func TestDashboardService_Stats(t *testing.T) {
	svc := service.NewDashboardServiceWithClock(dataset.NewMemoryProvider(), dashboardClock)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1000, stats.TotalInventoryKg)
	assert.Equal(t, 1150, stats.TotalDemandCapacity)
	assert.Equal(t, 86.96, stats.UtilizationRate)
	assert.Equal(t, 3, stats.AvailableVehicles)
	assert.Equal(t, 4, stats.TotalVehicles)
	assert.Equal(t, 4000, stats.AvailableStorageKg)
	assert.Equal(t, 6500, stats.TotalStorageCapacity)
}

func TestDashboardService_ChartSeriesShape(t *testing.T) {
	svc := service.NewDashboardService(dataset.NewMemoryProvider())
	ctx := context.Background()

	flow, err := svc.InventoryFlow(ctx)
	require.NoError(t, err)
	assert.Len(t, flow.Days, 7)
	assert.Len(t, flow.FoodIn, 7)
	assert.Len(t, flow.FoodOut, 7)
	assert.Len(t, flow.Waste, 7)

	network, err := svc.NetworkStatus(ctx)
	require.NoError(t, err)
	assert.Len(t, network.Locations, 5)
	assert.Len(t, network.CurrentInventory, 5)
	assert.Len(t, network.DailyDistribution, 5)
	assert.Len(t, network.SurplusAvailable, 5)

	reduction, err := svc.WasteReduction(ctx)
	require.NoError(t, err)
	assert.Len(t, reduction.Categories, 6)
	assert.Len(t, reduction.WasteBefore, 6)
	assert.Len(t, reduction.WasteAfter, 6)
}
