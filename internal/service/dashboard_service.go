package service

import (
	"context"
	"math"
	"time"

	"hungerguard/internal/domain"
	"hungerguard/internal/port"
)

// DashboardService computes monitoring views over the reference datasets.
type DashboardService interface {
	SystemStatus(ctx context.Context) (*domain.SystemStatus, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	InventoryFlow(ctx context.Context) (*domain.InventoryFlow, error)
	NetworkStatus(ctx context.Context) (*domain.NetworkStatus, error)
	WasteReduction(ctx context.Context) (*domain.WasteReduction, error)
}

type dashboardService struct {
	datasets port.DatasetProvider
	now      func() time.Time
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(datasets port.DatasetProvider) DashboardService {
	return &dashboardService{datasets: datasets, now: time.Now}
}

// NewDashboardServiceWithClock creates a DashboardService on a fixed clock.
func NewDashboardServiceWithClock(datasets port.DatasetProvider, now func() time.Time) DashboardService {
	return &dashboardService{datasets: datasets, now: now}
}

func (s *dashboardService) SystemStatus(ctx context.Context) (*domain.SystemStatus, error) {
	totalInventory, totalDemand, err := s.inventoryAndDemand(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.SystemStatus{
		Status:              "operational",
		TotalInventoryKg:    totalInventory,
		TotalDemandCapacity: totalDemand,
		UtilizationRate:     utilizationRate(totalInventory, totalDemand),
		LastUpdated:         s.now().Format(time.RFC3339),
	}, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	totalInventory, totalDemand, err := s.inventoryAndDemand(ctx)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.datasets.Logistics(ctx)
	if err != nil {
		return nil, err
	}
	available := 0
	for _, v := range vehicles {
		if v.Status == domain.VehicleAvailable {
			available++
		}
	}

	facilities, err := s.datasets.StorageFacilities(ctx)
	if err != nil {
		return nil, err
	}
	availableStorage, totalStorage := 0, 0
	for _, f := range facilities {
		availableStorage += f.AvailableKg
		totalStorage += f.CapacityKg
	}

	return &domain.DashboardStats{
		TotalInventoryKg:     totalInventory,
		TotalDemandCapacity:  totalDemand,
		UtilizationRate:      utilizationRate(totalInventory, totalDemand),
		AvailableVehicles:    available,
		TotalVehicles:        len(vehicles),
		AvailableStorageKg:   availableStorage,
		TotalStorageCapacity: totalStorage,
		LastUpdated:          s.now().Format(time.RFC3339),
	}, nil
}

// InventoryFlow returns the simulated weekly in/out/waste series.
func (s *dashboardService) InventoryFlow(_ context.Context) (*domain.InventoryFlow, error) {
	return &domain.InventoryFlow{
		Days:    []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		FoodIn:  []int{2500, 3200, 2800, 3500, 4000, 1800, 2200},
		FoodOut: []int{2200, 2800, 2600, 3000, 3500, 1600, 2000},
		Waste:   []int{150, 200, 120, 180, 220, 100, 130},
	}, nil
}

// NetworkStatus returns the simulated food bank network snapshot.
func (s *dashboardService) NetworkStatus(_ context.Context) (*domain.NetworkStatus, error) {
	return &domain.NetworkStatus{
		Locations:         []string{"Central Food Bank", "North Branch", "South Hub", "East Center", "West Station"},
		CurrentInventory:  []int{2500, 1800, 2200, 1600, 2000},
		DailyDistribution: []int{800, 600, 700, 500, 650},
		SurplusAvailable:  []int{300, 200, 250, 150, 180},
	}, nil
}

// WasteReduction returns the simulated before/after waste series.
func (s *dashboardService) WasteReduction(_ context.Context) (*domain.WasteReduction, error) {
	return &domain.WasteReduction{
		Categories:  []string{"Vegetables", "Fruits", "Dairy", "Meat", "Bakery", "Prepared Meals"},
		WasteBefore: []int{150, 120, 80, 60, 90, 110},
		WasteAfter:  []int{45, 36, 24, 18, 27, 33},
	}, nil
}

func (s *dashboardService) inventoryAndDemand(ctx context.Context) (totalInventory, totalDemand int, err error) {
	items, err := s.datasets.Inventory(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, it := range items {
		totalInventory += it.Quantity
	}

	demands, err := s.datasets.DemandSignals(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, d := range demands {
		totalDemand += d.CapacityKg
	}
	return totalInventory, totalDemand, nil
}

// utilizationRate is inventory as a percentage of demand capacity, rounded
// to two decimals. Zero demand yields zero.
func utilizationRate(inventory, demand int) float64 {
	if demand == 0 {
		return 0
	}
	return math.Round(float64(inventory)/float64(demand)*100*100) / 100
}
