package dataset

import (
	"context"

	"hungerguard/internal/domain"
)

// MemoryProvider serves the fixed reference datasets from memory. It
// implements port.DatasetProvider and returns defensive copies so callers
// can never mutate the backing tables.
type MemoryProvider struct{}

// NewMemoryProvider creates the in-memory reference dataset provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{}
}

var inventory = []domain.InventoryItem{
	{ID: 1, Location: "Farm Co. (Chennai)", Item: "Tomatoes", Quantity: 200, Unit: domain.UnitKg, Perishability: "high", RecordedDate: "2023-09-20", PricePerUnit: 15, FarmerID: "F1001"},
	{ID: 2, Location: "Dairy Central (Chennai)", Item: "Milk", Quantity: 150, Unit: domain.UnitL, Perishability: "high", RecordedDate: "2023-09-25", PricePerUnit: 40, FarmerID: "D2001"},
	{ID: 3, Location: "Warehouse A (Chennai)", Item: "Potatoes", Quantity: 500, Unit: domain.UnitKg, Perishability: "low", RecordedDate: "2023-09-10", PricePerUnit: 20, FarmerID: "F1002"},
	{ID: 4, Location: "Urban Market (Chennai)", Item: "Apples", Quantity: 50, Unit: domain.UnitKg, Perishability: "medium", RecordedDate: "2023-09-23", PricePerUnit: 80, FarmerID: "F1003"},
	{ID: 5, Location: "Fishery Port (Chennai)", Item: "Fresh Fish", Quantity: 100, Unit: domain.UnitKg, Perishability: "very_high", RecordedDate: "2023-09-26", PricePerUnit: 120, FarmerID: "F3001"},
}

var demands = []domain.DemandSignal{
	{ID: 1, Location: "Downtown Kitchen (Chennai)", Needs: []string{"Fresh produce", "dairy"}, Urgency: "high", CapacityKg: 300, PopulationServed: 200, LastDelivery: "2023-09-23"},
	{ID: 2, Location: "Northside Shelter (Chennai)", Needs: []string{"Any food"}, Urgency: "medium", CapacityKg: 500, PopulationServed: 150, LastDelivery: "2023-09-20"},
	{ID: 3, Location: "Community Center B (Chennai)", Needs: []string{"Non-perishable goods"}, Urgency: "low", CapacityKg: 200, PopulationServed: 100, LastDelivery: "2023-09-25"},
	{ID: 4, Location: "Rural School Program (Kanchipuram)", Needs: []string{"Nutritious food", "fruits"}, Urgency: "high", CapacityKg: 150, PopulationServed: 120, LastDelivery: "2023-09-18"},
}

var vehicles = []domain.Vehicle{
	{ID: 1, VehicleType: "Refrigerated Truck", CapacityKg: 1000, Location: "Chennai Central", Status: domain.VehicleAvailable, CostPerKm: 15, CO2PerKm: 0.8},
	{ID: 2, VehicleType: "Small Van", CapacityKg: 300, Location: "North Chennai", Status: domain.VehicleAvailable, CostPerKm: 8, CO2PerKm: 0.4},
	{ID: 3, VehicleType: "Refrigerated Truck", CapacityKg: 1200, Location: "South Chennai", Status: domain.VehicleMaintenance, CostPerKm: 18, CO2PerKm: 0.9},
	{ID: 4, VehicleType: "Pickup Truck", CapacityKg: 500, Location: "West Chennai", Status: domain.VehicleAvailable, CostPerKm: 10, CO2PerKm: 0.5},
}

var storage = []domain.StorageFacility{
	{ID: 1, Location: "Cold Storage A (Chennai)", CapacityKg: 2000, AvailableKg: 800, Temperature: "2°C", CostPerDayPerKg: 0.5},
	{ID: 2, Location: "Cold Storage B (Chennai)", CapacityKg: 1500, AvailableKg: 1200, Temperature: "4°C", CostPerDayPerKg: 0.4},
	{ID: 3, Location: "Warehouse C (Chennai)", CapacityKg: 3000, AvailableKg: 2000, Temperature: "ambient", CostPerDayPerKg: 0.2},
}

var farmers = map[string]domain.Farmer{
	"F1001": {Name: "Raj Kumar", Location: "Chennai", YearsFarming: 12, EconomicStatus: "struggling", LastMonthIncome: 15000},
	"F1002": {Name: "Vijay Singh", Location: "Kanchipuram", YearsFarming: 8, EconomicStatus: "moderate", LastMonthIncome: 25000},
	"F1003": {Name: "Priya Patel", Location: "Vellore", YearsFarming: 5, EconomicStatus: "struggling", LastMonthIncome: 12000},
	"D2001": {Name: "Milk Cooperative", Location: "Chennai", YearsFarming: 20, EconomicStatus: "stable", LastMonthIncome: 80000},
	"F3001": {Name: "Fisherman Cooperative", Location: "Chennai Coast", YearsFarming: 15, EconomicStatus: "moderate", LastMonthIncome: 45000},
}

func (p *MemoryProvider) Inventory(_ context.Context) ([]domain.InventoryItem, error) {
	return append([]domain.InventoryItem(nil), inventory...), nil
}

func (p *MemoryProvider) DemandSignals(_ context.Context) ([]domain.DemandSignal, error) {
	out := make([]domain.DemandSignal, len(demands))
	for i, d := range demands {
		d.Needs = append([]string(nil), d.Needs...)
		out[i] = d
	}
	return out, nil
}

func (p *MemoryProvider) Logistics(_ context.Context) ([]domain.Vehicle, error) {
	return append([]domain.Vehicle(nil), vehicles...), nil
}

func (p *MemoryProvider) StorageFacilities(_ context.Context) ([]domain.StorageFacility, error) {
	return append([]domain.StorageFacility(nil), storage...), nil
}

func (p *MemoryProvider) Farmers(_ context.Context) (map[string]domain.Farmer, error) {
	out := make(map[string]domain.Farmer, len(farmers))
	for id, f := range farmers {
		out[id] = f
	}
	return out, nil
}
