package domain

// SurplusItem is one recognized food item extracted from a raw report.
type SurplusItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Unit      Unit   `json:"unit"`
	UnitPrice int    `json:"unit_price"`
}

// Value returns the estimated market value of the entry in rupees.
func (s SurplusItem) Value() int {
	return s.Quantity * s.UnitPrice
}

// ImpactMetrics holds the derived impact numbers for an allocation plan.
type ImpactMetrics struct {
	PeopleServed        int     `json:"people_served"`
	FoodSavedKg         int     `json:"food_saved_kg"`
	EconomicValueRupees int     `json:"economic_value_rupees"`
	EmissionsSavedKg    float64 `json:"emissions_saved_kg"`
	WaterSavedLiters    int     `json:"water_saved_liters"`
}

// AllocationPlan is a rendered distribution plan together with the impact
// numbers computed during composition. Text includes the trailing
// "Summary:" line.
type AllocationPlan struct {
	Text    string
	Metrics ImpactMetrics
}

// PlanResponse is the POST /generate_plan response body.
type PlanResponse struct {
	AllocationPlan  string        `json:"allocation_plan"`
	HumanSummary    string        `json:"human_summary"`
	EstimatedImpact ImpactMetrics `json:"estimated_impact"`
}

// InventoryItem is one surplus lot at a farm, market, or warehouse.
type InventoryItem struct {
	ID            int    `json:"id"`
	Location      string `json:"location"`
	Item          string `json:"item"`
	Quantity      int    `json:"quantity"`
	Unit          Unit   `json:"unit"`
	Perishability string `json:"perishability"`
	RecordedDate  string `json:"recorded_date"`
	PricePerUnit  int    `json:"price_per_unit"`
	FarmerID      string `json:"farmer_id"`
}

// DemandSignal is a community's standing food need.
type DemandSignal struct {
	ID               int      `json:"id"`
	Location         string   `json:"location"`
	Needs            []string `json:"needs"`
	Urgency          string   `json:"urgency"`
	CapacityKg       int      `json:"capacity_kg"`
	PopulationServed int      `json:"population_served"`
	LastDelivery     string   `json:"last_delivery"`
}

// Vehicle is a transport option in the logistics pool.
type Vehicle struct {
	ID          int           `json:"id"`
	VehicleType string        `json:"vehicle_type"`
	CapacityKg  int           `json:"capacity_kg"`
	Location    string        `json:"location"`
	Status      VehicleStatus `json:"status"`
	CostPerKm   int           `json:"cost_per_km"`
	CO2PerKm    float64       `json:"co2_per_km"`
}

// StorageFacility is a cold-storage or ambient warehouse option.
type StorageFacility struct {
	ID              int     `json:"id"`
	Location        string  `json:"location"`
	CapacityKg      int     `json:"capacity_kg"`
	AvailableKg     int     `json:"available_kg"`
	Temperature     string  `json:"temperature"`
	CostPerDayPerKg float64 `json:"cost_per_day_per_kg"`
}

// Farmer holds a supplier's economic profile.
type Farmer struct {
	Name            string `json:"name"`
	Location        string `json:"location"`
	YearsFarming    int    `json:"years_farming"`
	EconomicStatus  string `json:"economic_status"`
	LastMonthIncome int    `json:"last_month_income"`
}

// SystemStatus is the GET /system_status response body.
type SystemStatus struct {
	Status              string  `json:"status"`
	TotalInventoryKg    int     `json:"total_inventory_kg"`
	TotalDemandCapacity int     `json:"total_demand_capacity"`
	UtilizationRate     float64 `json:"utilization_rate"`
	LastUpdated         string  `json:"last_updated"`
}

// DashboardStats is the GET /dashboard/stats response body.
type DashboardStats struct {
	TotalInventoryKg     int     `json:"total_inventory_kg"`
	TotalDemandCapacity  int     `json:"total_demand_capacity"`
	UtilizationRate      float64 `json:"utilization_rate"`
	AvailableVehicles    int     `json:"available_vehicles"`
	TotalVehicles        int     `json:"total_vehicles"`
	AvailableStorageKg   int     `json:"available_storage_kg"`
	TotalStorageCapacity int     `json:"total_storage_capacity"`
	LastUpdated          string  `json:"last_updated"`
}

// InventoryFlow is the weekly in/out/waste series for dashboard charts.
type InventoryFlow struct {
	Days    []string `json:"days"`
	FoodIn  []int    `json:"food_in"`
	FoodOut []int    `json:"food_out"`
	Waste   []int    `json:"waste"`
}

// NetworkStatus is the food bank network snapshot for dashboard charts.
type NetworkStatus struct {
	Locations         []string `json:"locations"`
	CurrentInventory  []int    `json:"current_inventory"`
	DailyDistribution []int    `json:"daily_distribution"`
	SurplusAvailable  []int    `json:"surplus_available"`
}

// WasteReduction is the before/after waste series by category.
type WasteReduction struct {
	Categories  []string `json:"categories"`
	WasteBefore []int    `json:"waste_before"`
	WasteAfter  []int    `json:"waste_after"`
}
