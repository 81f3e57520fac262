package domain

// PriorityFocus selects which fixed allocation-percentage template a plan
// renders. The raw request value is kept verbatim for display; anything other
// than the two named focuses renders the balanced template.
type PriorityFocus string

const (
	FocusHungerRelief  PriorityFocus = "hunger_relief"
	FocusFarmerSupport PriorityFocus = "farmer_support"
	FocusBalanced      PriorityFocus = "all"
)

// Unit is the quantity unit of a surplus entry.
type Unit string

const (
	UnitKg Unit = "kg"
	UnitL  Unit = "L"
)

// VehicleStatus represents the availability of a logistics vehicle.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleMaintenance VehicleStatus = "maintenance"
)
