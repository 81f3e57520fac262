package port

import (
	"context"

	"hungerguard/internal/domain"
)

// DatasetProvider exposes the read-only reference datasets backing the
// dashboard endpoints. Implementations must return data safe to mutate by
// the caller.
type DatasetProvider interface {
	Inventory(ctx context.Context) ([]domain.InventoryItem, error)
	DemandSignals(ctx context.Context) ([]domain.DemandSignal, error)
	Logistics(ctx context.Context) ([]domain.Vehicle, error)
	StorageFacilities(ctx context.Context) ([]domain.StorageFacility, error)
	Farmers(ctx context.Context) (map[string]domain.Farmer, error)
}
