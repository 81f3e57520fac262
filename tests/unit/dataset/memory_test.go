package dataset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hungerguard/internal/dataset"
)

func TestMemoryProvider_Tables(t *testing.T) {
	p := dataset.NewMemoryProvider()
	ctx := context.Background()

	inventory, err := p.Inventory(ctx)
	require.NoError(t, err)
	assert.Len(t, inventory, 5)

	demands, err := p.DemandSignals(ctx)
	require.NoError(t, err)
	assert.Len(t, demands, 4)

	vehicles, err := p.Logistics(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 4)

	storage, err := p.StorageFacilities(ctx)
	require.NoError(t, err)
	assert.Len(t, storage, 3)

	farmers, err := p.Farmers(ctx)
	require.NoError(t, err)
	assert.Len(t, farmers, 5)
	assert.Contains(t, farmers, "F1001")
}

func TestMemoryProvider_ReturnsCopies(t *testing.T) {
	p := dataset.NewMemoryProvider()
	ctx := context.Background()

	inventory, err := p.Inventory(ctx)
	require.NoError(t, err)
	inventory[0].Quantity = 99999

	fresh, err := p.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200, fresh[0].Quantity)

	farmers, err := p.Farmers(ctx)
	require.NoError(t, err)
	fm := farmers["F1001"]
	fm.Name = "mutated"
	farmers["F1001"] = fm
	delete(farmers, "F1002")

	freshFarmers, err := p.Farmers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Raj Kumar", freshFarmers["F1001"].Name)
	assert.Contains(t, freshFarmers, "F1002")
}
