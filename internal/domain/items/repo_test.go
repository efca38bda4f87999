package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	r := NewRepo()

	it := r.Create(FormData{
		Name:          "Steel Pipe Standard",
		Category:      CategorySteel,
		Price:         45.50,
		StockQuantity: 150,
		MinimumStock:  20,
		Status:        StatusActive,
	})

	require.NotEmpty(t, it.ID)
	got, err := r.Get(it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Steel Pipe Standard", got.Name)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdjustStock(t *testing.T) {
	r := NewRepo()
	it := r.Create(FormData{Name: "PVC Pipe", StockQuantity: 10, MinimumStock: 5, Status: StatusActive})

	got, err := r.AdjustStock(it.ID, -7)
	require.NoError(t, err)
	assert.Equal(t, 3, got.StockQuantity)
	assert.True(t, got.LowStock())

	// negative balances are allowed
	got, err = r.AdjustStock(it.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, -7, got.StockQuantity)
}

func TestLowStockBoundary(t *testing.T) {
	r := NewRepo()
	r.Seed([]Item{
		{ID: "1", Name: "at floor", StockQuantity: 20, MinimumStock: 20},
		{ID: "2", Name: "above floor", StockQuantity: 21, MinimumStock: 20},
		{ID: "3", Name: "below floor", StockQuantity: 5, MinimumStock: 20},
	})

	low := r.LowStock()
	require.Len(t, low, 2)
	assert.Equal(t, "1", low[0].ID, "stock equal to minimum counts as low")
	assert.Equal(t, "3", low[1].ID)
}

func TestFilter(t *testing.T) {
	list := []Item{
		{ID: "1", Name: "Steel Pipe Standard", Category: CategorySteel, Price: 45.50, Status: StatusActive,
			Specifications: Specifications{Material: "Carbon Steel"}},
		{ID: "2", Name: "PVC Pipe Residential", Category: CategoryPVC, Price: 12.75, Status: StatusActive,
			Specifications: Specifications{Material: "PVC"}},
		{ID: "3", Name: "Copper Pipe Premium", Category: CategoryCopper, Price: 28.90, Status: StatusDiscontinued,
			Specifications: Specifications{Material: "Copper"}},
	}

	assert.Len(t, Apply(list, Filter{}), 3)

	byCategory := Apply(list, Filter{Category: CategoryPVC})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "2", byCategory[0].ID)

	byPrice := Apply(list, Filter{MinPrice: 20, MaxPrice: 50})
	assert.Len(t, byPrice, 2)

	// search covers name, description and material
	byMaterial := Apply(list, Filter{SearchTerm: "carbon"})
	require.Len(t, byMaterial, 1)
	assert.Equal(t, "1", byMaterial[0].ID)

	active := Apply(list, Filter{Status: StatusActive, SearchTerm: "pipe"})
	assert.Len(t, active, 2)
}

func TestUpdateAndDelete(t *testing.T) {
	r := NewRepo()
	it := r.Create(FormData{Name: "Old", Price: 1, Status: StatusActive})

	got, err := r.Update(it.ID, FormData{Name: "New", Price: 2, Status: StatusDiscontinued})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, StatusDiscontinued, got.Status)

	require.NoError(t, r.Delete(it.ID))
	assert.ErrorIs(t, r.Delete(it.ID), ErrNotFound)
}
