package inventory_test

import (
	"context"
	"testing"

	"inventory-manager/core/database"
	"inventory-manager/core/listing"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	svc := newService(t, db)
	ctx := context.Background()

	tests := []struct {
		name  string
		query inventory.ListQuery
		want  []string
	}{
		{"DefaultSortByName", inventory.ListQuery{}, []string{"XYZ9", "QRS7", "ABC123", "LMN4"}},
		{"SortByQuantity", inventory.ListQuery{Sort: "quantity"}, []string{"XYZ9", "LMN4", "ABC123", "QRS7"}},
		{"SortByPrice", inventory.ListQuery{Sort: "unit_price"}, []string{"QRS7", "LMN4", "ABC123", "XYZ9"}},
		{"SearchCategory", inventory.ListQuery{SearchField: "category", SearchQuery: " TOOLS "}, []string{"ABC123", "XYZ9"}},
		{"SearchNameDefaultField", inventory.ListQuery{SearchQuery: "rope"}, []string{"LMN4"}},
		{"SearchQuantity", inventory.ListQuery{SearchField: "quantity", SearchQuery: "5"}, []string{"XYZ9"}},
		{"SearchSKU", inventory.ListQuery{SearchField: "sku", SearchQuery: "abc123"}, []string{"ABC123"}},
		{"SearchSKUNoMatch", inventory.ListQuery{SearchField: "sku", SearchQuery: "ABC"}, []string{}},
		{"SearchNoMatch", inventory.ListQuery{SearchField: "name", SearchQuery: "saw"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, skus(got))
		})
	}
}

func TestList_Errors(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	svc := newService(t, db)
	ctx := context.Background()

	_, err := svc.List(ctx, inventory.ListQuery{Sort: "colour"})
	assert.ErrorIs(t, err, listing.ErrUnknownField)

	// QRS7 has no supplier.
	_, err = svc.List(ctx, inventory.ListQuery{Sort: "supplier"})
	assert.ErrorIs(t, err, listing.ErrMissingReference)

	_, err = svc.List(ctx, inventory.ListQuery{SearchField: "price", SearchQuery: "cheap"})
	assert.ErrorIs(t, err, listing.ErrInvalidTarget)
}

func TestList_SortBySupplier(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	require.NoError(t, db.Where("sku = ?", "QRS7").Delete(&models.Product{}).Error)
	svc := newService(t, db)

	got, err := svc.List(context.Background(), inventory.ListQuery{Sort: "supplier"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC123", "LMN4", "XYZ9"}, skus(got))
}

func TestDashboard(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	svc := newService(t, db)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, d.TotalProducts)
	assert.Equal(t, int64(2), d.SupplierCount)
	assert.Equal(t, 2, d.LowStockCount)
	assert.Equal(t, []string{"XYZ9", "LMN4"}, skus(d.LowStockItems))
	require.Len(t, d.RecentProducts, 4)
	assert.Equal(t, "QRS7", d.RecentProducts[0].SKU)
}

func TestDashboard_Empty(t *testing.T) {
	svc := newService(t, setupDB(t))

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, d.TotalProducts)
	assert.NotNil(t, d.LowStockItems)
	assert.Empty(t, d.RecentProducts)
}

func TestCreate(t *testing.T) {
	db := setupDB(t)
	acme, _ := seed(t, db)
	svc := newService(t, db)
	ctx := context.Background()

	before, err := svc.List(ctx, inventory.ListQuery{})
	require.NoError(t, err)
	require.Len(t, before, 4)

	p, err := svc.Create(ctx, models.ProductInput{
		SKU:        "NEW1",
		Name:       "Saw",
		Category:   "Tools",
		SupplierID: &acme.ID,
		Quantity:   3,
		UnitPrice:  decimal.RequireFromString("15.99"),
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, models.DefaultReorderLevel, p.ReorderLevel)
	require.NotNil(t, p.Supplier)
	assert.Equal(t, "ACME", p.Supplier.Name)

	after, err := svc.List(ctx, inventory.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, after, 5)
}

func TestCreate_Validation(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	svc := newService(t, db)
	ctx := context.Background()

	tests := []struct {
		name string
		in   models.ProductInput
	}{
		{"MissingSKU", models.ProductInput{Name: "Saw"}},
		{"DuplicateSKU", models.ProductInput{SKU: "abc123", Name: "Saw"}},
		{"UnknownSupplier", models.ProductInput{SKU: "NEW2", Name: "Saw", SupplierID: ptr(uint(99))}},
		{"NegativeQuantity", models.ProductInput{SKU: "NEW3", Name: "Saw", Quantity: -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			var verr *models.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestUpdate(t *testing.T) {
	db := setupDB(t)
	_, globex := seed(t, db)
	svc := newService(t, db)
	ctx := context.Background()

	var hammer models.Product
	require.NoError(t, db.Where("sku = ?", "ABC123").First(&hammer).Error)

	// Populate the snapshot so the update has something to invalidate.
	_, err := svc.List(ctx, inventory.ListQuery{})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, hammer.ID, models.ProductInput{
		SKU:          "ABC123",
		Name:         "Claw Hammer",
		Category:     "Tools",
		SupplierID:   &globex.ID,
		Quantity:     2,
		ReorderLevel: ptr(3),
		UnitPrice:    decimal.RequireFromString("13.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Claw Hammer", updated.Name)
	assert.Equal(t, "Globex", updated.Supplier.Name)

	got, err := svc.List(ctx, inventory.ListQuery{SearchField: "name", SearchQuery: "claw hammer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC123"}, skus(got))

	_, err = svc.Update(ctx, 999, models.ProductInput{SKU: "Z", Name: "Z"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	svc := newService(t, db)
	ctx := context.Background()

	var rope models.Product
	require.NoError(t, db.Where("sku = ?", "LMN4").First(&rope).Error)
	require.NoError(t, db.Create(&models.ReorderAlert{ProductID: rope.ID, ReorderPoint: 16, Mode: "demand"}).Error)

	require.NoError(t, svc.Delete(ctx, rope.ID))

	var alerts int64
	require.NoError(t, db.Model(&models.ReorderAlert{}).Count(&alerts).Error)
	assert.Zero(t, alerts)

	assert.ErrorIs(t, svc.Delete(ctx, rope.ID), models.ErrNotFound)

	_, err := svc.Get(ctx, rope.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCheckSchema(t *testing.T) {
	svc := newService(t, setupDB(t))

	report, err := svc.CheckSchema(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK)
	assert.Empty(t, report.Missing)

	bare, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, bare.AutoMigrate(&models.Supplier{}))

	report, err = newService(t, bare).CheckSchema(context.Background())
	require.NoError(t, err)
	assert.False(t, report.OK)
	assert.Contains(t, report.Missing, "products")
	assert.Contains(t, report.Missing, "reorder_alerts")
	assert.NotContains(t, report.Missing, "suppliers")
}
