package checks

import (
	"context"
	"testing"

	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// seedBroken writes rows the foreign keys would normally reject.
func seedBroken(t *testing.T) *gorm.DB {
	t.Helper()
	db := setupSQLite(t)
	require.NoError(t, inventory.Migrate(db))
	require.NoError(t, db.Exec("PRAGMA foreign_keys = OFF").Error)

	acme := &models.Supplier{Name: "ACME"}
	require.NoError(t, db.Create(acme).Error)

	ghost := uint(999)
	products := []*models.Product{
		{SKU: "OK1", Name: "Hammer", SupplierID: &acme.ID, Quantity: 3, ReorderLevel: 5, UnitPrice: decimal.NewFromInt(10)},
		{SKU: "ORPH", Name: "Anvil", SupplierID: &ghost, Quantity: 1, ReorderLevel: 5, UnitPrice: decimal.NewFromInt(99)},
		{SKU: "NEG", Name: "Rope", Quantity: -2, ReorderLevel: 5, UnitPrice: decimal.NewFromInt(4)},
		{SKU: "DEM", Name: "Bucket", Quantity: 8, ReorderLevel: 5, UnitPrice: decimal.NewFromInt(3), SigmaDemand: ptr(-1.0)},
	}
	for _, p := range products {
		require.NoError(t, db.Create(p).Error)
	}

	require.NoError(t, db.Create(&models.ReorderAlert{ProductID: products[0].ID, Mode: "threshold"}).Error)
	require.NoError(t, db.Create(&models.ReorderAlert{ProductID: 4242, Mode: "demand"}).Error)
	return db
}

func TestCheckData(t *testing.T) {
	t.Run("Clean", func(t *testing.T) {
		db := setupSQLite(t)
		require.NoError(t, inventory.Migrate(db))

		report, err := CheckData(context.Background(), db)
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.False(t, report.Fixable())
	})

	t.Run("Broken", func(t *testing.T) {
		report, err := CheckData(context.Background(), seedBroken(t))
		require.NoError(t, err)
		assert.Equal(t, []string{"ORPH"}, report.OrphanProducts)
		assert.Len(t, report.OrphanAlerts, 1)
		assert.Equal(t, []string{"NEG"}, report.NegativeStock)
		assert.Equal(t, []string{"DEM"}, report.InvalidDemand)
		assert.False(t, report.OK())
		assert.True(t, report.Fixable())
	})

	t.Run("Nil DB", func(t *testing.T) {
		_, err := CheckData(context.Background(), nil)
		assert.Error(t, err)
	})
}

func TestFixData(t *testing.T) {
	db := seedBroken(t)
	ctx := context.Background()

	report, err := CheckData(ctx, db)
	require.NoError(t, err)
	require.NoError(t, FixData(ctx, db, zap.NewNop(), report))

	after, err := CheckData(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, after.OrphanProducts)
	assert.Empty(t, after.OrphanAlerts)
	// Value problems are reported, never rewritten.
	assert.Equal(t, []string{"NEG"}, after.NegativeStock)
	assert.Equal(t, []string{"DEM"}, after.InvalidDemand)

	var orphan models.Product
	require.NoError(t, db.Where("sku = ?", "ORPH").First(&orphan).Error)
	assert.Nil(t, orphan.SupplierID)

	var alerts int64
	require.NoError(t, db.Model(&models.ReorderAlert{}).Count(&alerts).Error)
	assert.Equal(t, int64(1), alerts)
}
