package inventory_test

import (
	"testing"
	"time"

	"inventory-manager/core/database"
	"inventory-manager/core/snapshot"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// setupDB returns a migrated in-memory database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, inventory.Migrate(db))
	return db
}

// seed inserts two suppliers and four products, one of them without a supplier.
func seed(t *testing.T, db *gorm.DB) (acme, globex *models.Supplier) {
	t.Helper()
	acme = &models.Supplier{Name: "ACME", ContactPerson: "Wile"}
	globex = &models.Supplier{Name: "Globex", ContactPerson: "Hank"}
	require.NoError(t, db.Create(acme).Error)
	require.NoError(t, db.Create(globex).Error)

	products := []*models.Product{
		{SKU: "ABC123", Name: "Hammer", Category: "Tools", SupplierID: &acme.ID, Quantity: 30, ReorderLevel: 5, UnitPrice: decimal.RequireFromString("12.50")},
		{SKU: "XYZ9", Name: "anvil", Category: "tools", SupplierID: &globex.ID, Quantity: 5, ReorderLevel: 5, UnitPrice: decimal.RequireFromString("99.00")},
		{SKU: "LMN4", Name: "Rope", Category: "Outdoor", SupplierID: &acme.ID, Quantity: 12, ReorderLevel: 20, UnitPrice: decimal.RequireFromString("4.25"),
			AvgDailyDemand: ptr(2.0), SigmaDemand: ptr(1.0), LeadTimeDays: ptr(7.0)},
		{SKU: "QRS7", Name: "Bucket", Category: "Outdoor", Quantity: 40, ReorderLevel: 5, UnitPrice: decimal.RequireFromString("3.00")},
	}
	for _, p := range products {
		require.NoError(t, db.Create(p).Error)
	}
	return acme, globex
}

func newService(t *testing.T, db *gorm.DB) *inventory.Service {
	t.Helper()
	return inventory.NewService(db, snapshot.New(time.Minute), zap.NewNop())
}

func skus(products []*models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.SKU
	}
	return out
}
