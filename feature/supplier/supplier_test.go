package supplier_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inventory-manager/core/database"
	"inventory-manager/core/listing"
	"inventory-manager/core/snapshot"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/supplier"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	for _, s := range []*models.Supplier{
		{Name: "Globex", ContactPerson: "Hank"},
		{Name: "ACME", ContactPerson: "Wile"},
		{Name: "Initech", ContactPerson: "Bill"},
		{Name: "Acme", ContactPerson: "Road"},
	} {
		require.NoError(t, db.Create(s).Error)
	}
	return db
}

func names(suppliers []*models.Supplier) []string {
	out := make([]string, len(suppliers))
	for i, s := range suppliers {
		out[i] = s.Name
	}
	return out
}

func TestList(t *testing.T) {
	svc := supplier.NewService(setupDB(t), snapshot.New(time.Minute), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name  string
		query inventory.ListQuery
		want  []string
	}{
		{"DefaultSort", inventory.ListQuery{}, []string{"ACME", "Acme", "Globex", "Initech"}},
		{"SortByContact", inventory.ListQuery{Sort: "contact_person"}, []string{"Initech", "Globex", "Acme", "ACME"}},
		{"SearchDuplicates", inventory.ListQuery{SearchQuery: "acme"}, []string{"ACME", "Acme"}},
		{"SearchContact", inventory.ListQuery{SearchField: "contact_person", SearchQuery: "HANK"}, []string{"Globex"}},
		{"NoMatch", inventory.ListQuery{SearchQuery: "umbrella"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}

	_, err := svc.List(ctx, inventory.ListQuery{Sort: "quantity"})
	assert.ErrorIs(t, err, listing.ErrFieldNotSupported)
}

func TestCreateUpdate(t *testing.T) {
	svc := supplier.NewService(setupDB(t), snapshot.New(time.Minute), zap.NewNop())
	ctx := context.Background()

	_, err := svc.List(ctx, inventory.ListQuery{})
	require.NoError(t, err)

	created, err := svc.Create(ctx, models.SupplierInput{Name: " Umbrella ", Email: "info@umbrella.test"})
	require.NoError(t, err)
	assert.Equal(t, "Umbrella", created.Name)

	got, err := svc.List(ctx, inventory.ListQuery{SearchQuery: "umbrella"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	updated, err := svc.Update(ctx, created.ID, models.SupplierInput{Name: "Umbrella Corp"})
	require.NoError(t, err)
	assert.Equal(t, "Umbrella Corp", updated.Name)

	_, err = svc.Create(ctx, models.SupplierInput{Name: "Bad", Email: "not-an-email"})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Update(ctx, 999, models.SupplierInput{Name: "Ghost"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDelete_DetachesProducts(t *testing.T) {
	db := setupDB(t)
	cache := snapshot.New(time.Minute)
	svc := supplier.NewService(db, cache, zap.NewNop())
	products := inventory.NewService(db, cache, zap.NewNop())
	ctx := context.Background()

	var acme models.Supplier
	require.NoError(t, db.Where("name = ?", "ACME").First(&acme).Error)
	require.NoError(t, db.Create(&models.Product{SKU: "A1", Name: "Anvil", SupplierID: &acme.ID, UnitPrice: decimal.NewFromInt(50)}).Error)

	sorted, err := products.List(ctx, inventory.ListQuery{Sort: "supplier"})
	require.NoError(t, err)
	require.Len(t, sorted, 1)

	require.NoError(t, svc.Delete(ctx, acme.ID))

	var p models.Product
	require.NoError(t, db.Where("sku = ?", "A1").First(&p).Error)
	assert.Nil(t, p.SupplierID)

	_, err = products.List(ctx, inventory.ListQuery{Sort: "supplier"})
	assert.ErrorIs(t, err, listing.ErrMissingReference)

	assert.ErrorIs(t, svc.Delete(ctx, acme.ID), models.ErrNotFound)
}

func TestHandlers(t *testing.T) {
	feature := supplier.NewFeature(setupDB(t), snapshot.New(time.Minute), zap.NewNop())
	assert.Equal(t, "supplier", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/suppliers?sort=contact_person", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []*models.Supplier
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, []string{"Initech", "Globex", "Acme", "ACME"}, names(list))

	resp, err = app.Test(httptest.NewRequest("GET", "/suppliers?sort=price", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	req := httptest.NewRequest("POST", "/suppliers", strings.NewReader(`{"name":"Hooli","phone":"555-0100"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Supplier
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	req = httptest.NewRequest("POST", "/suppliers", strings.NewReader(`{"phone":"555-0100"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/suppliers/999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/suppliers/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
