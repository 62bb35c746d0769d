package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-manager/core/snapshot"
	"inventory-manager/feature/inventory"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestRepository_ListError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `products`").WillReturnError(errors.New("connection reset"))

	_, err := inventory.NewRepository(db).List(context.Background())
	assert.ErrorContains(t, err, "failed to list products")
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountSuppliers(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `suppliers`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := inventory.NewRepository(db).CountSuppliers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_SnapshotErrorIsNotCached(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := inventory.NewService(db, snapshot.New(time.Minute), zap.NewNop())

	mock.ExpectQuery("SELECT \\* FROM `products`").WillReturnError(errors.New("timeout"))
	_, err := svc.List(context.Background(), inventory.ListQuery{})
	assert.Error(t, err)

	mock.ExpectQuery("SELECT \\* FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sku", "name", "supplier_id"}))
	products, err := svc.List(context.Background(), inventory.ListQuery{})
	assert.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}
