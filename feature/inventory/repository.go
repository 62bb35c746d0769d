package inventory

import (
	"context"
	"errors"
	"fmt"

	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository reads and writes products.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a product repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List loads every product with its supplier, in insertion order.
func (r *Repository) List(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	if err := r.db.WithContext(ctx).Preload("Supplier").Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get loads one product with its supplier.
func (r *Repository) Get(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Preload("Supplier").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &p, nil
}

// Recent returns the n most recently added products.
func (r *Repository) Recent(ctx context.Context, n int) ([]*models.Product, error) {
	var products []*models.Product
	if err := r.db.WithContext(ctx).Preload("Supplier").Order("id DESC").Limit(n).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent products: %w", err)
	}
	return products, nil
}

// Create inserts a product. The supplier association is never written.
func (r *Repository) Create(ctx context.Context, p *models.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves every column of an existing product.
func (r *Repository) Update(ctx context.Context, p *models.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", p.ID, err)
	}
	return nil
}

// Delete removes a product and, through the foreign key, its alerts.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ReorderAlert{}).Error; err != nil {
			return fmt.Errorf("failed to delete alerts of product %d: %w", id, err)
		}
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}

// SKUTaken reports whether another product already uses sku.
func (r *Repository) SKUTaken(ctx context.Context, sku string, exceptID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Product{}).Where("UPPER(sku) = UPPER(?)", sku)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check sku: %w", err)
	}
	return count > 0, nil
}

// SupplierExists reports whether a supplier with the given id exists.
func (r *Repository) SupplierExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Supplier{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check supplier: %w", err)
	}
	return count > 0, nil
}

// CountSuppliers returns the number of suppliers.
func (r *Repository) CountSuppliers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Supplier{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	return count, nil
}

// Migrate creates or updates the inventory tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate inventory schema: %w", err)
	}
	return nil
}
