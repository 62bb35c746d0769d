package supplier

import (
	"context"
	"errors"
	"fmt"

	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

// Repository reads and writes suppliers.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a supplier repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List loads every supplier in insertion order.
func (r *Repository) List(ctx context.Context) ([]*models.Supplier, error) {
	var suppliers []*models.Supplier
	if err := r.db.WithContext(ctx).Order("id").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

// Get loads one supplier.
func (r *Repository) Get(ctx context.Context, id uint) (*models.Supplier, error) {
	var s models.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier %d: %w", id, err)
	}
	return &s, nil
}

// Create inserts a supplier.
func (r *Repository) Create(ctx context.Context, s *models.Supplier) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update saves every column of an existing supplier.
func (r *Repository) Update(ctx context.Context, s *models.Supplier) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("failed to update supplier %d: %w", s.ID, err)
	}
	return nil
}

// Delete removes a supplier. Its products are kept with no supplier.
func (r *Repository) Delete(ctx context.Context, id uint) (detached int64, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).Where("supplier_id = ?", id).Update("supplier_id", nil)
		if res.Error != nil {
			return fmt.Errorf("failed to detach products of supplier %d: %w", id, res.Error)
		}
		detached = res.RowsAffected

		res = tx.Delete(&models.Supplier{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete supplier %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
	return detached, err
}
