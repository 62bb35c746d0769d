package reorder

import (
	"context"
	"fmt"

	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

// Repository stores reorder alerts.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates an alert repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAll inserts alerts in a single transaction.
func (r *Repository) CreateAll(ctx context.Context, alerts []*models.ReorderAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Product").Create(&alerts).Error
	})
	if err != nil {
		return fmt.Errorf("failed to store %d reorder alerts: %w", len(alerts), err)
	}
	return nil
}

// Recent returns up to limit alerts, newest first, with their products.
func (r *Repository) Recent(ctx context.Context, limit int) ([]*models.ReorderAlert, error) {
	alerts := []*models.ReorderAlert{}
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reorder alerts: %w", err)
	}
	return alerts, nil
}
