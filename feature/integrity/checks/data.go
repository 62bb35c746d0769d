package checks

import (
	"context"
	"fmt"

	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DataReport lists rows that break the inventory's data rules. Orphans only
// appear when foreign keys were not enforced, e.g. after a bulk import.
type DataReport struct {
	// OrphanProducts are SKUs whose supplier_id points at no supplier.
	OrphanProducts []string `json:"orphan_products"`
	// OrphanAlerts are alert ids whose product no longer exists.
	OrphanAlerts []uint `json:"orphan_alerts"`
	// NegativeStock are SKUs with a negative quantity or reorder level.
	NegativeStock []string `json:"negative_stock"`
	// InvalidDemand are SKUs with negative demand statistics or lead time.
	InvalidDemand []string `json:"invalid_demand"`
}

// OK reports whether no problem was found.
func (r *DataReport) OK() bool {
	return len(r.OrphanProducts) == 0 && len(r.OrphanAlerts) == 0 &&
		len(r.NegativeStock) == 0 && len(r.InvalidDemand) == 0
}

// Fixable reports whether FixData has anything to repair.
func (r *DataReport) Fixable() bool {
	return len(r.OrphanProducts) > 0 || len(r.OrphanAlerts) > 0
}

// CheckData scans the inventory tables for orphaned references and values
// the input validation would reject.
func CheckData(ctx context.Context, db *gorm.DB) (*DataReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	db = db.WithContext(ctx)
	report := &DataReport{
		OrphanProducts: []string{},
		OrphanAlerts:   []uint{},
		NegativeStock:  []string{},
		InvalidDemand:  []string{},
	}

	err := db.Model(&models.Product{}).
		Joins("LEFT JOIN suppliers ON suppliers.id = products.supplier_id").
		Where("products.supplier_id IS NOT NULL AND suppliers.id IS NULL").
		Order("products.sku").
		Pluck("products.sku", &report.OrphanProducts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orphan products: %w", err)
	}

	err = db.Model(&models.ReorderAlert{}).
		Joins("LEFT JOIN products ON products.id = reorder_alerts.product_id").
		Where("products.id IS NULL").
		Order("reorder_alerts.id").
		Pluck("reorder_alerts.id", &report.OrphanAlerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orphan alerts: %w", err)
	}

	err = db.Model(&models.Product{}).
		Where("quantity < 0 OR reorder_level < 0").
		Order("sku").
		Pluck("sku", &report.NegativeStock).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find negative stock: %w", err)
	}

	err = db.Model(&models.Product{}).
		Where("avg_daily_demand < 0 OR sigma_demand < 0 OR lead_time_days < 0").
		Order("sku").
		Pluck("sku", &report.InvalidDemand).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find invalid demand data: %w", err)
	}

	return report, nil
}

// FixData detaches orphan products from their missing supplier and deletes
// orphan alerts. Value problems are left for an operator to correct.
func FixData(ctx context.Context, db *gorm.DB, logger *zap.Logger, report *DataReport) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(report.OrphanProducts) > 0 {
			res := tx.Model(&models.Product{}).
				Where("sku IN ?", report.OrphanProducts).
				Update("supplier_id", nil)
			if res.Error != nil {
				return fmt.Errorf("failed to detach orphan products: %w", res.Error)
			}
			logger.Info("Detached products from missing suppliers",
				zap.Strings("skus", report.OrphanProducts), zap.Int64("rows", res.RowsAffected))
		}

		if len(report.OrphanAlerts) > 0 {
			res := tx.Where("id IN ?", report.OrphanAlerts).Delete(&models.ReorderAlert{})
			if res.Error != nil {
				return fmt.Errorf("failed to delete orphan alerts: %w", res.Error)
			}
			logger.Info("Deleted orphan alerts", zap.Int64("rows", res.RowsAffected))
		}
		return nil
	})
}
