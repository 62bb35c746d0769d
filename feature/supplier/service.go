package supplier

import (
	"context"
	"strings"

	"inventory-manager/core/listing"
	"inventory-manager/core/snapshot"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles supplier operations.
type Service struct {
	repo   *Repository
	cache  *snapshot.Store
	logger *zap.Logger
}

// NewService creates a new supplier service.
func NewService(db *gorm.DB, cache *snapshot.Store, logger *zap.Logger) *Service {
	return &Service{
		repo:   NewRepository(db),
		cache:  cache,
		logger: logger,
	}
}

// Suppliers returns the cached supplier snapshot. Callers must not modify it.
func (s *Service) Suppliers(ctx context.Context) ([]*models.Supplier, error) {
	return snapshot.GetOrLoad(ctx, s.cache, models.SuppliersSnapshot, s.repo.List)
}

// List returns suppliers sorted by q.Sort (default name), filtered to exact
// matches on q.SearchField when q.SearchQuery is set.
func (s *Service) List(ctx context.Context, q inventory.ListQuery) ([]*models.Supplier, error) {
	suppliers, err := s.Suppliers(ctx)
	if err != nil {
		return nil, err
	}

	sortField, err := listing.ParseField(orName(q.Sort))
	if err != nil {
		return nil, err
	}
	sorted, err := listing.Sort(suppliers, sortField)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(q.SearchQuery) == "" {
		return sorted, nil
	}
	searchField, err := listing.ParseField(orName(q.SearchField))
	if err != nil {
		return nil, err
	}
	return listing.Find(suppliers, searchField, q.SearchQuery)
}

// Get returns a single supplier.
func (s *Service) Get(ctx context.Context, id uint) (*models.Supplier, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and stores a new supplier.
func (s *Service) Create(ctx context.Context, in models.SupplierInput) (*models.Supplier, error) {
	if reason := in.Validate(); reason != "" {
		return nil, models.Invalid("%s", reason)
	}

	var sup models.Supplier
	in.Apply(&sup)
	if err := s.repo.Create(ctx, &sup); err != nil {
		return nil, err
	}
	s.cache.Invalidate(models.SuppliersSnapshot)

	s.logger.Info("Supplier created", zap.Uint("id", sup.ID), zap.String("name", sup.Name))
	return &sup, nil
}

// Update validates and replaces an existing supplier. Products embed their
// supplier, so both snapshots are dropped.
func (s *Service) Update(ctx context.Context, id uint, in models.SupplierInput) (*models.Supplier, error) {
	sup, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if reason := in.Validate(); reason != "" {
		return nil, models.Invalid("%s", reason)
	}

	in.Apply(sup)
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	s.cache.Invalidate(models.SuppliersSnapshot, models.ProductsSnapshot)

	s.logger.Info("Supplier updated", zap.Uint("id", sup.ID), zap.String("name", sup.Name))
	return sup, nil
}

// Delete removes a supplier and clears it from its products.
func (s *Service) Delete(ctx context.Context, id uint) error {
	detached, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Invalidate(models.SuppliersSnapshot, models.ProductsSnapshot)

	s.logger.Info("Supplier deleted", zap.Uint("id", id), zap.Int64("detached_products", detached))
	return nil
}

func orName(key string) string {
	if strings.TrimSpace(key) == "" {
		return "name"
	}
	return key
}
