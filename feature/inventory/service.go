package inventory

import (
	"context"
	"sort"
	"strings"

	"inventory-manager/core/database"
	"inventory-manager/core/listing"
	"inventory-manager/core/snapshot"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RecentLimit is the number of products shown as recently added on the dashboard.
const RecentLimit = 10

// ListQuery selects the order and optional filter of a listing.
type ListQuery struct {
	Sort        string `query:"sort"`
	SearchField string `query:"search_field"`
	SearchQuery string `query:"search_query"`
}

// Dashboard summarizes the inventory.
type Dashboard struct {
	TotalProducts  int               `json:"total_products"`
	SupplierCount  int64             `json:"supplier_count"`
	LowStockCount  int               `json:"low_stock_count"`
	LowStockItems  []*models.Product `json:"low_stock_items"`
	RecentProducts []*models.Product `json:"recent_products"`
}

// SchemaReport lists the expected columns missing from each table.
type SchemaReport struct {
	OK      bool                `json:"ok"`
	Missing map[string][]string `json:"missing"`
}

// Service handles product operations.
type Service struct {
	db     *gorm.DB
	repo   *Repository
	cache  *snapshot.Store
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(db *gorm.DB, cache *snapshot.Store, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		repo:   NewRepository(db),
		cache:  cache,
		logger: logger,
	}
}

// Products returns the cached product snapshot. Callers must not modify it.
func (s *Service) Products(ctx context.Context) ([]*models.Product, error) {
	return snapshot.GetOrLoad(ctx, s.cache, models.ProductsSnapshot, s.repo.List)
}

// List returns products sorted by q.Sort (default name). When q.SearchQuery is
// set, only products whose q.SearchField equals it are returned.
func (s *Service) List(ctx context.Context, q ListQuery) ([]*models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	sortField, err := listing.ParseField(keyOrName(q.Sort))
	if err != nil {
		return nil, err
	}
	sorted, err := listing.Sort(products, sortField)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(q.SearchQuery)
	if query == "" {
		return sorted, nil
	}

	searchField, err := listing.ParseField(keyOrName(q.SearchField))
	if err != nil {
		return nil, err
	}

	// SKUs are unique, so they are looked up directly.
	if searchField == listing.FieldIdentifier {
		bySKU := make(map[string]*models.Product, len(sorted))
		for _, p := range sorted {
			bySKU[strings.ToUpper(p.SKU)] = p
		}
		if p, ok := bySKU[strings.ToUpper(query)]; ok {
			return []*models.Product{p}, nil
		}
		return []*models.Product{}, nil
	}

	return listing.Find(products, searchField, query)
}

// Get returns a single product.
func (s *Service) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	if err := s.validate(ctx, in, 0); err != nil {
		return nil, err
	}

	var p models.Product
	in.Apply(&p)
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(models.ProductsSnapshot)

	s.logger.Info("Product created", zap.Uint("id", p.ID), zap.String("sku", p.SKU))
	return s.repo.Get(ctx, p.ID)
}

// Update validates and replaces an existing product.
func (s *Service) Update(ctx context.Context, id uint, in models.ProductInput) (*models.Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in, id); err != nil {
		return nil, err
	}

	in.Apply(p)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(models.ProductsSnapshot)

	s.logger.Info("Product updated", zap.Uint("id", p.ID), zap.String("sku", p.SKU))
	return s.repo.Get(ctx, id)
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(models.ProductsSnapshot)
	s.logger.Info("Product deleted", zap.Uint("id", id))
	return nil
}

// Dashboard computes the inventory summary.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		products  []*models.Product
		suppliers int64
		recent    []*models.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.Products(gctx)
		return err
	})
	g.Go(func() (err error) {
		suppliers, err = s.repo.CountSuppliers(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.repo.Recent(gctx, RecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	low := []*models.Product{}
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}

	return &Dashboard{
		TotalProducts:  len(products),
		SupplierCount:  suppliers,
		LowStockCount:  len(low),
		LowStockItems:  low,
		RecentProducts: recent,
	}, nil
}

// CheckSchema compares the live tables with the columns the models expect.
func (s *Service) CheckSchema(ctx context.Context) (*SchemaReport, error) {
	tables := make([]string, 0, len(models.Columns))
	for table := range models.Columns {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	report := &SchemaReport{OK: true, Missing: map[string][]string{}}
	db := s.db.WithContext(ctx)
	for _, table := range tables {
		missing, err := database.MissingColumns(db, table, models.Columns[table])
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			report.OK = false
			report.Missing[table] = missing
		}
	}
	return report, nil
}

func (s *Service) validate(ctx context.Context, in models.ProductInput, id uint) error {
	if reason := in.Validate(); reason != "" {
		return models.Invalid("%s", reason)
	}

	taken, err := s.repo.SKUTaken(ctx, strings.TrimSpace(in.SKU), id)
	if err != nil {
		return err
	}
	if taken {
		return models.Invalid("sku %q already exists", strings.TrimSpace(in.SKU))
	}

	if in.SupplierID != nil {
		ok, err := s.repo.SupplierExists(ctx, *in.SupplierID)
		if err != nil {
			return err
		}
		if !ok {
			return models.Invalid("supplier %d does not exist", *in.SupplierID)
		}
	}
	return nil
}

func keyOrName(key string) string {
	if strings.TrimSpace(key) == "" {
		return "name"
	}
	return key
}
