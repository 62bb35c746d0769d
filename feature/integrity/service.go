package integrity

import (
	"context"

	"inventory-manager/core/snapshot"
	"inventory-manager/core/storage"
	"inventory-manager/feature/integrity/checks"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Summary is the combined result of every check. A check that could not run
// leaves its report nil and records the error under its name.
type Summary struct {
	Healthy bool                  `json:"healthy"`
	Storage *checks.StorageReport `json:"storage,omitempty"`
	Schema  *checks.SchemaReport  `json:"schema,omitempty"`
	Data    *checks.DataReport    `json:"data,omitempty"`
	Errors  map[string]string     `json:"errors,omitempty"`
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
	cache  *snapshot.Store
}

// NewService creates a new integrity service. Data fixes invalidate the
// product snapshot in cache.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cache *snapshot.Store) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
		cache:  cache,
	}
}

// CheckStorage reports the required folders missing from the bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates the bucket and folders listed in report.
func (s *Service) FixStorage(ctx context.Context, report *checks.StorageReport) error {
	return checks.FixStorage(ctx, s.client, s.logger, report)
}

// CheckSchema compares the live tables with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckData scans the inventory rows for broken references and invalid values.
func (s *Service) CheckData(ctx context.Context) (*checks.DataReport, error) {
	return checks.CheckData(ctx, s.db)
}

// FixData repairs the orphans in report and returns a fresh report.
func (s *Service) FixData(ctx context.Context, report *checks.DataReport) (*checks.DataReport, error) {
	if err := checks.FixData(ctx, s.db, s.logger, report); err != nil {
		return nil, err
	}
	s.cache.Invalidate(models.ProductsSnapshot)
	return checks.CheckData(ctx, s.db)
}

// RunAll runs the three checks concurrently without fixing anything.
func (s *Service) RunAll(ctx context.Context) *Summary {
	sum := &Summary{}
	var storageErr, schemaErr, dataErr error

	var g errgroup.Group
	g.Go(func() error {
		sum.Storage, storageErr = s.CheckStorage(ctx)
		return nil
	})
	g.Go(func() error {
		sum.Schema, schemaErr = s.CheckSchema()
		return nil
	})
	g.Go(func() error {
		sum.Data, dataErr = s.CheckData(ctx)
		return nil
	})
	_ = g.Wait()

	for name, err := range map[string]error{"storage": storageErr, "schema": schemaErr, "data": dataErr} {
		if err == nil {
			continue
		}
		if sum.Errors == nil {
			sum.Errors = make(map[string]string)
		}
		sum.Errors[name] = err.Error()
	}

	sum.Healthy = len(sum.Errors) == 0 &&
		sum.Storage.OK() && sum.Schema.Matched && sum.Data.OK()
	return sum
}
