package reorder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"path"
	"sort"
	"strings"
	"time"

	engine "inventory-manager/core/reorder"
	"inventory-manager/core/storage"
	"inventory-manager/core/utils"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// ExportPrefix is the object key prefix of exported reorder reports.
	ExportPrefix = "reports/reorder/"
	// DefaultAlertLimit caps the number of alerts returned by Alerts.
	DefaultAlertLimit = 50

	exportTimeLayout = "20060102T150405.000Z"
)

// Overrides replaces engine parameters for a single request. Nil keeps the configured value.
type Overrides struct {
	ServiceLevel *float64
	LeadTime     *float64
}

// Entry is one reorder candidate as reported to clients.
type Entry struct {
	ProductID    uint        `json:"product_id"`
	SKU          string      `json:"sku"`
	Name         string      `json:"name"`
	Quantity     int         `json:"quantity"`
	ReorderLevel int         `json:"reorder_level"`
	SafetyStock  float64     `json:"safety_stock"`
	ReorderPoint float64     `json:"reorder_point"`
	Mode         engine.Mode `json:"mode"`
	// DaysToStockout is null when demand is unknown.
	DaysToStockout *float64 `json:"days_to_stockout"`
	Degraded       []string `json:"degraded,omitempty"`
}

// Report is the ranked list of products that need restocking.
type Report struct {
	GeneratedAt     time.Time `json:"generated_at"`
	ServiceLevel    float64   `json:"service_level"`
	DefaultLeadTime float64   `json:"default_lead_time"`
	Candidates      []Entry   `json:"candidates"`
}

// SuggestionEntry is one row of the suggestion report.
type SuggestionEntry struct {
	ProductID    uint    `json:"product_id"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	SafetyStock  float64 `json:"safety_stock"`
	ReorderPoint float64 `json:"reorder_point"`
	NeedsReorder bool    `json:"needs_reorder"`
	// Estimated is set when demand was derived from the quantity on hand.
	Estimated bool `json:"estimated"`
}

// ExportResult describes a stored report.
type ExportResult struct {
	Key        string `json:"key"`
	Size       int64  `json:"size"`
	Candidates int    `json:"candidates"`
}

// ExportInfo describes an export found in storage.
type ExportInfo struct {
	Name         string    `json:"name"`
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service computes reorder reports and persists or exports them.
type Service struct {
	products *inventory.Service
	alerts   *Repository
	client   storage.Client
	bucket   string
	cfg      engine.Config
	logger   *zap.Logger
}

// NewService creates a new reorder service.
func NewService(products *inventory.Service, db *gorm.DB, client storage.Client, bucket string, cfg engine.Config, logger *zap.Logger) *Service {
	return &Service{
		products: products,
		alerts:   NewRepository(db),
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		logger:   logger,
	}
}

// Config returns the engine parameters after applying overrides.
func (s *Service) Config(o Overrides) (engine.Config, error) {
	cfg := s.cfg
	if o.ServiceLevel != nil {
		z := *o.ServiceLevel
		if math.IsNaN(z) || math.IsInf(z, 0) || z < 0 {
			return cfg, models.Invalid("service level must be a non-negative number")
		}
		cfg.ServiceLevel = z
	}
	if o.LeadTime != nil {
		lead := *o.LeadTime
		if math.IsNaN(lead) || math.IsInf(lead, 0) || lead <= 0 {
			return cfg, models.Invalid("lead time must be a positive number of days")
		}
		cfg.DefaultLeadTime = lead
	}
	return cfg, nil
}

// Report ranks the products at or below their reorder point, most urgent first.
func (s *Service) Report(ctx context.Context, o Overrides) (*Report, error) {
	cfg, err := s.Config(o)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Products(ctx)
	if err != nil {
		return nil, err
	}

	candidates := engine.Candidates(products, cfg)
	entries := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		e := Entry{
			ProductID:    c.Item.ID,
			SKU:          c.Item.SKU,
			Name:         c.Item.Name,
			Quantity:     c.Item.Quantity,
			ReorderLevel: c.Item.ReorderLevel,
			SafetyStock:  utils.RoundTo(c.SafetyStock, 2),
			ReorderPoint: utils.RoundTo(c.ReorderPoint, 2),
			Mode:         c.Mode,
			Degraded:     engine.Assess(c.Item, cfg).Degraded,
		}
		if !math.IsInf(c.DaysToStockout, 1) {
			days := utils.RoundTo(c.DaysToStockout, 2)
			e.DaysToStockout = &days
		}
		if len(e.Degraded) > 0 {
			s.logger.Debug("Reorder inputs degraded", zap.String("sku", e.SKU), zap.Strings("degraded", e.Degraded))
		}
		entries = append(entries, e)
	}

	return &Report{
		GeneratedAt:     time.Now().UTC(),
		ServiceLevel:    cfg.ServiceLevel,
		DefaultLeadTime: cfg.DefaultLeadTime,
		Candidates:      entries,
	}, nil
}

// Suggestions assesses every product, estimating demand where it is unknown.
func (s *Service) Suggestions(ctx context.Context) ([]SuggestionEntry, error) {
	products, err := s.products.Products(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SuggestionEntry, 0, len(products))
	for _, sg := range engine.Suggest(products, s.cfg) {
		out = append(out, SuggestionEntry{
			ProductID:    sg.Item.ID,
			SKU:          sg.Item.SKU,
			Name:         sg.Item.Name,
			Quantity:     sg.Item.Quantity,
			SafetyStock:  sg.SafetyStock,
			ReorderPoint: sg.ReorderPoint,
			NeedsReorder: sg.NeedsReorder,
			Estimated:    sg.Estimated,
		})
	}
	return out, nil
}

// RecordAlerts stores one alert per current candidate.
func (s *Service) RecordAlerts(ctx context.Context, o Overrides) ([]*models.ReorderAlert, error) {
	report, err := s.Report(ctx, o)
	if err != nil {
		return nil, err
	}

	alerts := make([]*models.ReorderAlert, 0, len(report.Candidates))
	for _, e := range report.Candidates {
		alerts = append(alerts, &models.ReorderAlert{
			ProductID:      e.ProductID,
			SafetyStock:    e.SafetyStock,
			ReorderPoint:   e.ReorderPoint,
			DaysToStockout: e.DaysToStockout,
			Mode:           string(e.Mode),
		})
	}
	if err := s.alerts.CreateAll(ctx, alerts); err != nil {
		return nil, err
	}

	s.logger.Info("Reorder alerts recorded", zap.Int("count", len(alerts)))
	return alerts, nil
}

// Alerts returns stored alerts, newest first.
func (s *Service) Alerts(ctx context.Context, limit int) ([]*models.ReorderAlert, error) {
	if limit <= 0 {
		limit = DefaultAlertLimit
	}
	return s.alerts.Recent(ctx, limit)
}

// Export writes the current report as JSON to object storage.
func (s *Service) Export(ctx context.Context, o Overrides) (*ExportResult, error) {
	report, err := s.Report(ctx, o)
	if err != nil {
		return nil, err
	}
	return s.Store(ctx, report)
}

// Store uploads an already computed report under ExportPrefix. The key starts
// with the report's timestamp and ends with a random suffix, so concurrent
// exports never overwrite each other.
func (s *Service) Store(ctx context.Context, report *Report) (*ExportResult, error) {
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode reorder report: %w", err)
	}

	created, err := storage.EnsureBucket(ctx, s.client, s.bucket)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("Bucket created", zap.String("bucket", s.bucket))
	}

	key := ExportPrefix + report.GeneratedAt.UTC().Format(exportTimeLayout) + "-" + uuid.NewString() + ".json"
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Info("Reorder report exported",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("candidates", len(report.Candidates)),
	)
	return &ExportResult{Key: key, Size: int64(len(body)), Candidates: len(report.Candidates)}, nil
}

// Exports lists stored reports, newest first.
func (s *Service) Exports(ctx context.Context) ([]ExportInfo, error) {
	out := []ExportInfo{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: ExportPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list exports: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		out = append(out, ExportInfo{
			Name:         path.Base(obj.Key),
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key > out[j].Key })
	return out, nil
}

// OpenExport reads a stored report by its name.
func (s *Service) OpenExport(ctx context.Context, name string) ([]byte, error) {
	key, err := exportKey(name)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, notFoundOr(err, "failed to open %s", key)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, notFoundOr(err, "failed to read %s", key)
	}
	return data, nil
}

// DeleteExport removes a stored report by its name.
func (s *Service) DeleteExport(ctx context.Context, name string) error {
	key, err := exportKey(name)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	s.logger.Info("Reorder report removed", zap.String("key", key))
	return nil
}

func exportKey(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || !strings.HasSuffix(name, ".json") {
		return "", models.Invalid("invalid export name %q", name)
	}
	return ExportPrefix + name, nil
}

func notFoundOr(err error, format string, args ...any) error {
	if storage.IsNotFound(err) {
		return models.ErrNotFound
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
