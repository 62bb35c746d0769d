package reorder

import (
	engine "inventory-manager/core/reorder"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Reorder feature reading products through the inventory service.
func NewFeature(products *inventory.Service, db *gorm.DB, client storage.Client, bucket string, cfg engine.Config, logger *zap.Logger) *Feature {
	svc := NewService(products, db, client, bucket, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reorder"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
